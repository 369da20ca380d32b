package model

import "time"

type OreNode struct {
	ID              uint64 `gorm:"primaryKey;autoIncrement"`
	Ore             string `gorm:"size:32;not null;index"`
	X               int32  `gorm:"not null"`
	Y               int32  `gorm:"not null"`
	Z               int32  `gorm:"not null"`
	Capacity        uint32 `gorm:"not null"`
	Current         uint32 `gorm:"not null"`
	RechargePerTick uint32 `gorm:"not null"`
	UpdatedAt       time.Time
}

func (OreNode) TableName() string { return "ore_nodes" }

type Structure struct {
	ID        uint64 `gorm:"primaryKey"`
	Kind      string `gorm:"size:32;not null"`
	X         int32  `gorm:"not null"`
	Y         int32  `gorm:"not null"`
	Z         int32  `gorm:"not null"`
	ZoneX     int32  `gorm:"not null"`
	ZoneY     int32  `gorm:"not null"`
	ZoneZ     int32  `gorm:"not null"`
	OwnerID   uint64 `gorm:"not null;index"`
	CreatedAt time.Time
}

func (Structure) TableName() string { return "structures" }

type WorldEvent struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Tick      uint64 `gorm:"not null;index:idx_world_events_tick_seq,priority:1"`
	Seq       int    `gorm:"not null;index:idx_world_events_tick_seq,priority:2"`
	Kind      string `gorm:"size:48;not null"`
	AgentID   uint64 `gorm:"index"`
	Payload   []byte `gorm:"type:jsonb"`
	CreatedAt time.Time
}

func (WorldEvent) TableName() string { return "world_events" }

type WorldSnapshot struct {
	Tick      uint64 `gorm:"primaryKey"`
	Payload   []byte `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
}

func (WorldSnapshot) TableName() string { return "world_snapshots" }

type Wallet struct {
	Address   string `gorm:"primaryKey;size:64"`
	Balance   uint64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Wallet) TableName() string { return "wallets" }

type RunState struct {
	ID        uint32 `gorm:"primaryKey"`
	Status    string `gorm:"size:16;not null"`
	LastTick  uint64 `gorm:"not null"`
	InfusedQi uint64 `gorm:"not null"`
	UpdatedAt time.Time
}

func (RunState) TableName() string { return "run_state" }

package status

type Response struct {
	Status     string `json:"status"`
	Tick       uint64 `json:"tick"`
	AgentsLive int    `json:"agents_live"`
	AgentsDead int    `json:"agents_dead"`
	OreNodes   int    `json:"ore_nodes"`
	Structures int    `json:"structures"`
	InfusedQi  uint64 `json:"infused_qi"`
}

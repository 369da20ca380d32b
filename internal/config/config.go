package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is loaded from harimu.yaml and then overridden by HARIMU_*
// environment variables. The database DSN is env-only (HARIMU_DB_DSN)
// and never written to a file.
type Config struct {
	ServerAddr string `yaml:"server_addr"`
	ViewerAddr string `yaml:"viewer_addr"`
	ArchiveDir string `yaml:"archive_dir"`

	TickRateMs int    `yaml:"tick_rate_ms"`
	MaxTicks   uint64 `yaml:"max_ticks"`

	Planner string    `yaml:"planner"`
	LLM     LLMConfig `yaml:"llm"`

	Agents []AgentConfig `yaml:"agents"`
}

type LLMConfig struct {
	Provider       string `yaml:"provider"`
	Host           string `yaml:"host"`
	Model          string `yaml:"model"`
	APIKey         string `yaml:"api_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type AgentConfig struct {
	Name   string `yaml:"name"`
	Qi     uint32 `yaml:"qi"`
	X      int32  `yaml:"x"`
	Y      int32  `yaml:"y"`
	Z      int32  `yaml:"z"`
	MaxAge uint64 `yaml:"max_age"`
}

func Default() Config {
	return Config{
		ServerAddr: ":8080",
		ViewerAddr: ":8081",
		ArchiveDir: "",
		TickRateMs: 1000,
		MaxTicks:   0,
		Planner:    "static",
		LLM: LLMConfig{
			Provider:       "openai",
			Host:           "http://localhost:11434",
			Model:          "",
			TimeoutSeconds: 30,
		},
	}
}

// Load reads the yaml file when it exists, then applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults plus env.
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) TickRate() time.Duration {
	if c.TickRateMs <= 0 {
		return time.Second
	}
	return time.Duration(c.TickRateMs) * time.Millisecond
}

func (c *Config) LLMTimeout() time.Duration {
	if c.LLM.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.LLM.TimeoutSeconds) * time.Second
}

func (c *Config) applyEnv() {
	strEnv("HARIMU_SERVER_ADDR", &c.ServerAddr)
	strEnv("HARIMU_VIEWER_ADDR", &c.ViewerAddr)
	strEnv("HARIMU_ARCHIVE_DIR", &c.ArchiveDir)
	intEnv("HARIMU_TICK_RATE_MS", &c.TickRateMs)
	uintEnv("HARIMU_MAX_TICKS", &c.MaxTicks)
	strEnv("HARIMU_PLANNER", &c.Planner)
	strEnv("HARIMU_LLM_PROVIDER", &c.LLM.Provider)
	strEnv("HARIMU_LLM_HOST", &c.LLM.Host)
	strEnv("HARIMU_LLM_MODEL", &c.LLM.Model)
	strEnv("HARIMU_LLM_API_KEY", &c.LLM.APIKey)
	intEnv("HARIMU_LLM_TIMEOUT_SECONDS", &c.LLM.TimeoutSeconds)
}

func strEnv(key string, out *string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*out = v
	}
}

func intEnv(key string, out *int) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*out = n
	}
}

func uintEnv(key string, out *uint64) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	if n, err := strconv.ParseUint(v, 10, 64); err == nil {
		*out = n
	}
}

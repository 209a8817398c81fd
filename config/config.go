package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"stardodge/protocol"
)

type Config struct {
	Addr     string  `toml:"addr"`
	LogLevel string  `toml:"log_level"`
	Runtime  Runtime `toml:"runtime"`
}

// Runtime are the options the session is derived from; changing any of
// them re-initializes the runtime on the next room boot.
type Runtime struct {
	TickHz  int    `toml:"tick_hz"`
	Palette string `toml:"palette"`
	Sheet   string `toml:"sheet"`
	Seed    int64  `toml:"seed"` // 0 = non-deterministic spawns
}

func Default() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
		Runtime: Runtime{
			TickHz:  protocol.SimTickHz,
			Palette: "assets/space.pal",
			Sheet:   "assets/sheet.toml",
		},
	}
}

// InitEnv loads a .env file when present. A missing file is fine, the
// process environment still applies.
func InitEnv() error {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// Load returns the defaults overlaid with a TOML tuning file, then with
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if cfg.Runtime.TickHz <= 0 {
		return Config{}, fmt.Errorf("tick_hz must be > 0, got %d", cfg.Runtime.TickHz)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("STARDODGE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("STARDODGE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("STARDODGE_PALETTE"); v != "" {
		cfg.Runtime.Palette = v
	}
	if v := os.Getenv("STARDODGE_SHEET"); v != "" {
		cfg.Runtime.Sheet = v
	}
}

// GetEnvVariable returns a required environment variable.
func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}

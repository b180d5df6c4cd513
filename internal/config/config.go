package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string        `yaml:"addr"`
	APITimeout   time.Duration `yaml:"timeout"`
	DatabasePath string        `yaml:"database_path"`
	CORSOrigin   string        `yaml:"cors_origin"`
	SeedOnBoot   bool          `yaml:"seed_on_boot"`
}

// LoadConfig builds the config from env-var defaults, then overlays the YAML
// file when a path is given.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:         getEnv("TALENT_ADDR", ":8080"),
		APITimeout:   15 * time.Second,
		DatabasePath: getEnv("TALENT_DATABASE_PATH", "talent.db"),
		CORSOrigin:   getEnv("TALENT_CORS_ORIGIN", "http://localhost:3000"),
		SeedOnBoot:   true,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

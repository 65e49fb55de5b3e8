package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the two knobs nicebot needs to interpret a robots.txt
// file: which agent to match and whether to percent-decode pattern
// values. Zero-value Config is a valid unattuned, non-decoding config.
type Config struct {
	agentKey      string
	decodePercent bool
}

type configDTO struct {
	AgentKey      string `json:"agentKey,omitempty"`
	DecodePercent bool   `json:"decodePercent,omitempty"`
}

func newConfigFromDTO(dto configDTO) (Config, error) {
	cfg := *WithDefault()

	if dto.AgentKey != "" {
		cfg.agentKey = dto.AgentKey
	}
	// DecodePercent is boolean; the DTO value is authoritative even when false.
	cfg.decodePercent = dto.DecodePercent

	return cfg.Build()
}

// WithConfigFile reads path as JSON and builds a Config from it, falling
// back to defaults for any field the file omits.
func WithConfigFile(path string) (Config, error) {
	_, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}
	configContent, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}
	cfgDTO := configDTO{}

	if err := json.Unmarshal(configContent, &cfgDTO); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
	}

	return newConfigFromDTO(cfgDTO)
}

// WithDefault returns a Config builder seeded with defaults: an empty
// agent key (unattuned, "*"-only matching) and percent-decoding off.
func WithDefault() *Config {
	return &Config{
		agentKey:      "",
		decodePercent: false,
	}
}

func (c *Config) WithAgentKey(agentKey string) *Config {
	c.agentKey = agentKey
	return c
}

func (c *Config) WithDecodePercent(decode bool) *Config {
	c.decodePercent = decode
	return c
}

// Build validates and returns the Config by value. There is currently no
// invalid combination of agentKey/decodePercent, but Build exists so
// callers have one place to add validation without a breaking signature
// change, matching the teacher's builder shape.
func (c *Config) Build() (Config, error) {
	return *c, nil
}

func (c Config) AgentKey() string {
	return c.agentKey
}

func (c Config) DecodePercent() bool {
	return c.decodePercent
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LED is one pin/channel binding.
type LED struct {
	GPIO    int `yaml:"gpio"`
	Channel int `yaml:"channel"`
}

type Config struct {
	Driver string `yaml:"driver"` // "sim" | "periph" | "rpio"

	ResolutionBits int `yaml:"resolution_bits"`
	FreqHz         int `yaml:"freq_hz"`

	StepSize     int `yaml:"step_size"`
	StepDelayMs  int `yaml:"step_delay_ms"`
	BlinkDelayMs int `yaml:"blink_delay_ms"`

	LEDs []LED `yaml:"leds"`
}

// Default is the reference setup: three LEDs on GPIO 2/4/5, 10-bit
// duty at 5 kHz, 10ms fade steps and 300ms pattern pauses.
func Default() *Config {
	return &Config{
		Driver:         "sim",
		ResolutionBits: 10,
		FreqHz:         5000,
		StepSize:       10,
		StepDelayMs:    10,
		BlinkDelayMs:   300,
		LEDs: []LED{
			{GPIO: 2, Channel: 0},
			{GPIO: 4, Channel: 1},
			{GPIO: 5, Channel: 2},
		},
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate checks the numeric ranges; channel uniqueness is enforced
// again by the led registry.
func (c *Config) Validate() error {
	if c.ResolutionBits < 1 || c.ResolutionBits > 30 {
		return fmt.Errorf("resolution_bits %d out of range [1,30]", c.ResolutionBits)
	}
	if c.FreqHz <= 0 {
		return fmt.Errorf("freq_hz must be positive, got %d", c.FreqHz)
	}
	if c.StepSize < 1 {
		return fmt.Errorf("step_size must be positive, got %d", c.StepSize)
	}
	if c.StepDelayMs < 0 || c.BlinkDelayMs < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	if len(c.LEDs) == 0 {
		return fmt.Errorf("at least one led is required")
	}
	return nil
}

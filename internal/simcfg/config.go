// Package simcfg loads the host simulator configuration.
package simcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the simulated tank and the EEPROM image file used
// by the host build. The device build ignores all of it.
type Config struct {
	EEPROM EEPROMConfig `yaml:"eeprom"`
	Tank   TankConfig   `yaml:"tank"`
	Sensor SensorConfig `yaml:"sensor"`
}

// EEPROMConfig locates the storage image.
type EEPROMConfig struct {
	Path string `yaml:"path"`
	Size int    `yaml:"size"`
}

// TankConfig shapes the virtual tank the sensor looks into.
type TankConfig struct {
	SensorHeightCm float32 `yaml:"sensor_height_cm"`     // sensor face to tank bottom
	StartLevelCm   float32 `yaml:"start_level_cm"`       // liquid level at boot
	FillRateCmSec  float32 `yaml:"fill_rate_cm_per_sec"` // level change while F/D is held
}

// SensorConfig shapes measurement imperfections.
type SensorConfig struct {
	NoiseCm     float32 `yaml:"noise_cm"`     // gaussian noise stddev per sample
	DropoutProb float32 `yaml:"dropout_prob"` // fraction of samples returning NaN
}

// Default returns a configuration with sensible values: a half-full
// one-meter tank, light noise, no dropouts.
func Default() *Config {
	return &Config{
		EEPROM: EEPROMConfig{
			Path: "mvm.eeprom",
			Size: 64,
		},
		Tank: TankConfig{
			SensorHeightCm: 100,
			StartLevelCm:   50,
			FillRateCmSec:  5,
		},
		Sensor: SensorConfig{
			NoiseCm:     0.2,
			DropoutProb: 0,
		},
	}
}

// Load reads configuration from a YAML file. A missing file or missing
// fields fall back to defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ensureDefaults backfills required fields left empty in the file.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.EEPROM.Path == "" {
		c.EEPROM.Path = def.EEPROM.Path
	}
	if c.EEPROM.Size <= 0 {
		c.EEPROM.Size = def.EEPROM.Size
	}
	if c.Tank.SensorHeightCm <= 0 {
		c.Tank.SensorHeightCm = def.Tank.SensorHeightCm
	}
	if c.Tank.FillRateCmSec <= 0 {
		c.Tank.FillRateCmSec = def.Tank.FillRateCmSec
	}
	if c.Tank.StartLevelCm < 0 {
		c.Tank.StartLevelCm = 0
	}
	if c.Tank.StartLevelCm > c.Tank.SensorHeightCm {
		c.Tank.StartLevelCm = c.Tank.SensorHeightCm
	}
	if c.Sensor.NoiseCm < 0 {
		c.Sensor.NoiseCm = 0
	}
	if c.Sensor.DropoutProb < 0 {
		c.Sensor.DropoutProb = 0
	}
	if c.Sensor.DropoutProb > 1 {
		c.Sensor.DropoutProb = 1
	}
}

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Env             string  `mapstructure:"ENV"`
	LogLevel        string  `mapstructure:"LOG_LEVEL"`
	ConsultationFee float64 `mapstructure:"CONSULTATION_FEE"`
	HospitalBeds    int     `mapstructure:"HOSPITAL_BEDS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CONSULTATION_FEE", 500.0)
	v.SetDefault("HOSPITAL_BEDS", 100)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("CONSULTATION_FEE")
	v.BindEnv("HOSPITAL_BEDS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is usable. The consultation fee
// may be zero (free consultations) but never negative, and a hospital
// needs at least one bed.
func (c *Config) Validate() error {
	if c.ConsultationFee < 0 {
		return fmt.Errorf("CONSULTATION_FEE must not be negative, got %v", c.ConsultationFee)
	}
	if c.HospitalBeds <= 0 {
		return fmt.Errorf("HOSPITAL_BEDS must be positive, got %d", c.HospitalBeds)
	}
	return nil
}

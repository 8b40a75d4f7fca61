package application

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	demand "cec-service/internal/demand/domain"
)

// Config holds tool-level defaults. Flags override config; config
// overrides environment; environment overrides the compiled defaults.
type Config struct {
	Voltage           int     `yaml:"voltage"`
	ThreePhaseVoltage int     `yaml:"three_phase_voltage"`
	RangeKW           float64 `yaml:"range_kw"`
	EVAmps            int     `yaml:"ev_amps"`
	ShowRules         bool    `yaml:"show_rules"`
}

// LoadConfig builds the defaults from the environment and then, when
// CEC_SERVICE_CONFIG names a yaml file, overlays that file.
func LoadConfig() (Config, error) {
	cfg := Config{
		Voltage:           getenvIntDefault("SERVICE_VOLTAGE", DefaultVolts),
		ThreePhaseVoltage: getenvIntDefault("SERVICE_THREE_PHASE_VOLTAGE", DefaultThreePhaseVolts),
		RangeKW:           getenvFloatDefault("SERVICE_RANGE_KW", demand.DefaultRangeKW),
		EVAmps:            getenvIntDefault("SERVICE_EV_AMPS", demand.DefaultEVAmps),
		ShowRules:         getenvBoolDefault("SERVICE_SHOW_RULES", false),
	}

	if path := os.Getenv("CEC_SERVICE_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.Voltage <= 0 || cfg.ThreePhaseVoltage <= 0 {
		return cfg, errors.New("config: voltage must be greater than zero")
	}
	if cfg.RangeKW < 0 || cfg.EVAmps < 0 {
		return cfg, errors.New("config: defaults must not be negative")
	}
	return cfg, nil
}

func getenvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvFloatDefault(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvBoolDefault(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

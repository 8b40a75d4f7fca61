package interfaces

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"cec-service/internal/demand/application"
	demand "cec-service/internal/demand/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// BuildingFile is the yaml input document for multi-unit calculations.
type BuildingFile struct {
	Voltage int        `yaml:"voltage" validate:"gte=0"`
	Phases  int        `yaml:"phases" validate:"omitempty,oneof=1 3"`
	Units   []UnitSpec `yaml:"units" validate:"required,min=1,dive"`
}

// UnitSpec mirrors one Dwelling. Pointer fields distinguish "absent"
// from an explicit zero so the configured defaults can apply.
type UnitSpec struct {
	FloorAreaM2   float64     `yaml:"floor_area_m2" validate:"gt=0"`
	HeatKW        float64     `yaml:"heat_kw" validate:"gte=0"`
	ACKW          float64     `yaml:"ac_kw" validate:"gte=0"`
	RangeKW       *float64    `yaml:"range_kw" validate:"omitempty,gte=0"`
	HasRange      *bool       `yaml:"has_range"`
	DryerKW       float64     `yaml:"dryer_kw" validate:"gte=0"`
	WaterHeaterKW float64     `yaml:"water_heater_kw" validate:"gte=0"`
	ExtraLoads    []ExtraSpec `yaml:"extra_loads" validate:"dive"`
	HasEV         bool        `yaml:"has_ev"`
	EVAmps        *int        `yaml:"ev_amps" validate:"omitempty,gte=0"`
}

// ExtraSpec is one miscellaneous appliance entry.
type ExtraSpec struct {
	Label string  `yaml:"label"`
	KW    float64 `yaml:"kw" validate:"gte=0"`
}

// ParseBuildingFile reads and validates a building yaml document.
func ParseBuildingFile(path string) (BuildingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BuildingFile{}, err
	}
	return parseBuilding(data)
}

func parseBuilding(data []byte) (BuildingFile, error) {
	var bf BuildingFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return bf, fmt.Errorf("building file: %w", err)
	}
	if err := validate.Struct(bf); err != nil {
		return bf, fmt.Errorf("building file: %w", err)
	}
	return bf, nil
}

// Dwellings converts the unit specs into domain values, filling unset
// fields from the configured defaults.
func (bf BuildingFile) Dwellings(cfg application.Config) []demand.Dwelling {
	out := make([]demand.Dwelling, 0, len(bf.Units))
	for _, u := range bf.Units {
		dw := demand.Dwelling{
			FloorAreaM2:   u.FloorAreaM2,
			HeatKW:        u.HeatKW,
			ACKW:          u.ACKW,
			RangeKW:       cfg.RangeKW,
			HasRange:      true,
			DryerKW:       u.DryerKW,
			WaterHeaterKW: u.WaterHeaterKW,
			HasEV:         u.HasEV,
			EVAmps:        cfg.EVAmps,
		}
		if u.RangeKW != nil {
			dw.RangeKW = *u.RangeKW
		}
		if u.HasRange != nil {
			dw.HasRange = *u.HasRange
		}
		if u.EVAmps != nil {
			dw.EVAmps = *u.EVAmps
		}
		for _, x := range u.ExtraLoads {
			dw.ExtraLoads = append(dw.ExtraLoads, demand.ExtraLoad{Label: x.Label, KW: x.KW})
		}
		out = append(out, dw)
	}
	return out
}

// Options returns the calculation options the file requests, falling
// back to the configured voltages.
func (bf BuildingFile) Options(cfg application.Config) application.Options {
	opts := application.Options{ThreePhase: bf.Phases == 3}
	switch {
	case bf.Voltage != 0:
		opts.Voltage = bf.Voltage
	case opts.ThreePhase:
		opts.Voltage = cfg.ThreePhaseVoltage
	default:
		opts.Voltage = cfg.Voltage
	}
	return opts
}

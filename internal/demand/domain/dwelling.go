package demand

import "fmt"

// Standard defaults for fields the code book assumes when the caller
// does not say otherwise.
const (
	// DefaultRangeKW is the assumed electric range rating.
	DefaultRangeKW = 12.0
	// DefaultEVAmps is the assumed EVSE circuit amperage.
	DefaultEVAmps = 32
)

// Dwelling describes one dwelling unit for service-load calculation.
// Loads are in kW; a zero optional load means the appliance is absent.
type Dwelling struct {
	FloorAreaM2   float64
	HeatKW        float64
	ACKW          float64
	RangeKW       float64
	HasRange      bool
	DryerKW       float64
	WaterHeaterKW float64
	ExtraLoads    []ExtraLoad
	HasEV         bool
	EVAmps        int
}

// ExtraLoad is a miscellaneous appliance rated above 1.5 kW.
type ExtraLoad struct {
	Label string
	KW    float64
}

// NewDwelling returns a Dwelling for the given floor area with the
// standard defaults applied: a 12 kW range present, no EVSE.
func NewDwelling(floorAreaM2 float64) Dwelling {
	return Dwelling{
		FloorAreaM2: floorAreaM2,
		RangeKW:     DefaultRangeKW,
		HasRange:    true,
		EVAmps:      DefaultEVAmps,
	}
}

// NonNegative returns val unchanged, or a field-naming error wrapping
// ErrNegativeValue when val is below zero. Callers run it on raw input
// before constructing a Dwelling.
func NonNegative(val float64, field string) (float64, error) {
	if val < 0 {
		return 0, fmt.Errorf("%s: %w", field, ErrNegativeValue)
	}
	return val, nil
}

// Validate checks the Dwelling invariants: positive floor area and no
// negative load or rating.
func (d Dwelling) Validate() error {
	if d.FloorAreaM2 <= 0 {
		return ErrInvalidFloorArea
	}
	fields := []struct {
		name string
		val  float64
	}{
		{"heat_kw", d.HeatKW},
		{"ac_kw", d.ACKW},
		{"range_kw", d.RangeKW},
		{"dryer_kw", d.DryerKW},
		{"water_heater_kw", d.WaterHeaterKW},
		{"ev_amps", float64(d.EVAmps)},
	}
	for _, f := range fields {
		if _, err := NonNegative(f.val, f.name); err != nil {
			return err
		}
	}
	for _, l := range d.ExtraLoads {
		if _, err := NonNegative(l.KW, "extra_loads."+l.Label); err != nil {
			return err
		}
	}
	return nil
}

package application

import (
	"fmt"
	"math"
	"sort"

	demand "cec-service/internal/demand/domain"
)

// Default service voltages by phase configuration.
const (
	DefaultVolts           = 240
	DefaultThreePhaseVolts = 208
)

// demandFactor is applied to every base except the largest unit's.
const demandFactor = 0.65

// UnitDemand is one unit's (base, heat/AC) watt pair fed to Aggregate.
type UnitDemand struct {
	Base   int
	HeatAC int
}

// FactoredBase is one non-largest unit's demand-factored contribution.
type FactoredBase struct {
	Unit  int // index into the input slice
	Watts int // 65% of the unit's base, truncated
}

// AggregateDetail records how the combined service load was assembled.
// Factored lists the non-largest units in descending base order; units
// with equal bases keep their input order so output is reproducible.
type AggregateDetail struct {
	LargestUnit  int // index into the input slice
	LargestBase  int
	Factored     []FactoredBase
	CombinedBase int
	TotalHeatAC  int
	TotalWatts   int
	Amps         float64
}

// Aggregate combines per-unit loads into one service: the largest base
// counts in full, every other base at 65% truncated toward zero, and
// heat/AC sums at 100% across units (simultaneous peak assumed).
func Aggregate(units []UnitDemand, voltage int, threePhase bool) (AggregateDetail, error) {
	if len(units) == 0 {
		return AggregateDetail{}, demand.ErrNoUnits
	}

	order := make([]int, len(units))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return units[order[i]].Base > units[order[j]].Base
	})

	det := AggregateDetail{
		LargestUnit:  order[0],
		LargestBase:  units[order[0]].Base,
		CombinedBase: units[order[0]].Base,
	}
	for _, idx := range order[1:] {
		factored := int(float64(units[idx].Base) * demandFactor)
		det.Factored = append(det.Factored, FactoredBase{Unit: idx, Watts: factored})
		det.CombinedBase += factored
	}
	for _, u := range units {
		det.TotalHeatAC += u.HeatAC
	}
	det.TotalWatts = det.CombinedBase + det.TotalHeatAC
	det.Amps = float64(det.TotalWatts) / Divisor(voltage, threePhase)
	return det, nil
}

// Divisor returns the watts-to-amps divisor for the service voltage.
func Divisor(voltage int, threePhase bool) float64 {
	if threePhase {
		return float64(voltage) * math.Sqrt(3)
	}
	return float64(voltage)
}

// Options control a service calculation. A zero Voltage selects the
// default for the phase configuration.
type Options struct {
	Voltage    int
	ThreePhase bool
}

func (o Options) voltage() int {
	if o.Voltage != 0 {
		return o.Voltage
	}
	if o.ThreePhase {
		return DefaultThreePhaseVolts
	}
	return DefaultVolts
}

// Result is the outcome of a service calculation, owned entirely by the
// caller that requested it.
type Result struct {
	TotalWatts int
	Amps       float64
	Breaker    int
	Units      []demand.LoadBreakdown
	Detail     AggregateDetail
	Voltage    int
	ThreePhase bool
}

// CalculateService computes the full service sizing for one or more
// dwelling units: per-unit breakdowns, demand-factored aggregation, and
// the suggested breaker.
func CalculateService(dwellings []demand.Dwelling, opts Options) (Result, error) {
	if len(dwellings) == 0 {
		return Result{}, demand.ErrNoUnits
	}
	units := make([]UnitDemand, 0, len(dwellings))
	breakdowns := make([]demand.LoadBreakdown, 0, len(dwellings))
	for i, dw := range dwellings {
		if err := dw.Validate(); err != nil {
			return Result{}, fmt.Errorf("unit %d: %w", i+1, err)
		}
		base, heat, bd := UnitLoad(dw)
		units = append(units, UnitDemand{Base: base, HeatAC: heat})
		breakdowns = append(breakdowns, bd)
	}

	voltage := opts.voltage()
	det, err := Aggregate(units, voltage, opts.ThreePhase)
	if err != nil {
		return Result{}, err
	}
	return Result{
		TotalWatts: det.TotalWatts,
		Amps:       det.Amps,
		Breaker:    demand.NextStandardBreaker(det.Amps),
		Units:      breakdowns,
		Detail:     det,
		Voltage:    voltage,
		ThreePhase: opts.ThreePhase,
	}, nil
}

// House computes the service for a single dwelling.
func House(dw demand.Dwelling, opts Options) (Result, error) {
	return CalculateService([]demand.Dwelling{dw}, opts)
}

// Duplex computes the combined service for two dwelling units.
func Duplex(a, b demand.Dwelling, opts Options) (Result, error) {
	return CalculateService([]demand.Dwelling{a, b}, opts)
}

// Triplex computes the combined service for three dwelling units.
func Triplex(a, b, c demand.Dwelling, opts Options) (Result, error) {
	return CalculateService([]demand.Dwelling{a, b, c}, opts)
}

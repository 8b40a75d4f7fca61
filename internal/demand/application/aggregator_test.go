package application

import (
	"errors"
	"math"
	"testing"

	demand "cec-service/internal/demand/domain"
)

func TestAggregateRejectsZeroUnits(t *testing.T) {
	if _, err := Aggregate(nil, DefaultVolts, false); !errors.Is(err, demand.ErrNoUnits) {
		t.Fatalf("expected ErrNoUnits, got %v", err)
	}
	if _, err := CalculateService(nil, Options{}); !errors.Is(err, demand.ErrNoUnits) {
		t.Fatalf("expected ErrNoUnits, got %v", err)
	}
}

func TestAggregateSingleUnitTakesFullBase(t *testing.T) {
	det, err := Aggregate([]UnitDemand{{Base: 19680, HeatAC: 10000}}, DefaultVolts, false)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if det.CombinedBase != 19680 || det.TotalWatts != 29680 {
		t.Fatalf("expected 19680/29680, got %d/%d", det.CombinedBase, det.TotalWatts)
	}
}

func TestAggregateEqualBasesCommutative(t *testing.T) {
	units := []UnitDemand{{Base: 10000}, {Base: 10000}}
	det, err := Aggregate(units, DefaultVolts, false)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	want := 10000 + int(10000*0.65)
	if det.CombinedBase != want {
		t.Fatalf("expected combined base %d, got %d", want, det.CombinedBase)
	}
	// ties keep input order
	if det.LargestUnit != 0 {
		t.Fatalf("expected unit 1 as the largest on a tie, got unit %d", det.LargestUnit+1)
	}
	if len(det.Factored) != 1 || det.Factored[0].Unit != 1 {
		t.Fatalf("expected unit 2 factored, got %+v", det.Factored)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	a, err := Aggregate([]UnitDemand{{Base: 11000}, {Base: 19680}}, DefaultVolts, false)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	b, err := Aggregate([]UnitDemand{{Base: 19680}, {Base: 11000}}, DefaultVolts, false)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if a.CombinedBase != b.CombinedBase || a.TotalWatts != b.TotalWatts {
		t.Fatalf("aggregation depends on input order: %d vs %d", a.TotalWatts, b.TotalWatts)
	}
	if a.LargestBase != 19680 {
		t.Fatalf("expected largest base 19680, got %d", a.LargestBase)
	}
}

func TestAggregateTruncatesFactoredBase(t *testing.T) {
	det, err := Aggregate([]UnitDemand{{Base: 20000}, {Base: 9999}}, DefaultVolts, false)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	// 9999 * 0.65 = 6499.35 truncates, never rounds
	if det.Factored[0].Watts != 6499 {
		t.Fatalf("expected 6499 W, got %d", det.Factored[0].Watts)
	}
}

func TestAggregateSumsHeatACInFull(t *testing.T) {
	det, err := Aggregate([]UnitDemand{
		{Base: 12000, HeatAC: 8000},
		{Base: 11000, HeatAC: 6000},
		{Base: 10000, HeatAC: 4000},
	}, DefaultVolts, false)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if det.TotalHeatAC != 18000 {
		t.Fatalf("expected 18000 W of heat/AC, got %d", det.TotalHeatAC)
	}
	wantBase := 12000 + int(11000*0.65) + int(10000*0.65)
	if det.CombinedBase != wantBase {
		t.Fatalf("expected combined base %d, got %d", wantBase, det.CombinedBase)
	}
}

func TestAggregateThreePhaseDivisor(t *testing.T) {
	det, err := Aggregate([]UnitDemand{{Base: 29680}}, DefaultThreePhaseVolts, true)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	want := 29680 / (208 * math.Sqrt(3))
	if math.Abs(det.Amps-want) > 1e-9 {
		t.Fatalf("expected %.6f A, got %.6f", want, det.Amps)
	}
}

// End-to-end example: 120 m², 10 kW heat pump, 12 kW range, 32 A EVSE.
func TestHouseEndToEnd(t *testing.T) {
	dw := demand.NewDwelling(120)
	dw.HeatKW = 10
	dw.HasEV = true

	res, err := House(dw, Options{})
	if err != nil {
		t.Fatalf("house: %v", err)
	}

	bd := res.Units[0]
	if bd.BasicLoad != 5000 || bd.ExtraAreaLoad != 1000 {
		t.Fatalf("expected 5000+1000 basic, got %d+%d", bd.BasicLoad, bd.ExtraAreaLoad)
	}
	if bd.RangeLoad != 6000 || bd.EVLoad != 7680 || bd.HeatAC != 10000 {
		t.Fatalf("unexpected breakdown: %+v", bd)
	}
	if bd.BaseWithoutHeatAC != 19680 {
		t.Fatalf("expected base 19680, got %d", bd.BaseWithoutHeatAC)
	}
	if res.TotalWatts != 29680 {
		t.Fatalf("expected 29680 W, got %d", res.TotalWatts)
	}
	if math.Abs(res.Amps-29680.0/240) > 1e-9 {
		t.Fatalf("expected %.4f A, got %.4f", 29680.0/240, res.Amps)
	}
	if res.Breaker != 125 {
		t.Fatalf("expected a 125 A breaker, got %d", res.Breaker)
	}
}

func TestDuplexDemandFactorsSmallerUnit(t *testing.T) {
	a := demand.NewDwelling(120)
	a.HeatKW = 10
	a.HasEV = true
	b := demand.NewDwelling(80)

	res, err := Duplex(a, b, Options{})
	if err != nil {
		t.Fatalf("duplex: %v", err)
	}
	// unit a base 19680 at 100%, unit b base 11000 at 65%
	wantBase := 19680 + int(11000*0.65)
	if res.Detail.CombinedBase != wantBase {
		t.Fatalf("expected combined base %d, got %d", wantBase, res.Detail.CombinedBase)
	}
	if res.TotalWatts != wantBase+10000 {
		t.Fatalf("expected %d W, got %d", wantBase+10000, res.TotalWatts)
	}
}

func TestTriplexMatchesGenericAggregation(t *testing.T) {
	a := demand.NewDwelling(120)
	a.HeatKW = 10
	b := demand.NewDwelling(100)
	c := demand.NewDwelling(95)
	c.ACKW = 3

	viaTriplex, err := Triplex(a, b, c, Options{})
	if err != nil {
		t.Fatalf("triplex: %v", err)
	}
	viaGeneric, err := CalculateService([]demand.Dwelling{a, b, c}, Options{})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if viaTriplex.TotalWatts != viaGeneric.TotalWatts || viaTriplex.Breaker != viaGeneric.Breaker {
		t.Fatalf("triplex diverged from generic aggregation: %+v vs %+v", viaTriplex, viaGeneric)
	}
}

func TestCalculateServiceValidatesUnits(t *testing.T) {
	dw := demand.NewDwelling(100)
	dw.DryerKW = -2
	_, err := CalculateService([]demand.Dwelling{dw}, Options{})
	if !errors.Is(err, demand.ErrNegativeValue) {
		t.Fatalf("expected ErrNegativeValue, got %v", err)
	}
}

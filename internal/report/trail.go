// Package report renders service-load calculations for people: an
// ordered explanation trail with optional CEC rule citations, and
// plain-text, PDF and XLSX renderings of it.
package report

import (
	"fmt"
	"strconv"

	"cec-service/internal/demand/application"
)

// CEC rule references cited next to each computed quantity. These are
// fixed strings keyed by quantity, never derived from values.
const (
	RuleBasicLoad    = "8-200(1)(a)(i)"
	RuleExtraArea    = "8-200(1)(a)(ii)"
	RuleRange        = "8-200(1)(a)(iv)"
	RuleEVSE         = "8-106(10)"
	RuleDryer        = "8-200(1)(a)(vi)"
	RuleWaterHeater  = "8-200(1)(a)(vi)"
	RuleExtraLoads   = "8-200(1)(a)(vii)"
	RuleHeatAC       = "8-202(1)(b)"
	RuleDemandFactor = "8-202(3)(a)"
	RuleTotal        = "8-104(1)"
	RuleBreaker      = "14-104"
)

// Options controls trail rendering.
type Options struct {
	ShowRules bool
}

// Trail renders the calculation as ordered human-readable lines, one
// per contributing quantity in computation order. Optional quantities
// (extra area, EVSE, dryer, water heater, miscellaneous loads) appear
// only when nonzero.
func Trail(res application.Result, opts Options) []string {
	var lines []string
	step := func(label, value, rule string) {
		text := label + ": " + value
		if opts.ShowRules && rule != "" {
			text += "  (CEC " + rule + ")"
		}
		lines = append(lines, text)
	}

	multi := len(res.Units) > 1
	for i, bd := range res.Units {
		if multi {
			lines = append(lines, fmt.Sprintf("Unit %d", i+1))
		}
		step("Basic load", watts(bd.BasicLoad), RuleBasicLoad)
		if bd.ExtraAreaLoad > 0 {
			step("Extra area", watts(bd.ExtraAreaLoad), RuleExtraArea)
		}
		step("Range", watts(bd.RangeLoad), RuleRange)
		if bd.EVLoad > 0 {
			step("EVSE", watts(bd.EVLoad), RuleEVSE)
		}
		if bd.DryerLoad > 0 {
			step("Dryer", watts(bd.DryerLoad), RuleDryer)
		}
		if bd.WaterHeaterLoad > 0 {
			step("Water heater", watts(bd.WaterHeaterLoad), RuleWaterHeater)
		}
		if bd.ExtraLoad > 0 {
			step("Other loads", watts(bd.ExtraLoad), RuleExtraLoads)
		}
		step("Heating/AC", watts(bd.HeatAC), RuleHeatAC)
	}

	if multi {
		step(fmt.Sprintf("Base from unit %d", res.Detail.LargestUnit+1),
			watts(res.Detail.LargestBase), RuleDemandFactor)
		for _, f := range res.Detail.Factored {
			step(fmt.Sprintf("65%% of unit %d", f.Unit+1), watts(f.Watts), RuleDemandFactor)
		}
		step("Combined base", watts(res.Detail.CombinedBase), RuleDemandFactor)
		step("Total heating/AC", watts(res.Detail.TotalHeatAC), RuleHeatAC)
	}

	step("Total", watts(res.TotalWatts), RuleTotal)
	lines = append(lines, fmt.Sprintf("%d W / %s = %.1f A",
		res.TotalWatts, divisorString(res.Voltage, res.ThreePhase), res.Amps))
	step("Suggested breaker", fmt.Sprintf("%d A", res.Breaker), RuleBreaker)
	return lines
}

func watts(w int) string { return strconv.Itoa(w) + " W" }

func divisorString(voltage int, threePhase bool) string {
	if threePhase {
		return fmt.Sprintf("%d * √3", voltage)
	}
	return strconv.Itoa(voltage)
}

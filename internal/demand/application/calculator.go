package application

import (
	"math"

	demand "cec-service/internal/demand/domain"
)

const (
	basicLoadWatts   = 5000
	areaBlockM2      = 90.0
	areaBlockWatts   = 1000
	rangeThresholdKW = 12.0
	rangeBaseWatts   = 6000
	evseVolts        = 240 // EVSE load is figured at 240 V regardless of service voltage
	appliancePct     = 0.25
)

// UnitLoad computes the load breakdown for one dwelling unit. The base
// is returned separately from heat/AC because multi-unit aggregation
// demand-factors the base but sums heat/AC in full.
func UnitLoad(dw demand.Dwelling) (base, heatAC int, bd demand.LoadBreakdown) {
	bd.BasicLoad = basicLoadWatts
	if dw.FloorAreaM2 > areaBlockM2 {
		excess := dw.FloorAreaM2 - areaBlockM2
		// partial blocks count as a whole 1000 W
		bd.ExtraAreaLoad = int(math.Ceil(excess/areaBlockM2)) * areaBlockWatts
	}
	if dw.HasRange {
		if dw.RangeKW <= rangeThresholdKW {
			bd.RangeLoad = rangeBaseWatts
		} else {
			bd.RangeLoad = int(dw.RangeKW * 1000)
		}
	}
	if dw.HasEV {
		bd.EVLoad = dw.EVAmps * evseVolts
	}
	bd.DryerLoad = int(dw.DryerKW * 1000 * appliancePct)
	bd.WaterHeaterLoad = int(dw.WaterHeaterKW * 1000 * appliancePct)
	if len(dw.ExtraLoads) > 0 {
		var sumKW float64
		for _, l := range dw.ExtraLoads {
			sumKW += l.KW
		}
		// 25% applies once to the summed rating, not per appliance
		bd.ExtraLoad = int(sumKW * 1000 * appliancePct)
	}
	bd.HeatAC = int(math.Max(dw.HeatKW, dw.ACKW) * 1000)

	bd.BaseWithoutHeatAC = bd.BasicLoad + bd.ExtraAreaLoad + bd.RangeLoad +
		bd.EVLoad + bd.DryerLoad + bd.WaterHeaterLoad + bd.ExtraLoad
	bd.TotalWatts = bd.BaseWithoutHeatAC + bd.HeatAC
	return bd.BaseWithoutHeatAC, bd.HeatAC, bd
}

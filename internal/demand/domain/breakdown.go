package demand

// LoadBreakdown is the per-unit contribution of every modeled rule, in
// watts. Values are fixed at calculation time and never mutated.
type LoadBreakdown struct {
	BasicLoad         int
	ExtraAreaLoad     int
	RangeLoad         int
	EVLoad            int
	DryerLoad         int
	WaterHeaterLoad   int
	ExtraLoad         int
	HeatAC            int
	BaseWithoutHeatAC int
	TotalWatts        int
}

// Command cec-service computes dwelling service-load sizing per the
// modeled CEC rules: per-unit breakdowns, multi-unit demand factoring,
// and a suggested standard breaker.
package main

import (
	"flag"
	"log"
	"os"

	"cec-service/internal/demand/application"
	demand "cec-service/internal/demand/domain"
	"cec-service/internal/demand/interfaces"
	"cec-service/internal/report"
)

func main() {
	cfg, err := application.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		floor     = flag.Float64("floor", 0, "floor area in m²")
		heat      = flag.Float64("heat", 0, "heating load in kW")
		ac        = flag.Float64("ac", 0, "air-conditioning load in kW")
		rangeKW   = flag.Float64("range", cfg.RangeKW, "electric range rating in kW")
		noRange   = flag.Bool("no-range", false, "unit has no electric range")
		dryer     = flag.Float64("dryer", 0, "dryer rating in kW")
		water     = flag.Float64("water", 0, "water heater rating in kW")
		evAmps    = flag.Int("ev-amps", 0, "EVSE amperage (0 = no EVSE)")
		phases    = flag.Int("phases", 1, "number of phases (1 or 3)")
		voltage   = flag.Int("voltage", 0, "service voltage (default by phases)")
		building  = flag.String("building", "", "multi-unit building yaml file")
		output    = flag.String("o", "", "write the report to a file")
		format    = flag.String("format", "text", "output format: text, pdf or xlsx")
		showRules = flag.Bool("show-rules", cfg.ShowRules, "include CEC rule references")
	)
	flag.Parse()

	if *phases != 1 && *phases != 3 {
		log.Fatalf("phases must be 1 or 3")
	}

	var (
		dwellings []demand.Dwelling
		opts      application.Options
	)
	if *building != "" {
		bf, err := interfaces.ParseBuildingFile(*building)
		if err != nil {
			log.Fatalf("%v", err)
		}
		dwellings = bf.Dwellings(cfg)
		opts = bf.Options(cfg)
	} else {
		dw, err := singleDwelling(*floor, *heat, *ac, *rangeKW, !*noRange, *dryer, *water, *evAmps)
		if err != nil {
			log.Fatalf("%v", err)
		}
		dwellings = []demand.Dwelling{dw}
		opts = application.Options{Voltage: *voltage, ThreePhase: *phases == 3}
		if opts.Voltage == 0 {
			if opts.ThreePhase {
				opts.Voltage = cfg.ThreePhaseVoltage
			} else {
				opts.Voltage = cfg.Voltage
			}
		}
	}

	res, err := application.CalculateService(dwellings, opts)
	if err != nil {
		log.Fatalf("calculate: %v", err)
	}

	lines := report.Trail(res, report.Options{ShowRules: *showRules})
	var data []byte
	switch *format {
	case "text":
		data = report.BuildText(lines)
	case "pdf":
		data, err = report.BuildPDF(lines)
	case "xlsx":
		data, err = report.BuildXLSX(res)
	default:
		log.Fatalf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatalf("render %s: %v", *format, err)
	}

	if *output == "" {
		if *format != "text" {
			log.Fatalf("-o is required for %s output", *format)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("write: %v", err)
		}
		return
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *output, err)
	}
}

// singleDwelling validates the raw flag values and builds the Dwelling.
// Validation runs before construction so a negative flag never reaches
// the calculators.
func singleDwelling(floor, heat, ac, rangeKW float64, hasRange bool, dryer, water float64, evAmps int) (demand.Dwelling, error) {
	if floor <= 0 {
		return demand.Dwelling{}, demand.ErrInvalidFloorArea
	}
	fields := []struct {
		name string
		val  float64
	}{
		{"heat", heat},
		{"ac", ac},
		{"range", rangeKW},
		{"dryer", dryer},
		{"water", water},
		{"ev-amps", float64(evAmps)},
	}
	for _, f := range fields {
		if _, err := demand.NonNegative(f.val, f.name); err != nil {
			return demand.Dwelling{}, err
		}
	}

	dw := demand.NewDwelling(floor)
	dw.HeatKW = heat
	dw.ACKW = ac
	dw.RangeKW = rangeKW
	dw.HasRange = hasRange
	dw.DryerKW = dryer
	dw.WaterHeaterKW = water
	if evAmps > 0 {
		dw.HasEV = true
		dw.EVAmps = evAmps
	}
	return dw, nil
}

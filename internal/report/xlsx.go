package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"cec-service/internal/demand/application"
)

// BuildXLSX renders the calculation as a workbook: a summary sheet and
// one row per unit breakdown.
func BuildXLSX(res application.Result) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	unitsSheet := "units"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(unitsSheet); err != nil {
		return nil, err
	}

	phases := 1
	if res.ThreePhase {
		phases = 3
	}
	_ = f.SetCellValue(summarySheet, "A1", "Service Load Calculation")
	_ = f.SetCellValue(summarySheet, "A3", "Units")
	_ = f.SetCellValue(summarySheet, "B3", len(res.Units))
	_ = f.SetCellValue(summarySheet, "A4", "Voltage")
	_ = f.SetCellValue(summarySheet, "B4", res.Voltage)
	_ = f.SetCellValue(summarySheet, "A5", "Phases")
	_ = f.SetCellValue(summarySheet, "B5", phases)
	_ = f.SetCellValue(summarySheet, "A6", "Combined base (W)")
	_ = f.SetCellValue(summarySheet, "B6", res.Detail.CombinedBase)
	_ = f.SetCellValue(summarySheet, "A7", "Total heating/AC (W)")
	_ = f.SetCellValue(summarySheet, "B7", res.Detail.TotalHeatAC)
	_ = f.SetCellValue(summarySheet, "A8", "Total (W)")
	_ = f.SetCellValue(summarySheet, "B8", res.TotalWatts)
	_ = f.SetCellValue(summarySheet, "A9", "Amps")
	_ = f.SetCellValue(summarySheet, "B9", res.Amps)
	_ = f.SetCellValue(summarySheet, "A10", "Suggested breaker (A)")
	_ = f.SetCellValue(summarySheet, "B10", res.Breaker)

	headers := []string{"Unit", "Basic", "Extra area", "Range", "EVSE",
		"Dryer", "Water heater", "Other", "Heating/AC", "Base", "Total"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(unitsSheet, cell, h)
	}
	for i, bd := range res.Units {
		row := i + 2
		values := []int{i + 1, bd.BasicLoad, bd.ExtraAreaLoad, bd.RangeLoad,
			bd.EVLoad, bd.DryerLoad, bd.WaterHeaterLoad, bd.ExtraLoad,
			bd.HeatAC, bd.BaseWithoutHeatAC, bd.TotalWatts}
		for col, v := range values {
			_ = f.SetCellValue(unitsSheet, fmt.Sprintf("%s%d", colName(col), row), v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func colName(i int) string {
	name, _ := excelize.ColumnNumberToName(i + 1)
	return name
}

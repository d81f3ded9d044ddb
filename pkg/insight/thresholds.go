package insight

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Thresholds hold the numeric knobs of the rules. Signal wording is never
// configurable.
type Thresholds struct {
	YieldFloorKg           float64
	HumidityTargetPercent  float64
	HumidityDeviationLimit float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		YieldFloorKg:           0.7,
		HumidityTargetPercent:  85,
		HumidityDeviationLimit: 10,
	}
}

// LoadThresholdsXLSX overlays values from a name/value workbook sheet onto
// base. Unknown names are ignored so the sheet can carry operator notes.
func LoadThresholdsXLSX(path string, base Thresholds) (Thresholds, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return base, err
	}
	defer x.Close()

	sheet := x.GetSheetName(0)
	rows, err := x.GetRows(sheet)
	if err != nil {
		return base, err
	}

	out := base
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(row[0]))
		val, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return base, fmt.Errorf("row %d: bad value %q", i+1, row[1])
		}
		switch name {
		case "yield_floor_kg":
			out.YieldFloorKg = val
		case "humidity_target_percent":
			out.HumidityTargetPercent = val
		case "humidity_deviation_limit":
			out.HumidityDeviationLimit = val
		}
	}
	return out, nil
}

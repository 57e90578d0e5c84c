// ABOUTME: XLSX export of simulation datasets for offline analysis
// ABOUTME: One sheet, header row plus one row per simulated scenario

package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tlawson/cipher-strength-analyzer/models"
)

const sheetName = "Simulations"

// WriteXLSX writes a simulation report to an .xlsx workbook at path.
func WriteXLSX(path string, report models.SimulationReport) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{
		"algorithm", "family", "key_bits_nominal", "key_bits_effective",
		"hardware", "threat", "attack_type",
		"guesses_per_second", "analytical_factor",
		"median_time_seconds", "median_time_human", "risk",
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range report.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		values := []interface{}{
			row.Algorithm, row.Family, row.KeyBitsNominal, row.KeyBitsEffective,
			row.Hardware, row.Threat, row.AttackType,
			row.GuessesPerSecond, row.AnalyticalFactor,
			row.MedianSeconds, row.MedianHuman, row.Risk,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

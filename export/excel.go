// Package export writes query results to local .xlsx files, one
// worksheet per run: a header row followed by one row per entity.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/RBaldassarre/worldaquatics-export/constants"
	apperrors "github.com/RBaldassarre/worldaquatics-export/errors"
)

const sheetName = "Sheet1"

// ExcelWriter writes worksheets with excelize. It implements
// interfaces.Exporter.
type ExcelWriter struct{}

// NewExcelWriter creates an ExcelWriter.
func NewExcelWriter() *ExcelWriter {
	return &ExcelWriter{}
}

// Write creates dir if needed and writes header plus rows into
// dir/filename. It returns the full path of the file written.
func (w *ExcelWriter) Write(dir, filename string, header []string, rows [][]string) (string, error) {
	if err := os.MkdirAll(dir, constants.OutputDirPermissions); err != nil {
		return "", apperrors.NewExportError("MKDIR", fmt.Sprintf("creating output directory %s", dir), err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeRow(f, 1, header); err != nil {
		return "", err
	}
	for i, row := range rows {
		if err := writeRow(f, i+2, row); err != nil {
			return "", err
		}
	}

	path := filepath.Join(dir, filename)
	if err := f.SaveAs(path); err != nil {
		return "", apperrors.NewExportError("SAVE", fmt.Sprintf("saving %s", path), err)
	}

	log.Info().Str("file", path).Int("rows", len(rows)).Msg("spreadsheet saved")
	return path, nil
}

func writeRow(f *excelize.File, rowIndex int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIndex)
	if err != nil {
		return apperrors.NewExportError("CELL_NAME", fmt.Sprintf("row %d", rowIndex), err)
	}
	// SetSheetRow wants a slice of interface{}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
		return apperrors.NewExportError("SET_ROW", fmt.Sprintf("row %d", rowIndex), err)
	}
	return nil
}

// SafeFilename replaces characters that are unsafe in file names.
func SafeFilename(s string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_")
	return replacer.Replace(s)
}

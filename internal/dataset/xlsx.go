package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rodrigoclira/hr-dashboard/internal/pkg/apperrors"
)

// readXLSX reads all rows of the first sheet of an XLSX workbook. The sheet
// is expected to carry the same header row as the CSV variant.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewLoadError(fmt.Sprintf("failed to open excel file: %v", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewLoadError("no sheets found in excel file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewLoadError(fmt.Sprintf("failed to read sheet %q: %v", sheets[0], err))
	}
	return rows, nil
}

package recap

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

var recapHeaders = []any{"No", "Date", "Name", "Arrival", "Departure"}

var recapColWidths = []struct {
	col   string
	width float64
}{
	{"A", 6},
	{"B", 15},
	{"C", 25},
	{"D", 15},
	{"E", 15},
}

// writeWorkbook menyusun workbook xlsx: satu sheet per grup status,
// dinamai persis dengan string statusnya, baris sesuai urutan dari
// Assemble.
func writeWorkbook(groups []StatusGroup) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, group := range groups {
		sheet := group.Status
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}

		for _, cw := range recapColWidths {
			if err := f.SetColWidth(sheet, cw.col, cw.col, cw.width); err != nil {
				return nil, err
			}
		}

		if err := f.SetSheetRow(sheet, "A1", &recapHeaders); err != nil {
			return nil, err
		}

		for ri, row := range group.Rows {
			cell, err := excelize.CoordinatesToCellName(1, ri+2)
			if err != nil {
				return nil, err
			}
			values := []any{row.No, row.Date, row.Name, row.Arrival, row.Departure}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}

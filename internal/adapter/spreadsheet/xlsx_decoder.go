package spreadsheet

import (
	"errors"
	"io"
	"log"
	"strings"

	"followup_importacao/internal/domain/entities"
	"followup_importacao/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

var ErrNoSheets = errors.New("spreadsheet has no sheets")

// Recognized header labels mapped to canonical column keys. Headers are
// matched after trimming and uppercasing; unrecognized columns are ignored.
var recognizedColumns = map[string]string{
	"PO":             entities.ColPO,
	"PC":             entities.ColPC,
	"SC":             entities.ColSC,
	"NECESSIDADE SC": entities.ColNeedSC,
	"NECESSIDADE PC": entities.ColNeedPC,
	"FORNECEDOR":     entities.ColSupplier,
	"PRODUTO":        entities.ColProduct,
	"VOLUME":         entities.ColVolume,
}

// XLSXDecoder extracts untyped rows from the first sheet of an uploaded
// workbook. Cells are read raw, so date cells surface as day serials and land
// on the normalizers untouched.

type XLSXDecoder struct{}

var _ interfaces.ISheetDecoder = (*XLSXDecoder)(nil)

func NewXLSXDecoder() *XLSXDecoder {
	return &XLSXDecoder{}
}

func (d *XLSXDecoder) DecodeFirstSheet(r io.Reader) ([]entities.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// First row is the header; its cell positions fix the column layout for
	// the rest of the sheet.
	columns := map[int]string{}
	for i, label := range rows[0] {
		key, ok := recognizedColumns[strings.ToUpper(strings.TrimSpace(label))]
		if !ok {
			continue
		}
		columns[i] = key
	}
	if len(columns) == 0 {
		log.Printf("[followup][spreadsheet] sheet %q has no recognized columns", sheets[0])
	}

	out := make([]entities.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := entities.RawRow{}
		for i, key := range columns {
			if i < len(cells) {
				row[key] = cells[i]
			}
		}
		out = append(out, row)
	}
	return out, nil
}

package interfaces

import (
	"followup_importacao/internal/domain/entities"
	"io"
)

// ISheetDecoder turns an uploaded spreadsheet into untyped rows from its
// first sheet, in original row order. A container/format failure is the only
// error it may return; row contents are never validated here.

type ISheetDecoder interface {
	DecodeFirstSheet(r io.Reader) ([]entities.RawRow, error)
}

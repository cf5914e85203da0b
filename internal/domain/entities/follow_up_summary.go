package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// FollowUpSummary is the single-pass aggregation over the non-excluded
// working set: per-status counts among imported records, a separate national
// count, and the follow-up counter fed by critico + alerta.

type FollowUpSummary struct {
	Atrasado  int `json:"atrasado"`
	Critico   int `json:"critico"`
	Alerta    int `json:"alerta"`
	Producao  int `json:"producao"`
	Embarcado int `json:"embarcado"`

	TotalImportados int `json:"total_importados"`
	TotalNacionais  int `json:"total_nacionais"`
	FollowUpNeeded  int `json:"follow_up_needed"`

	TotalVolume decimal.Decimal `json:"total_volume"`
}

// ImportResult reports the outcome of one completed spreadsheet import.

type ImportResult struct {
	ImportID     string    `json:"import_id"`
	ImportedAt   time.Time `json:"imported_at"`
	TotalRecords int       `json:"total_records"`
	SkippedRows  int       `json:"skipped_rows"`
}

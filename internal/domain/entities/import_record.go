package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordStatus is the urgency classification of a follow-up record.
//
// Domain notes:
//   - Exactly one status holds for a record at any time.
//   - `nacional` is reserved for national-origin records; they never go through
//     the day-delta classification.
//   - `embarcado` is a manual override persisted across imports; it only applies
//     to imported records.

type RecordStatus string

const (
	StatusAtrasado  RecordStatus = "atrasado"
	StatusCritico   RecordStatus = "critico"
	StatusAlerta    RecordStatus = "alerta"
	StatusProducao  RecordStatus = "producao"
	StatusEmbarcado RecordStatus = "embarcado"
	StatusNacional  RecordStatus = "nacional"
)

// RecordOrigin distinguishes imported items (urgency-tracked) from national ones.

type RecordOrigin string

const (
	OriginImportado RecordOrigin = "importado"
	OriginNacional  RecordOrigin = "nacional"
)

// Classification thresholds in calendar days until the contract need date.
// The alerta upper bound is inclusive: 60 days is alerta, 61 is producao.
const (
	criticoLimitDays = 30
	alertaLimitDays  = 60
)

// Classify maps a signed day-delta to an urgency status for imported records.
// Negative deltas mean the need date is already past.
func Classify(daysUntilNeed int) RecordStatus {
	switch {
	case daysUntilNeed < 0:
		return StatusAtrasado
	case daysUntilNeed < criticoLimitDays:
		return StatusCritico
	case daysUntilNeed <= alertaLimitDays:
		return StatusAlerta
	default:
		return StatusProducao
	}
}

// statusPriority orders statuses for listing: most urgent first.
// Unknown statuses sort after everything else.
var statusPriority = map[RecordStatus]int{
	StatusAtrasado:  1,
	StatusCritico:   2,
	StatusAlerta:    3,
	StatusProducao:  4,
	StatusEmbarcado: 5,
	StatusNacional:  6,
}

// StatusPriority returns the fixed sort priority of a status (99 when unmapped).
func StatusPriority(s RecordStatus) int {
	if p, ok := statusPriority[s]; ok {
		return p
	}
	return 99
}

// Timeline progress window: a record at 90+ days out shows the floor, a record
// at 0 days (or overdue) shows 100%.
const (
	timelineWindowDays = 90
	timelineFloorPct   = 5.0
)

// TimelineProgress converts a day-delta to a 0-100 progress percentage for the
// timeline bar. Clamped to a 5% floor so near-horizon records stay visible.
func TimelineProgress(daysUntilNeed int) float64 {
	pct := float64(timelineWindowDays-daysUntilNeed) * 100.0 / float64(timelineWindowDays)
	if pct > 100.0 {
		return 100.0
	}
	if pct < timelineFloorPct {
		return timelineFloorPct
	}
	return pct
}

// ImportRecord is one normalized follow-up item derived from a spreadsheet row.
//
// Identity:
//   - Assigned once at build time and never recomputed during the session.
//   - Imported rows: "<po>|<pc>|<ordinal>"; national rows: "nac|<pc>|<ordinal>".
//   - The row ordinal guarantees uniqueness even with duplicate business keys,
//     at the cost of identity stability under row reordering between imports.
//
// Overrides:
//   - ShippedAt is set iff Status == embarcado (imported records only).
//   - Excluded is orthogonal to Status; an excluded record keeps its
//     classification so a later restore shows it unchanged.

type ImportRecord struct {
	ID     string       `json:"id"`
	Origin RecordOrigin `json:"origin"`
	Status RecordStatus `json:"status"`

	PONumber string `json:"po_number"`
	PCNumber string `json:"pc_number"`
	SCNumber string `json:"sc_number"`

	Supplier string `json:"supplier"`
	Product  string `json:"product"`

	// Volume keeps the raw cell for display ("-" when absent); VolumeQty is the
	// parsed quantity (zero when the cell is absent or not numeric).
	Volume    string          `json:"volume"`
	VolumeQty decimal.Decimal `json:"volume_qty"`

	RequestNeedDate  *time.Time `json:"request_need_date,omitempty"`
	ContractNeedDate time.Time  `json:"contract_need_date"`

	// DaysUntilNeed is frozen at import time; transitions that re-derive the
	// status (desembarque) reuse it instead of recomputing against a new today.
	DaysUntilNeed int `json:"days_until_need"`

	ShippedAt *time.Time `json:"shipped_at,omitempty"`
	Excluded  bool       `json:"excluded"`
}

// WithShipped returns a copy flagged as embarcado at the given instant.
// National records are returned unchanged.
func (r ImportRecord) WithShipped(at time.Time) ImportRecord {
	if r.Origin == OriginNacional {
		return r
	}
	r.Status = StatusEmbarcado
	r.ShippedAt = &at
	return r
}

// WithoutShipped returns a copy with the shipped override cleared and the
// status re-derived from the frozen day-delta. Only embarcado records change.
func (r ImportRecord) WithoutShipped() ImportRecord {
	if r.Status != StatusEmbarcado {
		return r
	}
	r.Status = Classify(r.DaysUntilNeed)
	r.ShippedAt = nil
	return r
}

// WithExcluded returns a copy with the exclusion flag set; status untouched.
func (r ImportRecord) WithExcluded(excluded bool) ImportRecord {
	r.Excluded = excluded
	return r
}

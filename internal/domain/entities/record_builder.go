package entities

import (
	"fmt"
	"strings"
	"time"
)

// RawRow is one untyped spreadsheet row: canonical column key to raw cell.
// The decoder never guarantees column presence; the builder validates
// field-by-field through the cell normalizers.
type RawRow map[string]any

// Canonical column keys produced by the spreadsheet decoder.
const (
	ColPO       = "PO"
	ColPC       = "PC"
	ColSC       = "SC"
	ColNeedSC   = "NECESSIDADE SC"
	ColNeedPC   = "NECESSIDADE PC"
	ColSupplier = "FORNECEDOR"
	ColProduct  = "PRODUTO"
	ColVolume   = "VOLUME"
)

// BuildImportRecord maps one raw row (at the given zero-based ordinal) to a
// record, consulting snapshots of the shipped and excluded override sets.
// Returns ok=false for structurally empty rows, which are dropped silently.
//
// The row never fails: required dates degrade to today, optional fields to
// absent, descriptive fields to the "-" placeholder.
func BuildImportRecord(row RawRow, ordinal int, today time.Time, shipped, excluded map[string]time.Time) (ImportRecord, bool) {
	if cellAbsent(row[ColPO]) && cellAbsent(row[ColPC]) && cellAbsent(row[ColProduct]) {
		return ImportRecord{}, false
	}

	origin := OriginImportado
	if cellAbsent(row[ColPO]) {
		origin = OriginNacional
	}

	po := NormalizeString(row[ColPO])
	pc := NormalizeString(row[ColPC])

	var id string
	if origin == OriginNacional {
		id = fmt.Sprintf("nac|%s|%d", pc, ordinal)
	} else {
		id = fmt.Sprintf("%s|%s|%d", po, pc, ordinal)
	}

	contractNeed := NormalizeRequiredDate(row[ColNeedPC], today)
	days := DaysBetween(today, contractNeed)

	rec := ImportRecord{
		ID:               id,
		Origin:           origin,
		PONumber:         po,
		PCNumber:         pc,
		SCNumber:         NormalizeString(row[ColSC]),
		Supplier:         NormalizeString(row[ColSupplier]),
		Product:          NormalizeString(row[ColProduct]),
		Volume:           NormalizeString(row[ColVolume]),
		VolumeQty:        NormalizeVolume(row[ColVolume]),
		RequestNeedDate:  NormalizeDate(row[ColNeedSC]),
		ContractNeedDate: contractNeed,
		DaysUntilNeed:    days,
	}

	switch {
	case origin == OriginNacional:
		rec.Status = StatusNacional
	default:
		if at, ok := shipped[id]; ok {
			shippedAt := at
			rec.Status = StatusEmbarcado
			rec.ShippedAt = &shippedAt
		} else {
			rec.Status = Classify(days)
		}
	}

	if _, ok := excluded[id]; ok {
		rec.Excluded = true
	}

	return rec, true
}

func cellAbsent(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

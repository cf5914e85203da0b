package response

import (
	"testing"
	"time"

	"followup_importacao/internal/domain/entities"
)

func TestFromImportRecord(t *testing.T) {
	need := time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC)
	reqNeed := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	shipped := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	rec := entities.ImportRecord{
		ID:               "PO-1|PC-1|0",
		Origin:           entities.OriginImportado,
		Status:           entities.StatusEmbarcado,
		PONumber:         "PO-1",
		PCNumber:         "PC-1",
		SCNumber:         "SC-1",
		Supplier:         "ACME",
		Product:          "Resina",
		Volume:           "12,5",
		RequestNeedDate:  &reqNeed,
		ContractNeedDate: need,
		DaysUntilNeed:    45,
		ShippedAt:        &shipped,
	}

	got := FromImportRecord(rec)
	if got.ContractNeedDate != "2024-07-25" || got.RequestNeedDate != "2024-07-01" {
		t.Fatalf("dates = %q / %q", got.ContractNeedDate, got.RequestNeedDate)
	}
	if got.TimelineProgress != 50.0 {
		t.Fatalf("timeline = %v, want 50", got.TimelineProgress)
	}
	if got.Status != "embarcado" || got.ShippedAt == nil {
		t.Fatalf("status = %q shipped_at = %v", got.Status, got.ShippedAt)
	}

	t.Run("absent optional date stays empty", func(t *testing.T) {
		rec := rec
		rec.RequestNeedDate = nil
		if got := FromImportRecord(rec); got.RequestNeedDate != "" {
			t.Fatalf("request_need_date = %q, want empty", got.RequestNeedDate)
		}
	})
}

package entities

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		days int
		want RecordStatus
	}{
		{-100, StatusAtrasado},
		{-1, StatusAtrasado},
		{0, StatusCritico},
		{15, StatusCritico},
		{29, StatusCritico},
		{30, StatusAlerta},
		{45, StatusAlerta},
		{60, StatusAlerta},
		{61, StatusProducao},
		{365, StatusProducao},
	}
	for _, tc := range cases {
		if got := Classify(tc.days); got != tc.want {
			t.Errorf("Classify(%d) = %s, want %s", tc.days, got, tc.want)
		}
	}
}

func TestStatusPriority(t *testing.T) {
	order := []RecordStatus{StatusAtrasado, StatusCritico, StatusAlerta, StatusProducao, StatusEmbarcado, StatusNacional}
	for i := 1; i < len(order); i++ {
		if StatusPriority(order[i-1]) >= StatusPriority(order[i]) {
			t.Fatalf("expected %s to sort before %s", order[i-1], order[i])
		}
	}
	if got := StatusPriority(RecordStatus("desconhecido")); got != 99 {
		t.Fatalf("unmapped status priority = %d, want 99", got)
	}
}

func TestTimelineProgress(t *testing.T) {
	t.Run("overdue and due now are full", func(t *testing.T) {
		if got := TimelineProgress(0); got != 100.0 {
			t.Fatalf("TimelineProgress(0) = %v, want 100", got)
		}
		if got := TimelineProgress(-30); got != 100.0 {
			t.Fatalf("TimelineProgress(-30) = %v, want 100", got)
		}
	})

	t.Run("far out clamps to floor", func(t *testing.T) {
		if got := TimelineProgress(90); got != 5.0 {
			t.Fatalf("TimelineProgress(90) = %v, want 5", got)
		}
		if got := TimelineProgress(400); got != 5.0 {
			t.Fatalf("TimelineProgress(400) = %v, want 5", got)
		}
	})

	t.Run("linear in between", func(t *testing.T) {
		if got := TimelineProgress(45); got != 50.0 {
			t.Fatalf("TimelineProgress(45) = %v, want 50", got)
		}
	})
}

func TestShippedTransitions(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

	t.Run("ship then unship restores classification", func(t *testing.T) {
		rec := ImportRecord{ID: "po-1|pc-1|0", Origin: OriginImportado, Status: StatusCritico, DaysUntilNeed: 12}

		shipped := rec.WithShipped(now)
		if shipped.Status != StatusEmbarcado {
			t.Fatalf("expected embarcado, got %s", shipped.Status)
		}
		if shipped.ShippedAt == nil || !shipped.ShippedAt.Equal(now) {
			t.Fatalf("expected shipped_at %v, got %v", now, shipped.ShippedAt)
		}

		back := shipped.WithoutShipped()
		if back.Status != StatusCritico {
			t.Fatalf("expected critico after unship, got %s", back.Status)
		}
		if back.ShippedAt != nil {
			t.Fatalf("expected shipped_at cleared, got %v", back.ShippedAt)
		}
	})

	t.Run("unship re-derives from frozen day-delta", func(t *testing.T) {
		rec := ImportRecord{Origin: OriginImportado, Status: StatusAtrasado, DaysUntilNeed: -5}
		back := rec.WithShipped(now).WithoutShipped()
		if back.Status != StatusAtrasado {
			t.Fatalf("expected atrasado, got %s", back.Status)
		}
	})

	t.Run("ship is a no-op on national records", func(t *testing.T) {
		rec := ImportRecord{Origin: OriginNacional, Status: StatusNacional}
		got := rec.WithShipped(now)
		if got.Status != StatusNacional || got.ShippedAt != nil {
			t.Fatalf("national record changed by WithShipped: %+v", got)
		}
	})

	t.Run("unship is a no-op on non-shipped records", func(t *testing.T) {
		rec := ImportRecord{Origin: OriginImportado, Status: StatusProducao, DaysUntilNeed: 80}
		got := rec.WithoutShipped()
		if got.Status != StatusProducao {
			t.Fatalf("non-shipped record changed by WithoutShipped: %+v", got)
		}
	})
}

func TestExclusionOrthogonality(t *testing.T) {
	at := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	rec := ImportRecord{Origin: OriginImportado, Status: StatusEmbarcado, ShippedAt: &at, DaysUntilNeed: 40}

	excluded := rec.WithExcluded(true)
	if excluded.Status != StatusEmbarcado || excluded.ShippedAt == nil {
		t.Fatalf("exclusion altered status or shipped_at: %+v", excluded)
	}
	if !excluded.Excluded {
		t.Fatalf("expected excluded flag set")
	}

	restored := excluded.WithExcluded(false)
	if restored.Excluded || restored.Status != StatusEmbarcado {
		t.Fatalf("restore did not return record to original state: %+v", restored)
	}
}

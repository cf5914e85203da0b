package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"followup_importacao/internal/domain/entities"
	"followup_importacao/internal/usecase/interfaces"
	mock_interfaces "followup_importacao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testToday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

// needIn builds a dd/mm/yyyy contract need date the given number of days from
// the fixed test today.
func needIn(days int) string {
	return testToday.AddDate(0, 0, days).Format("02/01/2006")
}

func importedRow(po, pc, supplier, product, needPC string) entities.RawRow {
	return entities.RawRow{
		entities.ColPO:       po,
		entities.ColPC:       pc,
		entities.ColSC:       "SC-" + pc,
		entities.ColNeedPC:   needPC,
		entities.ColSupplier: supplier,
		entities.ColProduct:  product,
		entities.ColVolume:   "10",
	}
}

func nationalRow(pc, product string) entities.RawRow {
	return entities.RawRow{
		entities.ColPC:      pc,
		entities.ColProduct: product,
		entities.ColNeedPC:  needIn(10),
	}
}

// newTestUseCase wires a usecase against a stateful in-memory override store
// expressed through gomock, plus a decoder stub for the given rows.
func newTestUseCase(t *testing.T, ctrl *gomock.Controller, rows []entities.RawRow) (*FollowUpUseCase, map[string]map[string]time.Time) {
	t.Helper()

	sets := map[string]map[string]time.Time{}
	store := mock_interfaces.NewMockIOverrideRepository(ctrl)
	store.EXPECT().LoadSet(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string) (map[string]time.Time, error) {
			out := map[string]time.Time{}
			for k, v := range sets[name] {
				out[k] = v
			}
			return out, nil
		},
	).AnyTimes()
	store.EXPECT().SaveSet(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string, entries map[string]time.Time) error {
			sets[name] = entries
			return nil
		},
	).AnyTimes()

	decoder := mock_interfaces.NewMockISheetDecoder(ctrl)
	decoder.EXPECT().DecodeFirstSheet(gomock.Any()).DoAndReturn(
		func(_ any) ([]entities.RawRow, error) { return rows, nil },
	).AnyTimes()

	uc := NewFollowUpUseCase(decoder, store)
	uc.now = func() time.Time { return testToday }
	return uc, sets
}

func mustImport(t *testing.T, uc *FollowUpUseCase) entities.ImportResult {
	t.Helper()
	res, err := uc.ImportSpreadsheet(context.Background(), strings.NewReader("planilha"))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	return res
}

func TestFollowUpUseCase_ImportSpreadsheet(t *testing.T) {
	t.Run("builds records and drops structurally empty rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rows := []entities.RawRow{
			importedRow("PO-1", "PC-1", "ACME", "Resina", needIn(10)),
			{entities.ColPO: " ", entities.ColPC: "", entities.ColProduct: nil},
			nationalRow("PC-2", "Chapa"),
		}
		uc, _ := newTestUseCase(t, ctrl, rows)

		res := mustImport(t, uc)
		if res.TotalRecords != 2 || res.SkippedRows != 1 {
			t.Fatalf("result = %+v, want 2 records / 1 skipped", res)
		}
		if res.ImportID == "" {
			t.Fatalf("expected generated import id")
		}
		if !res.ImportedAt.Equal(testToday) {
			t.Fatalf("imported_at = %v", res.ImportedAt)
		}
	})

	t.Run("decode failure preserves prior collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, _ := newTestUseCase(t, ctrl, []entities.RawRow{importedRow("PO-1", "PC-1", "ACME", "Resina", needIn(10))})
		mustImport(t, uc)

		badDecoder := mock_interfaces.NewMockISheetDecoder(ctrl)
		badDecoder.EXPECT().DecodeFirstSheet(gomock.Any()).Return(nil, errors.New("zip: not a valid zip file"))
		uc.decoder = badDecoder

		_, err := uc.ImportSpreadsheet(context.Background(), strings.NewReader("corrompida"))
		if !errors.Is(err, ErrSpreadsheetDecode) {
			t.Fatalf("expected ErrSpreadsheetDecode, got %v", err)
		}

		recs, _ := uc.ListRecords(context.Background(), RecordQuery{})
		if len(recs) != 1 {
			t.Fatalf("prior collection lost: %d records", len(recs))
		}
	})

	t.Run("corrupt override store degrades to empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_interfaces.NewMockIOverrideRepository(ctrl)
		store.EXPECT().LoadSet(gomock.Any(), gomock.Any()).Return(nil, errors.New("corrupt item")).Times(2)

		decoder := mock_interfaces.NewMockISheetDecoder(ctrl)
		decoder.EXPECT().DecodeFirstSheet(gomock.Any()).Return([]entities.RawRow{importedRow("PO-1", "PC-1", "ACME", "Resina", needIn(10))}, nil)

		uc := NewFollowUpUseCase(decoder, store)
		uc.now = func() time.Time { return testToday }

		res := mustImport(t, uc)
		if res.TotalRecords != 1 {
			t.Fatalf("expected import to survive store failure, got %+v", res)
		}
	})

	t.Run("overrides reattach across re-imports by identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rows := []entities.RawRow{
			importedRow("PO-1", "PC-1", "ACME", "Resina", needIn(10)),
			importedRow("PO-2", "PC-2", "Beta", "Motor", needIn(40)),
		}
		uc, _ := newTestUseCase(t, ctrl, rows)
		mustImport(t, uc)

		recs, _ := uc.ListRecords(context.Background(), RecordQuery{})
		shippedID := recs[0].ID
		excludedID := recs[1].ID
		if _, err := uc.MarkShipped(context.Background(), shippedID); err != nil {
			t.Fatalf("mark shipped: %v", err)
		}
		if _, err := uc.Exclude(context.Background(), excludedID); err != nil {
			t.Fatalf("exclude: %v", err)
		}

		// Same spreadsheet, same row order: identities must reproduce.
		mustImport(t, uc)

		active, _ := uc.ListRecords(context.Background(), RecordQuery{})
		if len(active) != 1 || active[0].ID != shippedID || active[0].Status != entities.StatusEmbarcado {
			t.Fatalf("shipped override did not reattach: %+v", active)
		}
		excluded, _ := uc.ListRecords(context.Background(), RecordQuery{Excluded: true})
		if len(excluded) != 1 || excluded[0].ID != excludedID {
			t.Fatalf("excluded override did not reattach: %+v", excluded)
		}
	})
}

func TestFollowUpUseCase_Transitions(t *testing.T) {
	rows := []entities.RawRow{
		importedRow("PO-1", "PC-1", "ACME", "Resina", needIn(10)),
		nationalRow("PC-9", "Chapa"),
	}

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newTestUseCase(t, ctrl, rows)
		mustImport(t, uc)

		if _, err := uc.MarkShipped(context.Background(), "inexistente"); !errors.Is(err, ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("mark then unmark restores classification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, sets := newTestUseCase(t, ctrl, rows)
		mustImport(t, uc)

		rec, err := uc.MarkShipped(context.Background(), "PO-1|PC-1|0")
		if err != nil {
			t.Fatalf("mark: %v", err)
		}
		if rec.Status != entities.StatusEmbarcado || rec.ShippedAt == nil {
			t.Fatalf("after mark: %+v", rec)
		}
		if _, ok := sets[interfaces.OverrideSetEmbarcados]["PO-1|PC-1|0"]; !ok {
			t.Fatalf("shipped override not persisted")
		}

		rec, err = uc.UnmarkShipped(context.Background(), "PO-1|PC-1|0")
		if err != nil {
			t.Fatalf("unmark: %v", err)
		}
		if rec.Status != entities.StatusCritico || rec.ShippedAt != nil {
			t.Fatalf("after unmark: %+v", rec)
		}
		if len(sets[interfaces.OverrideSetEmbarcados]) != 0 {
			t.Fatalf("shipped override not cleared: %v", sets[interfaces.OverrideSetEmbarcados])
		}
	})

	t.Run("marking a national record is a silent no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, sets := newTestUseCase(t, ctrl, rows)
		mustImport(t, uc)

		rec, err := uc.MarkShipped(context.Background(), "nac|PC-9|1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rec.Status != entities.StatusNacional {
			t.Fatalf("national record mutated: %+v", rec)
		}
		if len(sets[interfaces.OverrideSetEmbarcados]) != 0 {
			t.Fatalf("override written for national record")
		}
	})

	t.Run("unmarking a non-shipped record is a silent no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newTestUseCase(t, ctrl, rows)
		mustImport(t, uc)

		rec, err := uc.UnmarkShipped(context.Background(), "PO-1|PC-1|0")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rec.Status != entities.StatusCritico {
			t.Fatalf("record mutated: %+v", rec)
		}
	})

	t.Run("repeated marks are idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newTestUseCase(t, ctrl, rows)
		mustImport(t, uc)

		first, _ := uc.MarkShipped(context.Background(), "PO-1|PC-1|0")
		second, err := uc.MarkShipped(context.Background(), "PO-1|PC-1|0")
		if err != nil {
			t.Fatalf("second mark: %v", err)
		}
		if !second.ShippedAt.Equal(*first.ShippedAt) {
			t.Fatalf("second mark restamped shipped_at")
		}
	})

	t.Run("exclude and restore leave status untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, sets := newTestUseCase(t, ctrl, rows)
		mustImport(t, uc)

		rec, err := uc.Exclude(context.Background(), "PO-1|PC-1|0")
		if err != nil {
			t.Fatalf("exclude: %v", err)
		}
		if !rec.Excluded || rec.Status != entities.StatusCritico {
			t.Fatalf("after exclude: %+v", rec)
		}
		if _, ok := sets[interfaces.OverrideSetExcluidos]["PO-1|PC-1|0"]; !ok {
			t.Fatalf("excluded override not persisted")
		}

		rec, err = uc.Restore(context.Background(), "PO-1|PC-1|0")
		if err != nil {
			t.Fatalf("restore: %v", err)
		}
		if rec.Excluded || rec.Status != entities.StatusCritico {
			t.Fatalf("after restore: %+v", rec)
		}
	})

	t.Run("store write failure propagates and leaves the record unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_interfaces.NewMockIOverrideRepository(ctrl)
		store.EXPECT().LoadSet(gomock.Any(), gomock.Any()).Return(map[string]time.Time{}, nil).AnyTimes()
		saveErr := errors.New("dynamodb unavailable")
		store.EXPECT().SaveSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(saveErr).AnyTimes()

		decoder := mock_interfaces.NewMockISheetDecoder(ctrl)
		decoder.EXPECT().DecodeFirstSheet(gomock.Any()).Return(rows, nil)

		uc := NewFollowUpUseCase(decoder, store)
		uc.now = func() time.Time { return testToday }
		mustImport(t, uc)

		if _, err := uc.MarkShipped(context.Background(), "PO-1|PC-1|0"); !errors.Is(err, saveErr) {
			t.Fatalf("expected save error, got %v", err)
		}
		recs, _ := uc.ListRecords(context.Background(), RecordQuery{})
		if recs[0].Status != entities.StatusCritico {
			t.Fatalf("record mutated despite store failure: %+v", recs[0])
		}
	})
}

func TestFollowUpUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := []entities.RawRow{
		importedRow("PO-1", "PC-1", "ACME", "Resina", needIn(-5)),
		importedRow("PO-2", "PC-2", "ACME", "Motor", needIn(-1)),
		importedRow("PO-3", "PC-3", "Beta", "Chapa", needIn(10)),
		nationalRow("PC-4", "Parafuso"),
		nationalRow("PC-5", "Porca"),
	}
	uc, _ := newTestUseCase(t, ctrl, rows)
	mustImport(t, uc)

	s, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if s.Atrasado != 2 || s.Critico != 1 || s.TotalImportados != 3 || s.TotalNacionais != 2 {
		t.Fatalf("summary = %+v", s)
	}
	if s.FollowUpNeeded != 1 {
		t.Fatalf("follow_up_needed = %d, want 1", s.FollowUpNeeded)
	}
	if s.TotalVolume.String() != "30" {
		t.Fatalf("total volume = %s, want 30", s.TotalVolume)
	}

	t.Run("excluded records leave the aggregation", func(t *testing.T) {
		if _, err := uc.Exclude(context.Background(), "PO-3|PC-3|2"); err != nil {
			t.Fatalf("exclude: %v", err)
		}
		s, _ := uc.Summary(context.Background())
		if s.Critico != 0 || s.TotalImportados != 2 || s.FollowUpNeeded != 0 {
			t.Fatalf("summary after exclusion = %+v", s)
		}
	})
}

func TestFollowUpUseCase_ListRecords(t *testing.T) {
	rows := []entities.RawRow{
		importedRow("PO-1", "PC-1", "ACME", "Resina PET", needIn(45)),
		importedRow("PO-2", "PC-2", "Beta", "Motor WEG", needIn(-3)),
		importedRow("PO-3", "PC-3", "ACME", "Chapa inox", needIn(10)),
		importedRow("PO-4", "PC-4", "Gama", "Rolamento", needIn(90)),
	}

	newWithRows := func(t *testing.T, ctrl *gomock.Controller) *FollowUpUseCase {
		uc, _ := newTestUseCase(t, ctrl, rows)
		mustImport(t, uc)
		return uc
	}

	t.Run("sorts by urgency priority then proximity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newWithRows(t, ctrl)

		recs, _ := uc.ListRecords(context.Background(), RecordQuery{})
		var got []int
		for _, r := range recs {
			got = append(got, r.DaysUntilNeed)
		}
		want := []int{-3, 10, 45, 90}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order = %v, want %v", got, want)
			}
		}
	})

	t.Run("free text matches any business field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newWithRows(t, ctrl)

		recs, _ := uc.ListRecords(context.Background(), RecordQuery{Texto: "weg"})
		if len(recs) != 1 || recs[0].PONumber != "PO-2" {
			t.Fatalf("texto filter = %+v", recs)
		}

		recs, _ = uc.ListRecords(context.Background(), RecordQuery{Texto: "sc-pc-3"})
		if len(recs) != 1 || recs[0].PONumber != "PO-3" {
			t.Fatalf("sc search = %+v", recs)
		}
	})

	t.Run("supplier exact and product substring compose", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newWithRows(t, ctrl)

		recs, _ := uc.ListRecords(context.Background(), RecordQuery{Fornecedor: "ACME", Produto: "chapa"})
		if len(recs) != 1 || recs[0].PONumber != "PO-3" {
			t.Fatalf("composed filters = %+v", recs)
		}

		recs, _ = uc.ListRecords(context.Background(), RecordQuery{Fornecedor: "acme"})
		if len(recs) != 0 {
			t.Fatalf("supplier match should be exact, got %+v", recs)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newWithRows(t, ctrl)

		recs, _ := uc.ListRecords(context.Background(), RecordQuery{Status: "atrasado"})
		if len(recs) != 1 || recs[0].Status != entities.StatusAtrasado {
			t.Fatalf("status filter = %+v", recs)
		}
	})

	t.Run("need-date range is inclusive on both ends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newWithRows(t, ctrl)

		from := testToday.AddDate(0, 0, 10)
		to := testToday.AddDate(0, 0, 45)
		recs, _ := uc.ListRecords(context.Background(), RecordQuery{NecessidadeDe: &from, NecessidadeAte: &to})
		if len(recs) != 2 {
			t.Fatalf("range filter = %+v", recs)
		}
	})

	t.Run("excluded scope only lists excluded records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newWithRows(t, ctrl)

		if _, err := uc.Exclude(context.Background(), "PO-1|PC-1|0"); err != nil {
			t.Fatalf("exclude: %v", err)
		}
		active, _ := uc.ListRecords(context.Background(), RecordQuery{})
		excluded, _ := uc.ListRecords(context.Background(), RecordQuery{Excluded: true})
		if len(active) != 3 || len(excluded) != 1 {
			t.Fatalf("active=%d excluded=%d", len(active), len(excluded))
		}
	})
}

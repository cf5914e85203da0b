package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"followup_importacao/internal/domain/entities"
	"followup_importacao/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSpreadsheetDecode = errors.New("spreadsheet decode failed")
	ErrRecordNotFound    = errors.New("record not found")
)

// RecordQuery carries the composable filters accepted by ListRecords.
// Zero-valued filters are skipped, not treated as "match nothing".
type RecordQuery struct {
	Excluded bool // scope the excluded set instead of the active one

	Texto      string
	Fornecedor string
	Produto    string
	Status     string

	NecessidadeDe  *time.Time
	NecessidadeAte *time.Time
}

// IFollowUpUseCase exposes the follow-up pipeline operations:
//   - Spreadsheet import: rebuild the working set wholesale and re-apply
//     persisted overrides by record identity.
//   - Manual transitions: embarcar/desembarcar and excluir/restaurar.
//   - Derived views: filtered/sorted listing and the summary aggregation.

type IFollowUpUseCase interface {
	ImportSpreadsheet(ctx context.Context, r io.Reader) (entities.ImportResult, error)
	ListRecords(ctx context.Context, q RecordQuery) ([]entities.ImportRecord, error)
	Summary(ctx context.Context) (entities.FollowUpSummary, error)
	MarkShipped(ctx context.Context, id string) (entities.ImportRecord, error)
	UnmarkShipped(ctx context.Context, id string) (entities.ImportRecord, error)
	Exclude(ctx context.Context, id string) (entities.ImportRecord, error)
	Restore(ctx context.Context, id string) (entities.ImportRecord, error)
}

// FollowUpUseCase owns the in-memory working set. All override
// read-modify-write sequences and the import swap run under mu, so a reader
// never observes a partially rebuilt collection or a lost override update.

type FollowUpUseCase struct {
	decoder interfaces.ISheetDecoder
	store   interfaces.IOverrideRepository

	// now is injectable so day-delta classification is deterministic in tests.
	now func() time.Time

	mu      sync.RWMutex
	records []entities.ImportRecord
}

var _ IFollowUpUseCase = (*FollowUpUseCase)(nil)

func NewFollowUpUseCase(decoder interfaces.ISheetDecoder, store interfaces.IOverrideRepository) *FollowUpUseCase {
	return &FollowUpUseCase{
		decoder: decoder,
		store:   store,
		now:     time.Now,
	}
}

// ImportSpreadsheet rebuilds the whole working set from the uploaded file.
// Decode failure is the only fatal outcome and leaves the prior collection
// untouched; row-level anomalies degrade leniently inside the builder.
func (u *FollowUpUseCase) ImportSpreadsheet(ctx context.Context, r io.Reader) (entities.ImportResult, error) {
	rows, err := u.decoder.DecodeFirstSheet(r)
	if err != nil {
		log.Printf("[followup][usecase] import aborted, decode failed: %v", err)
		return entities.ImportResult{}, fmt.Errorf("%w: %v", ErrSpreadsheetDecode, err)
	}

	shipped := u.loadSet(ctx, interfaces.OverrideSetEmbarcados)
	excluded := u.loadSet(ctx, interfaces.OverrideSetExcluidos)

	today := u.now()
	built := make([]entities.ImportRecord, 0, len(rows))
	skipped := 0
	for ordinal, row := range rows {
		rec, ok := entities.BuildImportRecord(row, ordinal, today, shipped, excluded)
		if !ok {
			skipped++
			continue
		}
		built = append(built, rec)
	}

	// Single observable step: the previous collection stays visible until here.
	u.mu.Lock()
	u.records = built
	u.mu.Unlock()

	result := entities.ImportResult{
		ImportID:     uuid.NewString(),
		ImportedAt:   today,
		TotalRecords: len(built),
		SkippedRows:  skipped,
	}
	log.Printf("[followup][usecase] import %s done rows=%d records=%d skipped=%d", result.ImportID, len(rows), result.TotalRecords, result.SkippedRows)
	return result, nil
}

// MarkShipped sets the persisted shipped override and transitions the record
// to embarcado. National records and already-shipped records are no-ops.
func (u *FollowUpUseCase) MarkShipped(ctx context.Context, id string) (entities.ImportRecord, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx, rec, err := u.findLocked(id)
	if err != nil {
		return entities.ImportRecord{}, err
	}
	if rec.Origin == entities.OriginNacional {
		log.Printf("[followup][usecase] ignoring embarque of national record id=%s", id)
		return rec, nil
	}
	if rec.Status == entities.StatusEmbarcado {
		return rec, nil
	}

	now := u.now()
	entries := u.loadSet(ctx, interfaces.OverrideSetEmbarcados)
	entries[id] = now
	if err := u.store.SaveSet(ctx, interfaces.OverrideSetEmbarcados, entries); err != nil {
		return entities.ImportRecord{}, err
	}

	u.records[idx] = rec.WithShipped(now)
	return u.records[idx], nil
}

// UnmarkShipped clears the shipped override and re-derives the status from
// the record's frozen day-delta. Non-shipped records are no-ops.
func (u *FollowUpUseCase) UnmarkShipped(ctx context.Context, id string) (entities.ImportRecord, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx, rec, err := u.findLocked(id)
	if err != nil {
		return entities.ImportRecord{}, err
	}
	if rec.Status != entities.StatusEmbarcado {
		log.Printf("[followup][usecase] ignoring desembarque of non-shipped record id=%s status=%s", id, rec.Status)
		return rec, nil
	}

	entries := u.loadSet(ctx, interfaces.OverrideSetEmbarcados)
	delete(entries, id)
	if err := u.store.SaveSet(ctx, interfaces.OverrideSetEmbarcados, entries); err != nil {
		return entities.ImportRecord{}, err
	}

	u.records[idx] = rec.WithoutShipped()
	return u.records[idx], nil
}

// Exclude flags the record out of the active set without touching its status.
func (u *FollowUpUseCase) Exclude(ctx context.Context, id string) (entities.ImportRecord, error) {
	return u.setExcluded(ctx, id, true)
}

// Restore returns a previously excluded record to the active set, with the
// classification it kept while excluded.
func (u *FollowUpUseCase) Restore(ctx context.Context, id string) (entities.ImportRecord, error) {
	return u.setExcluded(ctx, id, false)
}

func (u *FollowUpUseCase) setExcluded(ctx context.Context, id string, excluded bool) (entities.ImportRecord, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx, rec, err := u.findLocked(id)
	if err != nil {
		return entities.ImportRecord{}, err
	}
	if rec.Excluded == excluded {
		return rec, nil
	}

	entries := u.loadSet(ctx, interfaces.OverrideSetExcluidos)
	if excluded {
		entries[id] = u.now()
	} else {
		delete(entries, id)
	}
	if err := u.store.SaveSet(ctx, interfaces.OverrideSetExcluidos, entries); err != nil {
		return entities.ImportRecord{}, err
	}

	u.records[idx] = rec.WithExcluded(excluded)
	return u.records[idx], nil
}

// ListRecords filters the requested scope and sorts by urgency priority,
// then by day-delta ascending. The sort is stable, so ties keep input order.
func (u *FollowUpUseCase) ListRecords(_ context.Context, q RecordQuery) ([]entities.ImportRecord, error) {
	u.mu.RLock()
	snapshot := make([]entities.ImportRecord, len(u.records))
	copy(snapshot, u.records)
	u.mu.RUnlock()

	out := make([]entities.ImportRecord, 0, len(snapshot))
	for _, rec := range snapshot {
		if rec.Excluded != q.Excluded {
			continue
		}
		if !matchesQuery(rec, q) {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := entities.StatusPriority(out[i].Status), entities.StatusPriority(out[j].Status)
		if pi != pj {
			return pi < pj
		}
		return out[i].DaysUntilNeed < out[j].DaysUntilNeed
	})
	return out, nil
}

// Summary reduces the non-excluded working set in a single pass.
func (u *FollowUpUseCase) Summary(_ context.Context) (entities.FollowUpSummary, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	s := entities.FollowUpSummary{TotalVolume: decimal.Zero}
	for _, rec := range u.records {
		if rec.Excluded {
			continue
		}
		s.TotalVolume = s.TotalVolume.Add(rec.VolumeQty)
		if rec.Origin == entities.OriginNacional {
			s.TotalNacionais++
			continue
		}
		s.TotalImportados++
		switch rec.Status {
		case entities.StatusAtrasado:
			s.Atrasado++
		case entities.StatusCritico:
			s.Critico++
		case entities.StatusAlerta:
			s.Alerta++
		case entities.StatusProducao:
			s.Producao++
		case entities.StatusEmbarcado:
			s.Embarcado++
		}
	}
	s.FollowUpNeeded = s.Critico + s.Alerta
	return s, nil
}

func (u *FollowUpUseCase) findLocked(id string) (int, entities.ImportRecord, error) {
	for i, rec := range u.records {
		if rec.ID == id {
			return i, rec, nil
		}
	}
	return -1, entities.ImportRecord{}, ErrRecordNotFound
}

// loadSet degrades a failed or corrupt override load to an empty map so a bad
// persisted state never blocks an import or a transition. Prior overrides are
// lost in that case, which is logged but not surfaced.
func (u *FollowUpUseCase) loadSet(ctx context.Context, name string) map[string]time.Time {
	entries, err := u.store.LoadSet(ctx, name)
	if err != nil {
		log.Printf("[followup][usecase] override set %q load failed, assuming empty: %v", name, err)
		return map[string]time.Time{}
	}
	if entries == nil {
		entries = map[string]time.Time{}
	}
	return entries
}

func matchesQuery(rec entities.ImportRecord, q RecordQuery) bool {
	if texto := strings.TrimSpace(q.Texto); texto != "" {
		needle := strings.ToLower(texto)
		if !containsFold(rec.SCNumber, needle) &&
			!containsFold(rec.PONumber, needle) &&
			!containsFold(rec.PCNumber, needle) &&
			!containsFold(rec.Supplier, needle) &&
			!containsFold(rec.Product, needle) {
			return false
		}
	}
	if f := strings.TrimSpace(q.Fornecedor); f != "" && rec.Supplier != f {
		return false
	}
	if p := strings.TrimSpace(q.Produto); p != "" && !containsFold(rec.Product, strings.ToLower(p)) {
		return false
	}
	if s := strings.TrimSpace(q.Status); s != "" && string(rec.Status) != s {
		return false
	}
	need := entities.StartOfDay(rec.ContractNeedDate)
	if q.NecessidadeDe != nil && need.Before(entities.StartOfDay(*q.NecessidadeDe)) {
		return false
	}
	if q.NecessidadeAte != nil && need.After(entities.StartOfDay(*q.NecessidadeAte)) {
		return false
	}
	return true
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

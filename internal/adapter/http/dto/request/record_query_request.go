package request

import (
	"errors"
	"strings"
	"time"

	"followup_importacao/internal/usecase"
)

var ErrInvalidDateFilter = errors.New("invalid date filter")

const dateFilterLayout = "2006-01-02"

// RecordQueryRequest binds the composable listing filters from query params.
// Every field is optional; blanks are skipped, not treated as "match nothing".
type RecordQueryRequest struct {
	Busca          string `form:"busca"`
	Fornecedor     string `form:"fornecedor"`
	Produto        string `form:"produto"`
	Status         string `form:"status"`
	NecessidadeDe  string `form:"necessidade_de"`
	NecessidadeAte string `form:"necessidade_ate"`
	Excluidos      bool   `form:"excluidos"`
}

func (r RecordQueryRequest) ToQuery() (usecase.RecordQuery, error) {
	q := usecase.RecordQuery{
		Excluded:   r.Excluidos,
		Texto:      strings.TrimSpace(r.Busca),
		Fornecedor: strings.TrimSpace(r.Fornecedor),
		Produto:    strings.TrimSpace(r.Produto),
		Status:     strings.TrimSpace(r.Status),
	}

	var err error
	if q.NecessidadeDe, err = parseDateFilter(r.NecessidadeDe); err != nil {
		return usecase.RecordQuery{}, err
	}
	if q.NecessidadeAte, err = parseDateFilter(r.NecessidadeAte); err != nil {
		return usecase.RecordQuery{}, err
	}
	return q, nil
}

func parseDateFilter(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateFilterLayout, raw)
	if err != nil {
		return nil, ErrInvalidDateFilter
	}
	return &t, nil
}

package response

import (
	"time"

	"followup_importacao/internal/domain/entities"
)

type FollowUpSummaryResponse struct {
	Atrasado  int `json:"atrasado"`
	Critico   int `json:"critico"`
	Alerta    int `json:"alerta"`
	Producao  int `json:"producao"`
	Embarcado int `json:"embarcado"`

	TotalImportados int `json:"total_importados"`
	TotalNacionais  int `json:"total_nacionais"`
	FollowUpNeeded  int `json:"follow_up_needed"`

	TotalVolume string `json:"total_volume"`
}

func FromFollowUpSummary(s entities.FollowUpSummary) FollowUpSummaryResponse {
	return FollowUpSummaryResponse{
		Atrasado:        s.Atrasado,
		Critico:         s.Critico,
		Alerta:          s.Alerta,
		Producao:        s.Producao,
		Embarcado:       s.Embarcado,
		TotalImportados: s.TotalImportados,
		TotalNacionais:  s.TotalNacionais,
		FollowUpNeeded:  s.FollowUpNeeded,
		TotalVolume:     s.TotalVolume.String(),
	}
}

type ImportResultResponse struct {
	ImportID     string    `json:"import_id"`
	ImportedAt   time.Time `json:"imported_at"`
	TotalRecords int       `json:"total_records"`
	SkippedRows  int       `json:"skipped_rows"`
}

func FromImportResult(r entities.ImportResult) ImportResultResponse {
	return ImportResultResponse{
		ImportID:     r.ImportID,
		ImportedAt:   r.ImportedAt,
		TotalRecords: r.TotalRecords,
		SkippedRows:  r.SkippedRows,
	}
}

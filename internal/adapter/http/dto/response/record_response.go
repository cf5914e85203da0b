package response

import (
	"time"

	"followup_importacao/internal/domain/entities"
)

const needDateLayout = "2006-01-02"

type RecordResponse struct {
	ID     string `json:"id"`
	Origin string `json:"origin"`
	Status string `json:"status"`

	PONumber string `json:"po_number"`
	PCNumber string `json:"pc_number"`
	SCNumber string `json:"sc_number"`

	Supplier string `json:"supplier"`
	Product  string `json:"product"`
	Volume   string `json:"volume"`

	RequestNeedDate  string `json:"request_need_date,omitempty"`
	ContractNeedDate string `json:"contract_need_date"`

	DaysUntilNeed    int     `json:"days_until_need"`
	TimelineProgress float64 `json:"timeline_progress"`

	ShippedAt *time.Time `json:"shipped_at,omitempty"`
	Excluded  bool       `json:"excluded"`
}

func FromImportRecord(r entities.ImportRecord) RecordResponse {
	resp := RecordResponse{
		ID:               r.ID,
		Origin:           string(r.Origin),
		Status:           string(r.Status),
		PONumber:         r.PONumber,
		PCNumber:         r.PCNumber,
		SCNumber:         r.SCNumber,
		Supplier:         r.Supplier,
		Product:          r.Product,
		Volume:           r.Volume,
		ContractNeedDate: r.ContractNeedDate.Format(needDateLayout),
		DaysUntilNeed:    r.DaysUntilNeed,
		TimelineProgress: entities.TimelineProgress(r.DaysUntilNeed),
		ShippedAt:        r.ShippedAt,
		Excluded:         r.Excluded,
	}
	if r.RequestNeedDate != nil {
		resp.RequestNeedDate = r.RequestNeedDate.Format(needDateLayout)
	}
	return resp
}

func FromImportRecords(records []entities.ImportRecord) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromImportRecord(r))
	}
	return out
}

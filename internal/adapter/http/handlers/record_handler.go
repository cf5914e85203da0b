package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "followup_importacao/internal/adapter/http/dto/request"
	response "followup_importacao/internal/adapter/http/dto/response"
	"followup_importacao/internal/domain/entities"
	"followup_importacao/internal/usecase"
	"followup_importacao/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRecordQuery = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid record filters", http.StatusBadRequest)

// RecordHandler serves the filtered listing, the summary aggregation and the
// manual record transitions (embarque and exclusao).

type RecordHandler struct {
	usecase usecase.IFollowUpUseCase
}

func NewRecordHandler(uc usecase.IFollowUpUseCase) *RecordHandler {
	return &RecordHandler{usecase: uc}
}

func (h *RecordHandler) ListRecords(c *gin.Context) {
	var payload request.RecordQueryRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidRecordQuery.HTTPStatus, errInvalidRecordQuery.ToHTTPError())
		return
	}

	q, err := payload.ToQuery()
	if err != nil {
		c.JSON(errInvalidRecordQuery.HTTPStatus, errInvalidRecordQuery.ToHTTPError())
		return
	}

	records, err := h.usecase.ListRecords(c.Request.Context(), q)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromImportRecords(records))
}

func (h *RecordHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFollowUpSummary(summary))
}

func (h *RecordHandler) MarkShipped(c *gin.Context) {
	h.patchRecordByID(c, h.usecase.MarkShipped)
}

func (h *RecordHandler) UnmarkShipped(c *gin.Context) {
	h.patchRecordByID(c, h.usecase.UnmarkShipped)
}

func (h *RecordHandler) Exclude(c *gin.Context) {
	h.patchRecordByID(c, h.usecase.Exclude)
}

func (h *RecordHandler) Restore(c *gin.Context) {
	h.patchRecordByID(c, h.usecase.Restore)
}

func (h *RecordHandler) patchRecordByID(
	c *gin.Context,
	transition func(ctx context.Context, id string) (entities.ImportRecord, error),
) {
	id := c.Param("id")

	record, err := transition(c.Request.Context(), id)
	if err != nil {
		log.Printf("[record][handler] transition failed id=%s err=%v", id, err)
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromImportRecord(record))
}

func mapRecordError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrRecordNotFound) {
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Record not found", http.StatusNotFound)
	}
	return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
}

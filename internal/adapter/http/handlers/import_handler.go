package handlers

import (
	"errors"
	"log"
	"net/http"

	response "followup_importacao/internal/adapter/http/dto/response"
	"followup_importacao/internal/usecase"
	"followup_importacao/pkg"

	"github.com/gin-gonic/gin"
)

// Form field carrying the uploaded workbook.
const uploadField = "planilha"

// ImportHandler receives spreadsheet uploads and triggers the rebuild of the
// working set. A decode failure never replaces the previous collection.

type ImportHandler struct {
	usecase usecase.IFollowUpUseCase
}

func NewImportHandler(uc usecase.IFollowUpUseCase) *ImportHandler {
	return &ImportHandler{usecase: uc}
}

func (h *ImportHandler) ImportSpreadsheet(c *gin.Context) {
	file, header, err := c.Request.FormFile(uploadField)
	if err != nil {
		log.Printf("[import][handler] missing upload field %q: %v", uploadField, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing spreadsheet file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	log.Printf("[import][handler] import start file=%q size=%d", header.Filename, header.Size)
	result, err := h.usecase.ImportSpreadsheet(c.Request.Context(), file)
	if err != nil {
		log.Printf("[import][handler] import failed file=%q err=%v", header.Filename, err)
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[import][handler] import success id=%s records=%d skipped=%d", result.ImportID, result.TotalRecords, result.SkippedRows)

	c.JSON(http.StatusCreated, response.FromImportResult(result))
}

func mapImportError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrSpreadsheetDecode) {
		return pkg.NewDomainErrorSimple("SPREADSHEET_DECODE_FAILED", "Could not read the spreadsheet; the previous dataset was kept", http.StatusUnprocessableEntity)
	}
	return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
}

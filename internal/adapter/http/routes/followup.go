package routes

import (
	"followup_importacao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathImports = "/imports"
	PathRecords = "/records"
)

func addFollowUpRoutes(rg *gin.RouterGroup, importHandler *handlers.ImportHandler, recordHandler *handlers.RecordHandler) {
	imports := rg.Group(PathImports)
	{
		imports.POST("", importHandler.ImportSpreadsheet)
	}

	records := rg.Group(PathRecords)
	{
		records.GET("", recordHandler.ListRecords)
		records.GET("/summary", recordHandler.Summary)
		records.PATCH("/:id/embarcar", recordHandler.MarkShipped)
		records.PATCH("/:id/desembarcar", recordHandler.UnmarkShipped)
		records.PATCH("/:id/excluir", recordHandler.Exclude)
		records.PATCH("/:id/restaurar", recordHandler.Restore)
	}
}

package routes

import (
	"log"
	"strconv"

	_ "followup_importacao/docs" // This will be auto-generated
	"followup_importacao/internal/adapter/http/handlers"
	"followup_importacao/internal/adapter/persistence/repository"
	"followup_importacao/internal/adapter/spreadsheet"
	"followup_importacao/internal/infrastructure/database"
	"followup_importacao/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	overrideRepo := repository.NewOverrideDynamoRepository(ddb)
	decoder := spreadsheet.NewXLSXDecoder()

	followUpUseCase := usecase.NewFollowUpUseCase(decoder, overrideRepo)

	importHandler := handlers.NewImportHandler(followUpUseCase)
	recordHandler := handlers.NewRecordHandler(followUpUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFollowUpRoutes(v1, importHandler, recordHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

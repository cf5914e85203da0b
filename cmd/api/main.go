package main

import (
	_ "followup_importacao/docs"
	"followup_importacao/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Import Follow-up API
// @version         1.0
// @description     Spreadsheet ingestion and urgency follow-up for import/national procurement records, with overrides persisted in DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}

package main

import (
	_ "cpq_quote/docs"
	"cpq_quote/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CPQ Quote API
// @version         1.0
// @description     Packaging quote calculator: tariff previews, quote sessions and PDF quote submission.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}

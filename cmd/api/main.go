package main

import (
	_ "procurehub/docs"
	"procurehub/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ProcureHub API
// @version         1.0
// @description     Procurement management service (suppliers, inventory, PR/PO workflow, receipts, invoices) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	routes.Run()
}

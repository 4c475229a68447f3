package main

import (
	"orders_dashboard/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Orders Dashboard API
// @version         1.0
// @description     KPIs, weekly revenue and recent orders read from the orders search index.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}

package main

import (
	_ "glow_go/docs"
	"glow_go/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Glow & Go Booking API
// @version         1.0
// @description     Salon booking marketplace: provider directory, booking lifecycle and session stub backed by a local store.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}

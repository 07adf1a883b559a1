package main

import (
	"os"

	"github.com/rodrigoclira/hr-dashboard/internal/pkg/logger"
	"github.com/rodrigoclira/hr-dashboard/internal/server"
)

// @title HR Dashboard API
// @version 1.0
// @description Analytics API behind the HR dashboard: KPI values, chart specifications and people reports computed over a fixed employee dataset.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8050
// @BasePath /api/v1
// @schemes http

func main() {
	// Initialize the server with all its dependencies: configuration,
	// logger, the employee table and the HTTP router.
	srv, err := server.NewServer()
	if err != nil {
		// A dataset or configuration failure is fatal at startup
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}

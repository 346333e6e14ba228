package main

import (
	"os"

	"github.com/arda/gradlink/internal/pkg/logger"
	"github.com/arda/gradlink/internal/server"
)

// @title GradLink API
// @version 1.0
// @description Role-based alumni network portal: students, alumni, and admins

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

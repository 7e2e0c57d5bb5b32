package main

import (
	"os"

	"github.com/yigit/campushub/internal/pkg/logger"
	"github.com/yigit/campushub/internal/server"
)

// @title CampusHub API
// @version 1.0
// @description CRUD API for users, courses and student projects

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	// NewServer orchestrates LoadConfigAndSetupLogger, SetupDatabase,
	// BuildDependencies and SetupRouter
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}

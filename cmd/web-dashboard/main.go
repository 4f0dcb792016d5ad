package main

import (
	"embed"
	"log/slog"
	"os"

	"growdash/internal/app"
)

// Embedded dashboard page
//go:embed index.html
var frontendFiles embed.FS

func main() {
	application, err := app.NewApplication(frontendFiles)
	if err != nil {
		slog.Error("Failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		slog.Error("Application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

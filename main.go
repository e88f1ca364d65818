package main

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"

	"maislice/internal/app"
	"maislice/internal/config"
	apperrors "maislice/internal/infrastructure/errors"
	"maislice/internal/infrastructure/logging"
	"maislice/internal/platform"
	"maislice/internal/shell"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg := config.ConfigForEnvironment(os.Getenv(config.EnvEnvironment))
	if err := cfg.LoadFromEnvironment(); err != nil {
		fatalf("%s: %v", app.FatalMessage, apperrors.NewConfigError("load_config", err))
	}
	if err := cfg.Validate(); err != nil {
		fatalf("%s: %v", app.FatalMessage, apperrors.NewConfigError("validate_config", err))
	}

	logger := logging.NewLogger(cfg.LogLevel)

	dist, err := fs.Sub(assets, "frontend/dist")
	if err != nil {
		fatalf("%s: %v", app.FatalMessage, err)
	}

	application := app.NewApp(cfg, logger)
	app.Main(application.Builder(shell.Default().WithAssets(dist)), fatalf)
}

// fatalf reports the failure in a dialog where the platform has one, then exits
func fatalf(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	platform.ReportFatal(platform.FatalTitle, msg)
	log.Fatal(msg)
}

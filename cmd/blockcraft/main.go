package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"blockcraft/internal/config"
	"blockcraft/internal/game"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config (defaults to $"+config.EnvPath+")")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if *configPath != "" && !filepath.IsAbs(*configPath) {
				if abs, err := filepath.Abs(*configPath); err == nil {
					*configPath = abs
				}
			}
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	g := game.New(&cfg)
	g.Run()
}

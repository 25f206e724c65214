package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/foliotui/folio/app"
	"github.com/foliotui/folio/internal/config"
	"github.com/foliotui/folio/internal/database"
)

func main() {
	importDir := flag.String("import", "", "import XML books from a directory and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if _, err := os.Stat(config.Path()); os.IsNotExist(err) {
		// first run: seed the config file with the effective defaults
		if err := config.Save(cfg); err != nil {
			log.Printf("warn: write default config: %v", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if *importDir != "" {
		n, err := app.ImportBooks(ctx, db, *importDir)
		if err != nil {
			log.Fatalf("import: %v", err)
		}
		fmt.Printf("imported %d book(s)\n", n)
		return
	}

	m, err := app.BuildModel(ctx, db)
	if err != nil {
		log.Fatalf("wiring: %v", err)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseMode != "off" {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

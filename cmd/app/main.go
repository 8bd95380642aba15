package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/yumegusa/nekotoki/internal/config"
	"github.com/yumegusa/nekotoki/internal/database"
	"github.com/yumegusa/nekotoki/internal/models"
	"github.com/yumegusa/nekotoki/internal/tui"
	"github.com/yumegusa/nekotoki/internal/util"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "nekotoki requires an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load()
	util.MustSucceed("loading config", err)

	dbPath := cfg.Database.Path
	_ = os.MkdirAll(filepath.Dir(dbPath), 0o755)
	cleanupStaleDBArtifacts(dbPath)

	ctx := context.Background()
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	defaults := models.Preferences{
		Theme:        cfg.Display.Theme,
		Background:   "lavender",
		DimLevel:     config.DefaultDim,
		StarsEnabled: cfg.Display.Stars,
		TickInterval: cfg.Display.TickInterval(),
	}

	model := tui.NewModel(ctx, db, defaults)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

// cleanupStaleDBArtifacts removes leftovers from interrupted writes.
func cleanupStaleDBArtifacts(dbPath string) {
	_ = os.Remove(dbPath + ".bak")
	_ = os.Remove(dbPath + ".tmp")
}

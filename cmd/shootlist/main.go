package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"shootlist/internal/adapters/clipboard"
	"shootlist/internal/adapters/excel"
	"shootlist/internal/adapters/exiftool"
	"shootlist/internal/adapters/fswatch"
	"shootlist/internal/adapters/sqlite"
	"shootlist/internal/adapters/tui"
	"shootlist/internal/adapters/tui/views"
	"shootlist/internal/adapters/viewer"
	"shootlist/internal/config"
	"shootlist/internal/ports"
)

func main() {
	excelFlag := flag.String("excel", "", "path to the article workbook (required)")
	watchFlag := flag.String("watch", "", "directory to watch for incoming photos")
	configFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	if *excelFlag == "" {
		fmt.Fprintln(os.Stderr, "shootlist: --excel is required")
		os.Exit(1)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shootlist: %v\n", err)
		os.Exit(1)
	}
	if *watchFlag != "" {
		cfg.WatchDir = *watchFlag
	}

	watchDir := config.ExpandHome(cfg.WatchDir)
	if err := os.MkdirAll(watchDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "shootlist: cannot create watch directory: %v\n", err)
		os.Exit(1)
	}

	// Load the catalog up front; without it the session cannot start
	catalog, err := excel.NewLoader(cfg.Columns).Load(*excelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shootlist: %v\n", err)
		os.Exit(1)
	}

	// The journal is best-effort; the shoot works without history
	var journal ports.Journal
	j := sqlite.NewJournal()
	if err := j.Open(cfg.JournalPath); err == nil {
		journal = j
		defer j.Close()
	}

	deps := views.SessionDeps{
		Publisher:    clipboard.NewPublisher(),
		Writer:       exiftool.NewWriter(cfg.Exiftool),
		Journal:      journal,
		NewWatcher:   func() ports.FolderWatcher { return fswatch.NewWatcher(cfg.Extensions) },
		WatchDir:     watchDir,
		WorkbookPath: *excelFlag,
	}

	app := tui.NewApp(catalog, deps, viewer.NewOpener())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

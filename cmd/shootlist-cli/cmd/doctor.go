package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"shootlist/internal/adapters/clipboard"
	"shootlist/internal/adapters/sqlite"
	"shootlist/internal/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that everything a session needs is in place",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := make([]table.Row, 0, 5)
		failures := 0

		check := func(name string, ok bool, detail string) {
			status := "ok"
			if !ok {
				status = "FAIL"
				failures++
			}
			rows = append(rows, table.Row{name, status, detail})
		}

		if exiftoolWriter().Available() {
			check("exiftool", true, cfg.Exiftool)
		} else {
			check("exiftool", false, fmt.Sprintf("%q not found in PATH", cfg.Exiftool))
		}

		if clipboard.NewPublisher().Available() {
			check("clipboard", true, "system clipboard reachable")
		} else {
			check("clipboard", false, "no clipboard backend on this platform")
		}

		watch := config.ExpandHome(cfg.WatchDir)
		if info, err := os.Stat(watch); err == nil && info.IsDir() {
			check("watch dir", true, watch)
		} else if os.IsNotExist(err) {
			check("watch dir", true, watch+" (will be created)")
		} else {
			check("watch dir", false, fmt.Sprintf("%s: %v", watch, err))
		}

		journal := sqlite.NewJournal()
		if err := journal.Open(cfg.JournalPath); err == nil {
			journal.Close()
			check("journal", true, config.ExpandHome(cfg.JournalPath))
		} else {
			check("journal", false, err.Error())
		}

		if excelPath == "" {
			check("workbook", true, "not checked (pass --excel to verify)")
		} else if catalog, err := loadCatalog(); err == nil {
			check("workbook", true, fmt.Sprintf("%d articles, %d variations", catalog.Articles(), catalog.Len()))
		} else {
			check("workbook", false, err.Error())
		}

		fmt.Println(renderTable(table.Row{"Check", "Status", "Detail"}, rows))
		if failures > 0 {
			return fmt.Errorf("%d check(s) failed", failures)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

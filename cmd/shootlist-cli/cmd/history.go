package cmd

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"shootlist/internal/adapters/sqlite"
	"shootlist/internal/application/commands"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "Show past shooting sessions, or the photos of one session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		journal := sqlite.NewJournal()
		if err := journal.Open(cfg.JournalPath); err != nil {
			return fmt.Errorf("cannot open journal: %w", err)
		}
		defer journal.Close()

		if len(args) == 1 {
			photos, err := commands.NewSessionPhotosCommand(journal, args[0]).Execute(cmd.Context())
			if err != nil {
				return err
			}
			if len(photos) == 0 {
				fmt.Println("No photos recorded for this session.")
				return nil
			}
			rows := make([]table.Row, 0, len(photos))
			for _, p := range photos {
				rows = append(rows, table.Row{
					p.TaggedAt.Format("15:04:05"), p.ArticleNo, p.Position, p.FilePath,
				})
			}
			fmt.Println(renderTable(table.Row{"Tagged", "Article", "Pos", "File"}, rows))
			return nil
		}

		sessions, err := commands.NewSessionHistoryCommand(journal, historyLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}
		rows := make([]table.Row, 0, len(sessions))
		for _, s := range sessions {
			finished := "running"
			if !s.FinishedAt.IsZero() {
				finished = s.FinishedAt.Format("2006-01-02 15:04")
			}
			rows = append(rows, table.Row{
				s.ID, s.StartedAt.Format("2006-01-02 15:04"), finished,
				s.WorkbookPath, strconv.Itoa(s.Photos),
			})
		}
		fmt.Println(renderTable(
			table.Row{"Session", "Started", "Finished", "Workbook", "Photos"},
			rows, 5,
		))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of sessions to list")
	rootCmd.AddCommand(historyCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shootlist/internal/application/commands"
	"shootlist/internal/domain"
)

var tagPosition string

var tagCmd = &cobra.Command{
	Use:   "tag <article-no> <file>",
	Short: "Write one article's IPTC metadata into a photo file",
	Long: `Tag embeds an article's metadata (object name, category, caption and
headline) into an existing photo via exiftool, outside of a running
session. Useful for re-tagging a photo after a manual fix.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		lookup := commands.NewLookupArticleCommand(catalog, args[0])
		variations, err := lookup.Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, v := range variations {
			if v.Position != tagPosition {
				continue
			}
			tag := commands.NewTagPhotoCommand(exiftoolWriter(), args[1], v)
			result, err := tag.Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
			return nil
		}
		return fmt.Errorf("article %s has no %q variation", args[0], tagPosition)
	},
}

func init() {
	tagCmd.Flags().StringVarP(&tagPosition, "position", "p", domain.PositionFront,
		"variation position: v (front) or h (back)")
	rootCmd.AddCommand(tagCmd)
}

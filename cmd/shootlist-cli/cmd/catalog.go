package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the article workbook",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every variation in shooting order",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		rows := make([]table.Row, 0, catalog.Len())
		for _, v := range catalog.Variations() {
			rows = append(rows, table.Row{
				v.Number, v.PositionLabel(), v.Description,
				v.ColorCode, v.ColorName, v.FileName(),
			})
		}
		fmt.Println(renderTable(
			table.Row{"Article", "Position", "Description", "Color", "Color Name", "File Name"},
			rows,
		))
		fmt.Printf("%d articles, %d variations\n", catalog.Articles(), catalog.Len())
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <article-no>",
	Short: "Show one article's variations and metadata fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		variations := catalog.Lookup(args[0])
		if len(variations) == 0 {
			return fmt.Errorf("article %s not found in %s", args[0], excelPath)
		}

		a := variations[0].Article
		fmt.Printf("%s — %s\n", a.Number, a.Description)
		fmt.Printf("Collection: %s  Category: %s  Color: %s %s\n\n",
			a.Collection, a.Category, a.ColorCode, a.ColorName)

		rows := make([]table.Row, 0, len(variations))
		for _, v := range variations {
			rows = append(rows, table.Row{v.PositionLabel(), v.FileName()})
		}
		fmt.Println(renderTable(table.Row{"Position", "File Name"}, rows))

		fmt.Println("\nMetadata:")
		fields := variations[0].MetadataFields()
		for _, tag := range []string{"IPTC:ObjectName", "IPTC:Category", "IPTC:Caption-Abstract", "IPTC:Headline"} {
			fmt.Printf("  %-22s %s\n", tag, fields[tag])
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/seminar-engine/internal/cite"
	"github.com/pdiddy/seminar-engine/internal/meetings"
	"github.com/pdiddy/seminar-engine/internal/sitestore"
)

var exportCmd = &cobra.Command{
	Use:   "export <graph.ttl>",
	Short: "Run the full extraction pipeline into the site database",
	Long: `Export runs bibliography rendering and meeting assembly over the graph
and writes the results to the site SQLite database, replacing any previous
export.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}

		style := stringSetting(cmd, "style", "render.style")
		locale := stringSetting(cmd, "locale", "render.locale")
		bibliography, err := cite.Bibliography(g, cite.HTMLRenderer{}, style, locale)
		if err != nil {
			return err
		}

		assembled, err := meetings.Assemble(g, bibliography)
		if err != nil {
			return err
		}

		dbPath := stringSetting(cmd, "db", "store.db_path")
		store, err := sitestore.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Export(bibliography, assembled); err != nil {
			return err
		}
		sum, err := store.Summarize()
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d citations, %d meetings, %d entity rows to %s\n",
			sum.Citations, sum.Meetings, sum.Entities, dbPath)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("db", "", "site database path (default from config)")
	exportCmd.Flags().String("style", "", "citation style (default from config)")
	exportCmd.Flags().String("locale", "", "citation locale (default from config)")

	rootCmd.AddCommand(exportCmd)
}

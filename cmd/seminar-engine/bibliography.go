package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/seminar-engine/internal/bib"
	"github.com/pdiddy/seminar-engine/internal/cite"
)

var bibliographyCmd = &cobra.Command{
	Use:   "bibliography <graph.ttl>",
	Short: "Extract normalized bibliographic records from the graph",
	Long: `Bibliography normalizes every bibliographic work in the graph (book
chapters, journal articles, books, conference papers, lectures) into CSL
records and prints them as CSL-YAML, or as rendered HTML citations with
--format html.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "csl":
			records, err := bib.Normalize(g)
			if err != nil {
				return err
			}
			return bib.FormatCSL(records, os.Stdout)
		case "html":
			style := stringSetting(cmd, "style", "render.style")
			locale := stringSetting(cmd, "locale", "render.locale")
			entries, err := cite.Bibliography(g, cite.HTMLRenderer{}, style, locale)
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(entries))
			for id := range entries {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				fmt.Printf("%s\n%s\n", id, entries[id])
			}
			return nil
		default:
			return fmt.Errorf("unknown format %q (want csl or html)", format)
		}
	},
}

func init() {
	bibliographyCmd.Flags().String("format", "csl", "output format: csl or html")
	bibliographyCmd.Flags().String("style", "", "citation style (default from config)")
	bibliographyCmd.Flags().String("locale", "", "citation locale (default from config)")

	rootCmd.AddCommand(bibliographyCmd)
}

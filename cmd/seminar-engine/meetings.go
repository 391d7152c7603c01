package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/seminar-engine/internal/cite"
	"github.com/pdiddy/seminar-engine/internal/meetings"
)

var meetingsCmd = &cobra.Command{
	Use:   "meetings <graph.ttl>",
	Short: "Assemble meeting agendas with rendered readings and entity rosters",
	Long: `Meetings renders the full bibliography, then assembles every meeting the
graph declares: its timestamp, its agenda (readings and notes, in schedule
order) rendered to HTML, and the entities it involves. Output is YAML;
--html prints just the agenda fragments.`,
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

		htmlOnly, _ := cmd.Flags().GetBool("html")
		if htmlOnly {
			for _, m := range assembled {
				fmt.Printf("<!-- %s -->\n%s\n", m.Fragment, m.HTML)
			}
			return nil
		}

		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(assembled)
	},
}

func init() {
	meetingsCmd.Flags().Bool("html", false, "print agenda HTML fragments only")
	meetingsCmd.Flags().String("style", "", "citation style (default from config)")
	meetingsCmd.Flags().String("locale", "", "citation locale (default from config)")

	rootCmd.AddCommand(meetingsCmd)
}

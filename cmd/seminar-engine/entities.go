package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/seminar-engine/internal/entities"
)

var entitiesCmd = &cobra.Command{
	Use:   "entities <graph.ttl>",
	Short: "Classify the people, journals, conferences, and publishers in the graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		roster, err := entities.Classify(g, entities.DefaultCategories())
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(roster)
	},
}

func init() {
	rootCmd.AddCommand(entitiesCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the seminar-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/seminar-engine/internal/rdf"
	"github.com/pdiddy/seminar-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the seminar-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "seminar-engine",
	Short: "Extract bibliographies and meeting agendas from a seminar archive graph",
	Long: `seminar-engine reads a seminar archive graph (Turtle) and extracts
structured output for the archive site: normalized CSL bibliographic
records, rendered citations, classified entities (people, journals,
conferences, publishers), and assembled meeting agendas.

Each extraction surface is a subcommand: bibliography, entities, meetings,
and export, which runs the whole pipeline into the site database.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./seminar-engine.yaml or ~/.config/seminar-engine/config.yaml)")
}

func initConfig() {
	defaults := types.DefaultConfig()
	viper.SetDefault("render.style", defaults.Render.Style)
	viper.SetDefault("render.locale", defaults.Render.Locale)
	viper.SetDefault("store.db_path", defaults.Store.DBPath)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("seminar-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "seminar-engine"))
		}
	}

	viper.SetEnvPrefix("SEMINAR_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadGraph parses the Turtle document the command operates on.
func loadGraph(path string) (*rdf.Graph, error) {
	g, err := rdf.ParseTurtleFile(path)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(os.Stderr, "Loaded %d triples from %s\n", g.Len(), path)
	return g, nil
}

// stringSetting resolves a command flag, falling back to the viper key
// when the flag was not set on the command line.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return viper.GetString(key)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the publication-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/publication-engine/internal/secrets"
	"github.com/pdiddy/publication-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "publication-engine/0.1"
)

// rootCmd is the base command for the publication-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "publication-engine",
	Short: "Browse and export a researcher's publication list",
	Long: `publication-engine fetches a researcher's publications from DBLP, filters
them to exact author matches, and lets you sort, group, paginate, and export
the result. Author names link to resolved DBLP profiles and the batch is
enriched with institution data from OpenAlex.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./publication-engine.yaml or ~/.config/publication-engine/config.yaml)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("publication-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "publication-engine"))
		}
	}

	viper.SetEnvPrefix("PUBLICATION_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the stage configuration from config file values,
// flags, and secrets. Flag values win over the config file.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("source.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	userAgent := viper.GetString("source.user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	email := viper.GetString("institution.email")
	if email == "" {
		email = loadedSecrets["openalex-email"]
	}

	http := types.HTTPConfig{Timeout: timeout, UserAgent: userAgent}
	return types.PipelineConfig{
		Source: types.SourceConfig{
			HTTPConfig:       http,
			MaxResults:       viper.GetInt("source.max_results"),
			AuthorMaxResults: viper.GetInt("source.author_max_results"),
		},
		Institution: types.InstitutionConfig{
			HTTPConfig: http,
			Email:      email,
		},
		Display: types.DisplayConfig{
			PageSize:  viper.GetInt("display.page_size"),
			SortBy:    viper.GetString("display.sort_by"),
			SortOrder: viper.GetString("display.sort_order"),
			GroupBy:   viper.GetString("display.group_by"),
		},
		Export: types.ExportConfig{
			OutputDir: viper.GetString("export.output_dir"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/asatlas/peergroup/config"
	"github.com/asatlas/peergroup/pipeline"
	"github.com/asatlas/peergroup/report"
	"github.com/asatlas/peergroup/util"
)

var (
	inputPath    string
	outputPath   string
	statsCSVPath string
	forceColor   bool
	disableColor bool
	verbose      bool
	silent       bool
	showVersion  bool
)

var rootCmd = &cobra.Command{
	Use:   "peergroup -i enriched_links.json -o enriched_links_grouped.json",
	Short: "peergroup regroups AS peering links by peer country",
	Long: `peergroup reads a JSON document of AS peering links enriched with
geolocation metadata, regroups each AS's peer links by country, prints
corpus-wide statistics, and writes the augmented document to a new file.

The input is produced upstream by the enrichment stage and is never
modified; the output is safe to feed straight into the portal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		util.SetColorEnabled(util.ResolveColor(forceColor, disableColor))

		if verbose {
			util.SetLogLevel(util.LevelDebug)
		} else if silent {
			util.SetLogLevel(util.LevelError)
		}

		if showVersion {
			fmt.Printf("peergroup %s\n", config.Version)
			os.Exit(0)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if inputPath == "" || outputPath == "" {
			util.Fatal("Both --input and --output are required.")
		}

		cfg := config.Config{
			InputPath:    inputPath,
			OutputPath:   outputPath,
			StatsCSVPath: statsCSVPath,
		}

		rep := report.NewReporter(silent, util.ResolveColor(forceColor, disableColor))
		if _, err := pipeline.Run(cfg, rep); err != nil {
			util.Fatal("%v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Enriched links JSON document to read")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Destination for the grouped JSON document")
	rootCmd.PersistentFlags().StringVar(&statsCSVPath, "stats-csv", "", "Also export the top-country aggregates as CSV")

	rootCmd.PersistentFlags().BoolVar(&forceColor, "color", false, "Force colored CLI output")
	rootCmd.PersistentFlags().BoolVar(&disableColor, "no-color", false, "Disable colored CLI output")
	rootCmd.PersistentFlags().BoolVar(&silent, "silent", false, "Suppress the progress report (errors only)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug logging")
	rootCmd.PersistentFlags().BoolVar(&showVersion, "version", false, "Show tool version")

	// --mono is an alias for --no-color
	rootCmd.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "mono" {
			name = "no-color"
		}
		return pflag.NormalizedName(name)
	})
}

// Package main is the entry point for the pdfprocessor CLI. It wraps
// the processing pipeline: text extraction, Markdown conversion, and
// image export from PDF files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	pdfprocessor "github.com/pyhub-apps/pdfprocessor-golang"
)

var rootCmd = &cobra.Command{
	Use:   "pdfprocessor <pdf>",
	Short: "Extract text, tables, Markdown and images from PDF files",
	Long: `pdfprocessor turns a PDF into derived artifacts: plain text,
layout-aware Markdown with detected pipe tables and resolved hyperlinks,
and the document's embedded images.

Detection thresholds can be tuned through a pdfprocessor.yaml config
file; see the metrics section of the documentation.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfprocessor.yaml or ~/.config/pdfprocessor/config.yaml)")
	rootCmd.Flags().BoolP("text", "t", false, "extract plain text to output.txt")
	rootCmd.Flags().BoolP("markdown", "m", false, "convert to Markdown in output.md")
	rootCmd.Flags().BoolP("images", "i", false, "extract embedded images")
	rootCmd.Flags().BoolP("debug", "d", false, "enable debug logging")
	rootCmd.Flags().StringP("output", "o", ".", "output directory")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfprocessor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfprocessor"))
		}
	}

	viper.SetEnvPrefix("PDFPROCESSOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func run(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	logger := newLogger(debug)

	text, _ := cmd.Flags().GetBool("text")
	markdown, _ := cmd.Flags().GetBool("markdown")
	images, _ := cmd.Flags().GetBool("images")
	outputDir, _ := cmd.Flags().GetString("output")

	if !text && !markdown && !images {
		return fmt.Errorf("nothing to do: pass at least one of --text, --markdown, --images")
	}

	processor := pdfprocessor.NewProcessor(metricsFromConfig(), logger)

	outputs, err := processor.ProcessFile(args[0], pdfprocessor.Options{
		Text:      text,
		Markdown:  markdown,
		Images:    images,
		OutputDir: outputDir,
	})
	if err != nil {
		return err
	}

	for _, path := range outputs {
		fmt.Println(path)
	}
	return nil
}

// newLogger builds a structured logger writing to stderr
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// metricsFromConfig overlays config file values onto the default
// detection thresholds. Only the keys present in the config change.
func metricsFromConfig() pdfprocessor.TableMetrics {
	metrics := pdfprocessor.DefaultMetrics()

	intKey := func(key string, dst *int) {
		if viper.IsSet(key) {
			*dst = viper.GetInt(key)
		}
	}
	floatKey := func(key string, dst *float64) {
		if viper.IsSet(key) {
			*dst = viper.GetFloat64(key)
		}
	}

	intKey("metrics.min_rows", &metrics.MinRows)
	intKey("metrics.min_cols", &metrics.MinCols)
	floatKey("metrics.line_spacing_threshold", &metrics.LineSpacingThreshold)
	floatKey("metrics.min_cell_width", &metrics.MinCellWidth)
	floatKey("metrics.min_cell_height", &metrics.MinCellHeight)
	floatKey("metrics.max_cell_width", &metrics.MaxCellWidth)
	floatKey("metrics.max_cell_height", &metrics.MaxCellHeight)
	floatKey("metrics.min_border_length", &metrics.MinBorderLength)
	floatKey("metrics.min_width", &metrics.MinWidth)
	floatKey("metrics.min_height", &metrics.MinHeight)

	return metrics
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

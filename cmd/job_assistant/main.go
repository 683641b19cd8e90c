// Package main provides the entry point for the Job Application Assistant CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_assistant",
	Short: "Job Application Assistant",
	Long:  "Job Application Assistant tailors a resume and writes a cover letter for a target job description using an LLM, persisting inputs and outputs as files.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logLevel.Set(slog.LevelDebug)
		}
	},
}

var verbose bool

// logLevel is adjustable after the handler is built so --verbose can take
// effect once flags are parsed.
var logLevel = new(slog.LevelVar)

// logger is shared by all subcommands; configured in main before Execute.
var logger *slog.Logger

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	opts := slogcolor.DefaultOptions
	opts.MsgColor = color.New(color.FgCyan)
	opts.SrcFileMode = slogcolor.Nop
	opts.Level = logLevel
	logger = slog.New(slogcolor.NewHandler(os.Stderr, opts))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"github.com/gostonefire/xcontainers"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
)

var (
	// Global flags
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "xstat",
	Short: "Fill the hash tables and report how they distribute records",
	Long: `xstat fills the hash tables with generated keys and reports their
sizing, bucket distribution and memory use. It is meant for comparing
collision resolution techniques and hash algorithms on a given key population.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			xcontainers.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log rehash and allocator events to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints a message unless JSON output is requested
func printInfo(format string, args ...interface{}) {
	if !jsonOut {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

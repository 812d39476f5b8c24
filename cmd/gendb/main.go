// Command gendb converts the simulation dataset into the gob cache read by the
// server at startup. Rerun it whenever the source dataset changes.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"Setpoint/internal/energy"
	"Setpoint/internal/logging"

	"github.com/spf13/cobra"
)

var (
	outputPath   string
	skipValidate bool
	logLevel     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gendb [db.csv|db.xlsx]",
		Short: "Build the cached simulation dataset",
		Long: `gendb parses a CSV or XLSX simulation dataset, checks that every
system configuration forms a usable setpoint axis, and writes the gob cache.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "db/db.gob", "Output cache path")
	rootCmd.Flags().BoolVar(&skipValidate, "skip-validate", false, "Write the cache even if a configuration is malformed")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	inputPath := args[0]
	if filepath.Ext(inputPath) == ".gob" {
		return fmt.Errorf("input is already a gob cache: %s", inputPath)
	}

	data, err := energy.Load(inputPath)
	if err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		if !skipValidate {
			return err
		}
		logger.Warnw("dataset failed validation", "error", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	tmp := outputPath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := energy.WriteGob(f, data.Records()); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, outputPath); err != nil {
		return err
	}

	logger.Infow("dataset cached",
		"input", inputPath,
		"output", outputPath,
		"rows", data.Len(),
		"configurations", len(data.Configurations()),
	)
	return nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"etlcore/internal/apperr"
	"etlcore/internal/ingest"
	"etlcore/internal/pipeline"
)

var (
	normalizeIn      string
	normalizeOut     string
	normalizeDataset string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Apply field normalization to a CSV file without deduplicating",
	RunE: func(cmd *cobra.Command, args []string) error {
		if normalizeDataset != "" {
			cfg.Dataset = normalizeDataset
		}
		ds, err := cfg.ActiveDataset()
		if err != nil {
			return err
		}

		in, err := os.Open(normalizeIn)
		if err != nil {
			return apperr.IngressError("failed to open input", err)
		}
		defer in.Close()

		records, err := ingest.ReadCSV(in, ds)
		if err != nil {
			return err
		}

		out, err := pipeline.Normalize(cfg, logger, records)
		if err != nil {
			return err
		}

		outFile, err := os.Create(normalizeOut)
		if err != nil {
			return apperr.EgressError("failed to create output", err)
		}
		defer outFile.Close()

		return ingest.WriteCSV(outFile, ds, out)
	},
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeIn, "in", "", "Input CSV path")
	normalizeCmd.Flags().StringVar(&normalizeOut, "out", "", "Output CSV path")
	normalizeCmd.Flags().StringVar(&normalizeDataset, "dataset", "", "Dataset variant: current or historical (default: config value)")
	normalizeCmd.MarkFlagRequired("in")
	normalizeCmd.MarkFlagRequired("out")
}

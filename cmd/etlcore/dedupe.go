package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"etlcore/internal/apperr"
	"etlcore/internal/frame"
	"etlcore/internal/ingest"
	"etlcore/internal/pipeline"
)

var (
	dedupeSource      string
	dedupeIn          string
	dedupeOut         string
	dedupeDataset     string
	dedupePostgresDSN string
	dedupeKafkaTopic  string
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Run the full normalize-partition-detect-reconcile pipeline (C4..C7)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dedupeDataset != "" {
			cfg.Dataset = dedupeDataset
		}
		ds, err := cfg.ActiveDataset()
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		var records []frame.Record
		switch dedupeSource {
		case "csv", "":
			in, err := os.Open(dedupeIn)
			if err != nil {
				return apperr.IngressError("failed to open input", err)
			}
			defer in.Close()
			records, err = ingest.ReadCSV(in, ds)
			if err != nil {
				return err
			}
		case "postgres":
			dsn := dedupePostgresDSN
			if dsn == "" {
				dsn = cfg.Postgres.DSN
			}
			src, err := ingest.OpenPostgresSource(dsn, cfg.Postgres.TableName)
			if err != nil {
				return err
			}
			defer src.Close()
			records, err = src.Read(ctx, ds)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported source: %s", dedupeSource)
		}

		out, err := pipeline.Run(ctx, cfg, logger, records)
		if err != nil {
			return err
		}

		outFile, err := os.Create(dedupeOut)
		if err != nil {
			return apperr.EgressError("failed to create output", err)
		}
		defer outFile.Close()

		if err := ingest.WriteCSV(outFile, ds, out); err != nil {
			return err
		}

		topic := dedupeKafkaTopic
		if topic == "" {
			topic = cfg.Kafka.Topic
		}
		if topic != "" && cfg.Kafka.BootstrapServers != "" {
			producer := ingest.NewKafkaProducer([]string{cfg.Kafka.BootstrapServers}, topic)
			defer producer.Close()
			if err := producer.Publish(ctx, out); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	dedupeCmd.Flags().StringVar(&dedupeSource, "source", "csv", "Source: csv or postgres")
	dedupeCmd.Flags().StringVar(&dedupeIn, "in", "", "Input CSV path (source=csv)")
	dedupeCmd.Flags().StringVar(&dedupeOut, "out", "", "Output CSV path")
	dedupeCmd.Flags().StringVar(&dedupeDataset, "dataset", "", "Dataset variant: current or historical (default: config value)")
	dedupeCmd.Flags().StringVar(&dedupePostgresDSN, "postgres-dsn", "", "Postgres DSN (source=postgres, default: config value)")
	dedupeCmd.Flags().StringVar(&dedupeKafkaTopic, "kafka-topic", "", "Kafka topic to publish results to (optional)")
	dedupeCmd.MarkFlagRequired("out")
}

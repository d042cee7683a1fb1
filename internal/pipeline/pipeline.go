// Package pipeline is the single orchestration entry point used by both
// CLI subcommands: it sequences normalize -> partition -> detect ->
// reconcile, checking cooperative cancellation at each stage boundary
// and returning the typed apperr errors that the CLI maps to exit codes.
package pipeline

import (
	"context"

	"etlcore/internal/apperr"
	"etlcore/internal/config"
	"etlcore/internal/dedupe"
	"etlcore/internal/frame"
	"etlcore/internal/logging"
	"etlcore/internal/partition"
	"etlcore/internal/transform"

	"go.uber.org/zap"
)

// partitionKeyFuncs maps a configured partition_field name to the
// extractor partition.Run needs. Only fields the detector's candidate
// predicate actually keys on are sensible partition fields; nom is the
// default, with email wired in as a secondary supported key since the
// duplicate predicate also treats it as a possible match field.
var partitionKeyFuncs = map[string]partition.KeyFunc{
	"nom":   partition.ByNom,
	"email": func(r frame.Record) *string { return r.Email },
}

// Run executes the full normalize -> partition -> detect -> reconcile
// pipeline over records using the dataset and options in cfg, logging
// each stage's transition through base. It returns apperr.ErrCancelled,
// without a frame, if ctx is cancelled at any of the checkpoints.
func Run(ctx context.Context, cfg *config.Config, base *zap.Logger, records []frame.Record) (frame.Frame, error) {
	ds, err := cfg.ActiveDataset()
	if err != nil {
		return frame.Frame{}, err
	}

	f := frame.New(records)

	onPaidPhone := transform.OnPaidPhonePolicy(cfg.OnPaidPhone)

	normLog := logging.ForStage(base, logging.StageNormalize)
	plan := frame.BuildNormalizationPlan(ds, cfg.StrictSchema, onPaidPhone)
	if err := plan.Apply(f); err != nil {
		normLog.Error("normalization failed", zap.Error(err))
		return frame.Frame{}, err
	}
	normLog.Info("normalization complete", zap.Int("rows", f.Len()))

	if ctx.Err() != nil {
		return frame.Frame{}, apperr.ErrCancelled
	}

	keyFn, ok := partitionKeyFuncs[cfg.PartitionField]
	if !ok {
		keyFn = partition.ByNom
	}

	partLog := logging.ForStage(base, logging.StagePartition)
	shards := partition.Shards(f.Records, keyFn)
	partLog.Info("partitioned candidate rows", zap.Int("shards", len(shards)))

	detectLog := logging.ForStage(base, logging.StageDetect)
	clusters, err := partition.Run(ctx, shards, cfg.WorkerCount, func(shardRecords []frame.Record) ([]dedupe.Cluster, error) {
		return dedupe.Detect(shardRecords)
	})
	if err != nil {
		if err == apperr.ErrCancelled {
			detectLog.Warn("detection cancelled")
		} else {
			detectLog.Error("detection failed", zap.Error(err))
		}
		return frame.Frame{}, err
	}
	detectLog.Info("duplicate detection complete", zap.Int("clusters", len(clusters)))

	if ctx.Err() != nil {
		return frame.Frame{}, apperr.ErrCancelled
	}

	reconLog := logging.ForStage(base, logging.StageReconcile)
	out, err := dedupe.Reconcile(f, clusters, cfg.ClusterJoinSeparator)
	if err != nil {
		reconLog.Error("reconciliation failed", zap.Error(err))
		return frame.Frame{}, err
	}
	for _, r := range out.Records {
		if r.ClusterRef != nil {
			reconLog.Debug("synthesized cluster row", zap.String("cluster_ref", *r.ClusterRef), zap.Int64("anchor_id", int64(r.ID)))
		}
	}
	reconLog.Info("reconciliation complete", zap.Int("rows", out.Len()))

	return out, nil
}

// Normalize runs the normalization stage alone, the behavior backing the
// CLI's normalize subcommand.
func Normalize(cfg *config.Config, base *zap.Logger, records []frame.Record) (frame.Frame, error) {
	ds, err := cfg.ActiveDataset()
	if err != nil {
		return frame.Frame{}, err
	}
	f := frame.New(records)
	plan := frame.BuildNormalizationPlan(ds, cfg.StrictSchema, transform.OnPaidPhonePolicy(cfg.OnPaidPhone))
	if err := plan.Apply(f); err != nil {
		return frame.Frame{}, err
	}
	logging.ForStage(base, logging.StageNormalize).Info("normalization complete", zap.Int("rows", f.Len()))
	return f, nil
}

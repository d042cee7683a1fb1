// Package partition shards candidate rows by a normalized attribute (by
// default nom) and fans detection out across a bounded worker pool.
package partition

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"etlcore/internal/apperr"
	"etlcore/internal/dedupe"
	"etlcore/internal/frame"
)

// Shard is one partition's worth of candidate rows sharing a key value.
type Shard struct {
	Key     string
	Records []frame.Record
}

// KeyFunc extracts the sharding key from a record; nil represents a
// record with no value for the partition field, which is never a
// candidate (it cannot share a key with anything).
type KeyFunc func(r frame.Record) *string

// ByNom partitions on the normalized nom column, the default
// partition_field.
func ByNom(r frame.Record) *string { return r.Nom }

// Shards filters out rows whose key is absent or appears only once —
// singleton keys cannot participate in a duplicate pair — then groups
// the remainder into one Shard per distinct key, in ascending key order
// for deterministic downstream processing.
func Shards(records []frame.Record, key KeyFunc) []Shard {
	byKey := make(map[string][]frame.Record)
	for _, r := range records {
		k := key(r)
		if k == nil || *k == "" {
			continue
		}
		byKey[*k] = append(byKey[*k], r)
	}

	keys := make([]string, 0, len(byKey))
	for k, rs := range byKey {
		if len(rs) < 2 {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	shards := make([]Shard, 0, len(keys))
	for _, k := range keys {
		shards = append(shards, Shard{Key: k, Records: byKey[k]})
	}
	return shards
}

// Run dispatches each shard to a bounded worker pool of size workerCount
// (at least 1) and runs detect against every shard's records
// independently, with no shared mutable state between workers. ctx is
// checked via errgroup.WithContext so either a worker error or caller
// cancellation aborts the remaining shards; Run returns apperr.ErrCancelled
// if ctx was already cancelled when joining the pool.
func Run(ctx context.Context, shards []Shard, workerCount int, detect func([]frame.Record) ([]dedupe.Cluster, error)) ([]dedupe.Cluster, error) {
	if workerCount < 1 {
		workerCount = 1
	}

	eg, egCtx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workerCount)
	results := make([][]dedupe.Cluster, len(shards))

	for i, shard := range shards {
		i, shard := i, shard
		eg.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-egCtx.Done():
				return egCtx.Err()
			}
			defer func() { <-sem }()

			if egCtx.Err() != nil {
				return egCtx.Err()
			}
			clusters, err := detect(shard.Records)
			if err != nil {
				return err
			}
			results[i] = clusters
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, apperr.ErrCancelled
		}
		return nil, err
	}

	if ctx.Err() != nil {
		return nil, apperr.ErrCancelled
	}

	var all []dedupe.Cluster
	for _, clusters := range results {
		all = append(all, clusters...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Anchor < all[j].Anchor })
	return all, nil
}

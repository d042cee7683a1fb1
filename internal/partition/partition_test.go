package partition

import (
	"context"
	"testing"

	"etlcore/internal/dedupe"
	"etlcore/internal/frame"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func strp(s string) *string { return &s }

func TestShardsDropsSingletonsAndSortsByKey(t *testing.T) {
	records := []frame.Record{
		{ID: 5, Nom: strp("PETIT")},
		{ID: 1, Nom: strp("MARTIN")},
		{ID: 2, Nom: strp("MARTIN")},
		{ID: 3, Nom: strp("DUBOIS")},
		{ID: 4, Nom: nil},
		{ID: 6, Nom: strp("PETIT")},
	}
	shards := Shards(records, ByNom)
	require.Len(t, shards, 2)
	assert.Equal(t, "MARTIN", shards[0].Key)
	assert.Len(t, shards[0].Records, 2)
	assert.Equal(t, "PETIT", shards[1].Key)
	assert.Len(t, shards[1].Records, 2)
}

func TestRunFansOutAcrossShardsWithoutLeaking(t *testing.T) {
	defer goleak.VerifyNone(t)

	shards := []Shard{
		{Key: "A", Records: []frame.Record{{ID: 1}, {ID: 2}}},
		{Key: "B", Records: []frame.Record{{ID: 3}, {ID: 4}}},
	}

	calls := 0
	detect := func(records []frame.Record) ([]dedupe.Cluster, error) {
		calls++
		return []dedupe.Cluster{{Anchor: records[0].ID, IDs: []frame.RecordID{records[0].ID, records[1].ID}}}, nil
	}

	clusters, err := Run(context.Background(), shards, 2, detect)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, clusters, 2)
	assert.True(t, clusters[0].Anchor < clusters[1].Anchor)
}

func TestRunPropagatesCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	shards := []Shard{{Key: "A", Records: []frame.Record{{ID: 1}, {ID: 2}}}}
	_, err := Run(ctx, shards, 1, func([]frame.Record) ([]dedupe.Cluster, error) {
		return nil, nil
	})
	require.Error(t, err)
}

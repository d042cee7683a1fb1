package dedupe

import (
	"testing"

	"etlcore/internal/frame"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func s(v string) *string { return &v }

func TestDetectScenario5(t *testing.T) {
	records := []frame.Record{
		{ID: 1, Nom: s("MARTIN"), Prenom: s("ANNE"), Email: s("A@X.COM")},
		{ID: 2, Nom: s("MARTIN"), Prenom: s("ANNE"), Telephone: s("+33...")},
		{ID: 3, Nom: s("MARTIN"), Prenom: nil, Email: s("A@X.COM")},
		{ID: 4, Nom: s("MARTIN"), Prenom: s("JEAN"), Siret: s("1234")},
	}

	clusters, err := Detect(records)
	require.NoError(t, err)
	require.Len(t, clusters, 1)

	c := clusters[0]
	assert.Equal(t, frame.RecordID(1), c.Anchor)
	assert.Equal(t, []frame.RecordID{1, 3}, c.IDs)
	assert.Equal(t, "MARTIN", *c.Nom)

	absorbed := AbsorbedIDs(clusters)
	assert.True(t, absorbed[1])
	assert.True(t, absorbed[3])
	assert.False(t, absorbed[2])
	assert.False(t, absorbed[4])
}

func TestDetectScenario6SubsetPruning(t *testing.T) {
	// 1 and 2 share email; 1 and 3 share telephone; 2 and 3 share pce.
	// Transitively {1,2,3} forms a single connected component once all
	// three pairwise edges exist, exercising the same maximality the
	// source computes via cross-join + subset-pruning.
	records := []frame.Record{
		{ID: 1, Nom: s("DUPONT"), Email: s("A@X.COM"), Telephone: s("+33 1")},
		{ID: 2, Nom: s("DUPONT"), Email: s("A@X.COM"), PCE: s("999")},
		{ID: 3, Nom: s("DUPONT"), Telephone: s("+33 1"), PCE: s("999")},
	}

	clusters, err := Detect(records)
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, []frame.RecordID{1, 2, 3}, clusters[0].IDs)
}

func TestDetectNoPartnerIsNotClustered(t *testing.T) {
	records := []frame.Record{
		{ID: 1, Nom: s("DUBOIS"), Prenom: s("YVES")},
	}
	clusters, err := Detect(records)
	require.NoError(t, err)
	assert.Empty(t, clusters)
}

func TestDetectSiretGuardsAgainstMatching(t *testing.T) {
	records := []frame.Record{
		{ID: 1, Nom: s("MARTIN"), Email: s("A@X.COM"), Siret: s("44316952400120")},
		{ID: 2, Nom: s("MARTIN"), Email: s("A@X.COM")},
	}
	clusters, err := Detect(records)
	require.NoError(t, err)
	assert.Empty(t, clusters)
}

func TestMatchesRequiresNomEquality(t *testing.T) {
	a := frame.Record{ID: 1, Nom: s("MARTIN"), Email: s("A@X.COM")}
	b := frame.Record{ID: 2, Nom: s("DURAND"), Email: s("A@X.COM")}
	assert.False(t, Matches(a, b))
}

package schema

import (
	"testing"

	"etlcore/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentSchemaHasCiviliteButNoPce(t *testing.T) {
	_, ok := CurrentSchema.Column(FieldCivilite)
	assert.True(t, ok)
	_, ok = CurrentSchema.Column(FieldPCE)
	assert.False(t, ok)
	_, ok = CurrentSchema.Column(FieldSiretSuccesseur)
	assert.False(t, ok)
}

func TestHistoricalSchemaHasPceButNoCivilite(t *testing.T) {
	label, ok := HistoricalSchema.Column(FieldPCE)
	assert.True(t, ok)
	assert.Equal(t, "PCE", label)

	label, ok = HistoricalSchema.Column(FieldSiretSuccesseur)
	assert.True(t, ok)
	assert.Equal(t, "SIRET successeur", label)

	_, ok = HistoricalSchema.Column(FieldCivilite)
	assert.False(t, ok)
	_, ok = HistoricalSchema.Column(FieldSiren)
	assert.False(t, ok)
	_, ok = HistoricalSchema.Column(FieldAPE)
	assert.False(t, ok)
	_, ok = HistoricalSchema.Column(FieldCodeNAF)
	assert.False(t, ok)
}

func TestResolveMissingFieldIsSchemaMismatch(t *testing.T) {
	_, err := Resolve(HistoricalSchema, FieldCivilite)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindSchemaMismatch))
}

func TestByName(t *testing.T) {
	ds, err := ByName(Current)
	require.NoError(t, err)
	assert.Equal(t, Current, ds.Name())

	ds, err = ByName(Historical)
	require.NoError(t, err)
	assert.Equal(t, Historical, ds.Name())

	_, err = ByName(Name("bogus"))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindSchemaMismatch))
}

func TestLogicalFieldsOrderIsStable(t *testing.T) {
	a := CurrentSchema.LogicalFields()
	b := CurrentSchema.LogicalFields()
	require.Equal(t, a, b)
	assert.Equal(t, FieldID, a[0])
}

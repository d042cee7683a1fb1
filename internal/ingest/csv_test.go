package ingest

import (
	"bytes"
	"strings"
	"testing"

	"etlcore/internal/frame"
	"etlcore/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVResolvesColumnsByDatasetLabel(t *testing.T) {
	input := "ID,Nom,Prenom,Email\n1,Martin,Anne,a@x.com\n2,Dubois,Yves,\n"
	records, err := ReadCSV(strings.NewReader(input), schema.CurrentSchema)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Martin", *records[0].Nom)
	assert.Equal(t, "Anne", *records[0].Prenom)
	assert.Equal(t, "a@x.com", *records[0].Email)
	assert.Nil(t, records[1].Email)
}

func TestReadCSVCoercesFloatLookingCell(t *testing.T) {
	input := "ID,SIRET\n1,44316952400120.0\n"
	records, err := ReadCSV(strings.NewReader(input), schema.HistoricalSchema)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Siret)
	assert.Equal(t, "44316952400120", *records[0].Siret)
}

func TestWriteCSVRoundTripsHeaderAndIDs(t *testing.T) {
	input := "ID,Nom,Prenom,Email\n1,Martin,Anne,a@x.com\n"
	records, err := ReadCSV(strings.NewReader(input), schema.CurrentSchema)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, schema.CurrentSchema, frame.New(records)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "ID,Id_source,Nom,Prenom,Civilite,Raison_sociale,Email,Telephone,SIRET,SIREN,APE,Code_NAF,Libelle_NAF,IDS\n"))
	assert.Contains(t, out, "1,,Martin,Anne,,,a@x.com,,,,,,,")
}

// Package schema defines the logical fields of a customer record and
// their physical column labels per source dataset.
package schema

import "etlcore/internal/apperr"

// Field names a logical record column. Not every Field is present in every
// Dataset — see Dataset.Column.
type Field string

const (
	FieldID              Field = "id"
	FieldIDSource        Field = "id_source"
	FieldNom             Field = "nom"
	FieldPrenom          Field = "prenom"
	FieldCivilite        Field = "civilite"
	FieldRaisonSociale   Field = "raison_sociale"
	FieldEmail           Field = "email"
	FieldTelephone       Field = "telephone"
	FieldSiret           Field = "siret"
	FieldSiretSuccesseur Field = "siret_successeur"
	FieldSiren           Field = "siren"
	FieldAPE             Field = "ape"
	FieldCodeNAF         Field = "code_naf"
	FieldLibelleNAF      Field = "libele_naf"
	FieldPCE             Field = "pce"
	FieldIDs             Field = "ids"
)

// Name identifies one of the two schema variants the pipeline can be bound
// to.
type Name string

const (
	Current    Name = "current"
	Historical Name = "historical"
)

// Dataset maps logical fields to physical column labels for one schema
// variant. Implementations are immutable after construction.
type Dataset interface {
	Name() Name
	// Column returns the physical column label for a logical field and
	// whether that field is present in this dataset.
	Column(f Field) (label string, ok bool)
	// LogicalFields enumerates every logical field this dataset carries,
	// in canonical declaration order.
	LogicalFields() []Field
}

type staticDataset struct {
	name    Name
	columns map[Field]string
	order   []Field
}

func (d *staticDataset) Name() Name { return d.name }

func (d *staticDataset) Column(f Field) (string, bool) {
	label, ok := d.columns[f]
	return label, ok
}

func (d *staticDataset) LogicalFields() []Field {
	out := make([]Field, len(d.order))
	copy(out, d.order)
	return out
}

// CurrentSchema is the current-customer dataset (JDD), built once at
// package init and read-only for the lifetime of the process.
var CurrentSchema Dataset = &staticDataset{
	name: Current,
	order: []Field{
		FieldID, FieldIDSource, FieldNom, FieldPrenom, FieldCivilite,
		FieldRaisonSociale, FieldEmail, FieldTelephone, FieldSiret,
		FieldSiren, FieldAPE, FieldCodeNAF, FieldLibelleNAF, FieldIDs,
	},
	columns: map[Field]string{
		FieldID:            "ID",
		FieldIDSource:      "Id_source",
		FieldNom:           "Nom",
		FieldPrenom:        "Prenom",
		FieldCivilite:      "Civilite",
		FieldRaisonSociale: "Raison_sociale",
		FieldEmail:         "Email",
		FieldTelephone:     "Telephone",
		FieldSiret:         "SIRET",
		FieldSiren:         "SIREN",
		FieldAPE:           "APE",
		FieldCodeNAF:       "Code_NAF",
		FieldLibelleNAF:    "Libelle_NAF",
		FieldIDs:           "IDS",
	},
}

// HistoricalSchema is the historical-customer dataset (HDD).
var HistoricalSchema Dataset = &staticDataset{
	name: Historical,
	order: []Field{
		FieldID, FieldIDSource, FieldNom, FieldPrenom,
		FieldRaisonSociale, FieldEmail, FieldTelephone, FieldSiret,
		FieldSiretSuccesseur, FieldPCE, FieldIDs,
	},
	columns: map[Field]string{
		FieldID:              "ID",
		FieldIDSource:        "Id_source",
		FieldNom:             "Nom",
		FieldPrenom:          "Prenom",
		FieldRaisonSociale:   "Raison_sociale",
		FieldEmail:           "Email",
		FieldTelephone:       "Telephone",
		FieldSiret:           "SIRET",
		FieldSiretSuccesseur: "SIRET successeur",
		FieldPCE:             "PCE",
		FieldIDs:             "IDS",
	},
}

// ByName resolves a Name to its Dataset, or a SchemaMismatch error if the
// name is not one of "current"/"historical".
func ByName(n Name) (Dataset, error) {
	switch n {
	case Current:
		return CurrentSchema, nil
	case Historical:
		return HistoricalSchema, nil
	default:
		return nil, apperr.SchemaMismatch("unknown dataset: "+string(n), nil)
	}
}

// Resolve looks up the physical column label for a logical field in ds,
// returning SchemaMismatch if the field is absent from that dataset.
func Resolve(ds Dataset, f Field) (string, error) {
	label, ok := ds.Column(f)
	if !ok {
		return "", apperr.SchemaMismatch("field "+string(f)+" not present in dataset "+string(ds.Name()), nil)
	}
	return label, nil
}

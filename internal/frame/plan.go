package frame

import (
	"etlcore/internal/apperr"
	"etlcore/internal/schema"
	"etlcore/internal/transform"
)

// fieldSlot resolves a logical Field to a mutable pointer-to-pointer into
// a single Record, letting the pipeline read and overwrite a column's
// cell generically instead of a per-field switch at call sites.
func fieldSlot(r *Record, f schema.Field) **string {
	switch f {
	case schema.FieldIDSource:
		return &r.IDSource
	case schema.FieldNom:
		return &r.Nom
	case schema.FieldPrenom:
		return &r.Prenom
	case schema.FieldCivilite:
		return &r.Civilite
	case schema.FieldRaisonSociale:
		return &r.RaisonSociale
	case schema.FieldEmail:
		return &r.Email
	case schema.FieldTelephone:
		return &r.Telephone
	case schema.FieldSiret:
		return &r.Siret
	case schema.FieldSiretSuccesseur:
		return &r.SiretSuccesseur
	case schema.FieldSiren:
		return &r.Siren
	case schema.FieldAPE:
		return &r.APE
	case schema.FieldCodeNAF:
		return &r.CodeNAF
	case schema.FieldLibelleNAF:
		return &r.LibelleNAF
	case schema.FieldPCE:
		return &r.PCE
	case schema.FieldIDs:
		return &r.IDs
	default:
		return nil
	}
}

// ColumnExpr is one column-transform request in a Plan: apply the named
// transform to the logical Field, leaving every other column untouched.
type ColumnExpr struct {
	Field     schema.Field
	Transform transform.Func
}

// Plan is a list of column transforms applied to materialized columns,
// evaluated eagerly rather than deferred through a lazy expression tree.
// Transforms stay independently composable regardless of evaluation
// order.
type Plan struct {
	Dataset schema.Dataset
	Exprs   []ColumnExpr
	// StrictSchema, if true, makes a reference to a field absent from
	// Dataset a fatal SchemaMismatch; otherwise that expression is
	// silently skipped.
	StrictSchema bool
}

// Apply runs every expression in p against f in place, preserving row
// order: transforms never read another column, so expressions may be
// evaluated in any order without changing the result. Unreferenced
// columns pass through unchanged. StrictSchema only fires for a field
// explicitly referenced by an Expr that the dataset doesn't carry;
// BuildNormalizationPlan only ever builds Exprs for fields the dataset
// does carry, so the strict branch is reachable only when a Plan is
// constructed by hand against a narrower Dataset than it was built for.
func (p Plan) Apply(f Frame) error {
	for _, expr := range p.Exprs {
		if _, ok := p.Dataset.Column(expr.Field); !ok {
			if p.StrictSchema {
				return apperr.SchemaMismatch(
					"logical field "+string(expr.Field)+" not present in dataset "+string(p.Dataset.Name()),
					nil,
				)
			}
			continue
		}
		for i := range f.Records {
			slot := fieldSlot(&f.Records[i], expr.Field)
			if slot == nil {
				return apperr.FrameSchemaError("no record slot for logical field "+string(expr.Field), nil)
			}
			*slot = expr.Transform(*slot)
		}
	}
	return nil
}

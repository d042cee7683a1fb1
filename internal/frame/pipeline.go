package frame

import (
	"etlcore/internal/schema"
	"etlcore/internal/transform"
)

// allTransformableFields lists every logical field C3 has a transform
// for, in a fixed order; id, id_source and ids are identity columns and
// are never transformed.
var allTransformableFields = []schema.Field{
	schema.FieldNom,
	schema.FieldPrenom,
	schema.FieldCivilite,
	schema.FieldRaisonSociale,
	schema.FieldEmail,
	schema.FieldTelephone,
	schema.FieldSiret,
	schema.FieldSiretSuccesseur,
	schema.FieldSiren,
	schema.FieldAPE,
	schema.FieldCodeNAF,
	schema.FieldLibelleNAF,
	schema.FieldPCE,
}

// transformNameOf maps a logical field to its Registry key. Every field
// shares its transform.Registry key verbatim; siret_successeur has its
// own key, which resolves to the same Siret transform as siret.
func transformNameOf(f schema.Field) string {
	switch f {
	case schema.FieldSiretSuccesseur:
		return "siret_successeur"
	default:
		return string(f)
	}
}

// BuildNormalizationPlan constructs the Plan that normalizes every
// logical field the active dataset carries a transform for, skipping
// fields the dataset does not define rather than erroring, whether or not
// strictSchema is set; strictSchema is only stored on the returned Plan
// for Apply to use. onPaidPhone selects the telephone transform's
// paid-service-number policy (transform.OnPaidPhoneReject by default).
func BuildNormalizationPlan(ds schema.Dataset, strictSchema bool, onPaidPhone transform.OnPaidPhonePolicy) Plan {
	var exprs []ColumnExpr
	for _, f := range allTransformableFields {
		if _, ok := ds.Column(f); !ok {
			continue
		}
		var fn transform.Func
		if f == schema.FieldTelephone {
			fn = transform.TelephoneWithPolicy(onPaidPhone)
		} else {
			fn = transform.Registry[transformNameOf(f)]
		}
		if fn == nil {
			continue
		}
		exprs = append(exprs, ColumnExpr{Field: f, Transform: fn})
	}
	return Plan{Dataset: ds, Exprs: exprs, StrictSchema: strictSchema}
}

// Package frame implements the Record/Frame data model and the column
// pipeline that applies field transforms over it without reordering rows.
package frame

// RecordID is a stable, 64-bit record identity. It is never interchanged
// with a plain int so row-position indices and stable identities cannot
// be mixed up by accident.
type RecordID int64

// Record is one row of customer data. Every field except ID is optional;
// a nil pointer represents the logical null/rejected value.
type Record struct {
	ID              RecordID
	IDSource        *string
	Nom             *string
	Prenom          *string
	Civilite        *string
	RaisonSociale   *string
	Email           *string
	Telephone       *string
	Siret           *string
	SiretSuccesseur *string
	Siren           *string
	APE             *string
	CodeNAF         *string
	LibelleNAF      *string
	PCE             *string
	// IDs carries the sorted, cluster_join_separator-joined member ids of
	// a synthesized cluster row. Nil on every original, unreconciled row.
	IDs *string
	// ClusterRef is a unique correlation tag assigned to a synthesized
	// cluster row so it can be traced back to the reconciliation pass
	// that produced it. Nil on every original, unreconciled row.
	ClusterRef *string
}

// Clone returns a deep copy of r: every non-nil string field is copied
// into a fresh allocation so mutating the clone never aliases r.
func (r Record) Clone() Record {
	clone := r
	clone.IDSource = clonePtr(r.IDSource)
	clone.Nom = clonePtr(r.Nom)
	clone.Prenom = clonePtr(r.Prenom)
	clone.Civilite = clonePtr(r.Civilite)
	clone.RaisonSociale = clonePtr(r.RaisonSociale)
	clone.Email = clonePtr(r.Email)
	clone.Telephone = clonePtr(r.Telephone)
	clone.Siret = clonePtr(r.Siret)
	clone.SiretSuccesseur = clonePtr(r.SiretSuccesseur)
	clone.Siren = clonePtr(r.Siren)
	clone.APE = clonePtr(r.APE)
	clone.CodeNAF = clonePtr(r.CodeNAF)
	clone.LibelleNAF = clonePtr(r.LibelleNAF)
	clone.PCE = clonePtr(r.PCE)
	clone.IDs = clonePtr(r.IDs)
	clone.ClusterRef = clonePtr(r.ClusterRef)
	return clone
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Frame is an ordered, in-memory sequence of Records sharing one schema.
type Frame struct {
	Records []Record
}

// New builds a Frame from records, preserving input order.
func New(records []Record) Frame {
	return Frame{Records: records}
}

// Len reports the number of rows in the frame.
func (f Frame) Len() int { return len(f.Records) }

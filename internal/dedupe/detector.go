package dedupe

import (
	"sort"

	"etlcore/internal/apperr"
	"etlcore/internal/frame"
)

// Cluster is one maximal duplicate group discovered by Detect. Anchor is
// the numerically smallest id in the group (Scenario 6's tie-breaking
// rule, which falls out for free from union-find's deterministic
// component ordering). Every multi-valued field is the deduplicated,
// sorted union of that field's non-null values across the group's
// member records.
type Cluster struct {
	Anchor          frame.RecordID
	IDs             []frame.RecordID
	Nom             *string
	Prenom          *string
	IDSource        []string
	Civilite        []string
	RaisonSociale   []string
	Email           []string
	Telephone       []string
	Siret           []string
	SiretSuccesseur []string
	Siren           []string
	APE             []string
	CodeNAF         []string
	LibelleNAF      []string
	PCE             []string
}

// Detect computes candidate duplicate pairs over records (already
// restricted to rows sharing a partitioning key by the caller), unions
// them into connected components via union-find, and returns one
// Cluster per component of size >= 2. The only expected failure is a
// programmer error — a record referenced by id that cannot be found —
// surfaced as FrameSchemaError.
func Detect(records []frame.Record) ([]Cluster, error) {
	byID := make(map[frame.RecordID]*frame.Record, len(records))
	for i := range records {
		byID[records[i].ID] = &records[i]
	}

	uf := newUnionFind()
	for i := 0; i < len(records); i++ {
		a := records[i]
		for j := i + 1; j < len(records); j++ {
			b := records[j]
			lo, hi := a, b
			if hi.ID < lo.ID {
				lo, hi = hi, lo
			}
			if lo.ID == hi.ID {
				continue
			}
			if Matches(lo, hi) {
				uf.add(lo.ID)
				uf.add(hi.ID)
				uf.union(lo.ID, hi.ID)
			}
		}
	}

	var clusters []Cluster
	for _, ids := range uf.components() {
		if len(ids) < 2 {
			continue
		}
		cluster, err := buildCluster(ids, byID)
		if err != nil {
			return nil, err
		}
		clusters = append(clusters, cluster)
	}
	return clusters, nil
}

func buildCluster(ids []frame.RecordID, byID map[frame.RecordID]*frame.Record) (Cluster, error) {
	c := Cluster{Anchor: ids[0], IDs: ids}

	idSource := newStringSet()
	civilite := newStringSet()
	raisonSociale := newStringSet()
	email := newStringSet()
	telephone := newStringSet()
	siret := newStringSet()
	siretSuccesseur := newStringSet()
	siren := newStringSet()
	ape := newStringSet()
	codeNAF := newStringSet()
	libelleNAF := newStringSet()
	pce := newStringSet()

	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			return Cluster{}, apperr.FrameSchemaError("cluster references unknown record id", nil)
		}
		if c.Nom == nil {
			c.Nom = r.Nom
		}
		if c.Prenom == nil {
			c.Prenom = r.Prenom
		}
		idSource.add(r.IDSource)
		civilite.add(r.Civilite)
		raisonSociale.add(r.RaisonSociale)
		email.add(r.Email)
		telephone.add(r.Telephone)
		siret.add(r.Siret)
		siretSuccesseur.add(r.SiretSuccesseur)
		siren.add(r.Siren)
		ape.add(r.APE)
		codeNAF.add(r.CodeNAF)
		libelleNAF.add(r.LibelleNAF)
		pce.add(r.PCE)
	}

	c.IDSource = idSource.sorted()
	c.Civilite = civilite.sorted()
	c.RaisonSociale = raisonSociale.sorted()
	c.Email = email.sorted()
	c.Telephone = telephone.sorted()
	c.Siret = siret.sorted()
	c.SiretSuccesseur = siretSuccesseur.sorted()
	c.Siren = siren.sorted()
	c.APE = ape.sorted()
	c.CodeNAF = codeNAF.sorted()
	c.LibelleNAF = libelleNAF.sorted()
	c.PCE = pce.sorted()

	return c, nil
}

type stringSet map[string]struct{}

func newStringSet() stringSet { return make(stringSet) }

func (s stringSet) add(v *string) {
	if v == nil || *v == "" {
		return
	}
	s[*v] = struct{}{}
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

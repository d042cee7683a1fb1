package dedupe

import (
	"fmt"
	"strconv"
	"strings"

	"etlcore/internal/apperr"
	"etlcore/internal/frame"

	"github.com/google/uuid"
)

// AbsorbedIDs returns the union of every cluster's member ids.
func AbsorbedIDs(clusters []Cluster) map[frame.RecordID]bool {
	absorbed := make(map[frame.RecordID]bool)
	for _, c := range clusters {
		for _, id := range c.IDs {
			absorbed[id] = true
		}
	}
	return absorbed
}

// Reconcile merges clusters into the normalized frame f: surviving
// originals (those whose id is not absorbed) are emitted unchanged with
// IDs left nil, followed by one synthesized row per cluster carrying the
// slash-joined (or joinSeparator-joined) member ids and multi-valued
// fields. Clusters are emitted in ascending anchor-id order, already
// guaranteed by Detect, for deterministic output. Reconcile verifies
// that absorbed ids are exactly the union of emitted clusters' ids,
// raising FrameSchemaError if violated.
func Reconcile(f frame.Frame, clusters []Cluster, joinSeparator string) (frame.Frame, error) {
	absorbed := AbsorbedIDs(clusters)

	seen := make(map[frame.RecordID]bool, len(absorbed))
	var out []frame.Record
	for _, r := range f.Records {
		if absorbed[r.ID] {
			continue
		}
		survivor := r.Clone()
		survivor.IDs = nil
		out = append(out, survivor)
	}

	for _, c := range clusters {
		for _, id := range c.IDs {
			if seen[id] {
				return frame.Frame{}, apperr.FrameSchemaError(
					fmt.Sprintf("record id %d absorbed by more than one cluster", id), nil)
			}
			seen[id] = true
		}
		out = append(out, clusterToRecord(c, joinSeparator))
	}

	if len(seen) != len(absorbed) {
		return frame.Frame{}, apperr.FrameSchemaError("absorbed id set does not match emitted cluster ids", nil)
	}

	return frame.New(out), nil
}

func clusterToRecord(c Cluster, sep string) frame.Record {
	idStrings := make([]string, len(c.IDs))
	for i, id := range c.IDs {
		idStrings[i] = strconv.FormatInt(int64(id), 10)
	}
	clusterRef := uuid.NewString()

	return frame.Record{
		ID:              c.Anchor,
		IDSource:        joinOrNil(c.IDSource, sep),
		Nom:             c.Nom,
		Prenom:          c.Prenom,
		Civilite:        joinOrNil(c.Civilite, sep),
		RaisonSociale:   joinOrNil(c.RaisonSociale, sep),
		Email:           joinOrNil(c.Email, sep),
		Telephone:       joinOrNil(c.Telephone, sep),
		Siret:           joinOrNil(c.Siret, sep),
		SiretSuccesseur: joinOrNil(c.SiretSuccesseur, sep),
		Siren:           joinOrNil(c.Siren, sep),
		APE:             joinOrNil(c.APE, sep),
		CodeNAF:         joinOrNil(c.CodeNAF, sep),
		LibelleNAF:      joinOrNil(c.LibelleNAF, sep),
		PCE:             joinOrNil(c.PCE, sep),
		IDs:             joinOrNil(idStrings, sep),
		ClusterRef:      &clusterRef,
	}
}

func joinOrNil(values []string, sep string) *string {
	if len(values) == 0 {
		return nil
	}
	joined := strings.Join(values, sep)
	return &joined
}

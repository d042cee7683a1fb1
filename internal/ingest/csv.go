// Package ingest implements the CSV, relational-store, and message-bus
// adapters (C11/C12/C13): real, thin collaborators that feed rows into
// the pipeline and write the reconciled frame back out. None of their
// internal correctness is part of the core invariants; they exist so the
// pipeline driver has something real to call.
package ingest

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"etlcore/internal/apperr"
	"etlcore/internal/frame"
	"etlcore/internal/schema"
)

// ReadCSV parses a CSV file (header row first) into Records, resolving
// each physical column name to a logical field via ds. Cells that parse
// as a float (a spreadsheet export rendering a SIRET/SIREN/telephone
// digit string as a number) are coerced back to their integer digit
// string via truncation rather than left in scientific notation, so
// downstream field transforms see the digits they expect.
func ReadCSV(r io.Reader, ds schema.Dataset) ([]frame.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, apperr.IngressError("failed to read CSV header", err)
	}

	fieldForColumn := make(map[int]schema.Field, len(header))
	for i, col := range header {
		for _, f := range ds.LogicalFields() {
			label, _ := ds.Column(f)
			if label == col {
				fieldForColumn[i] = f
				break
			}
		}
	}

	var records []frame.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperr.IngressError("failed to read CSV row", err)
		}

		rec := frame.Record{}
		for i, raw := range row {
			f, ok := fieldForColumn[i]
			if !ok {
				continue
			}
			value := coerceNumericCell(raw)
			assignField(&rec, f, value)
		}
		records = append(records, rec)
	}
	return records, nil
}

// coerceNumericCell truncates a float-looking cell to its integer digit
// string. A plain digit string is returned trimmed with its leading zeros
// kept; anything that does not parse as a finite whole-number float is
// returned untouched.
func coerceNumericCell(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	if strings.Trim(trimmed, "0123456789") == "" {
		return trimmed
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return raw
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return raw
	}
	return strconv.FormatInt(int64(f), 10)
}

func assignField(rec *frame.Record, f schema.Field, value string) {
	var target **string
	switch f {
	case schema.FieldID:
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			rec.ID = frame.RecordID(n)
		}
		return
	case schema.FieldIDSource:
		target = &rec.IDSource
	case schema.FieldNom:
		target = &rec.Nom
	case schema.FieldPrenom:
		target = &rec.Prenom
	case schema.FieldCivilite:
		target = &rec.Civilite
	case schema.FieldRaisonSociale:
		target = &rec.RaisonSociale
	case schema.FieldEmail:
		target = &rec.Email
	case schema.FieldTelephone:
		target = &rec.Telephone
	case schema.FieldSiret:
		target = &rec.Siret
	case schema.FieldSiretSuccesseur:
		target = &rec.SiretSuccesseur
	case schema.FieldSiren:
		target = &rec.Siren
	case schema.FieldAPE:
		target = &rec.APE
	case schema.FieldCodeNAF:
		target = &rec.CodeNAF
	case schema.FieldLibelleNAF:
		target = &rec.LibelleNAF
	case schema.FieldPCE:
		target = &rec.PCE
	case schema.FieldIDs:
		target = &rec.IDs
	default:
		return
	}
	if value == "" {
		return
	}
	v := value
	*target = &v
}

// WriteCSV renders f back out in ds's physical header order, leaving ids
// blank for survivor rows and filled for synthesized cluster rows.
func WriteCSV(w io.Writer, ds schema.Dataset, f frame.Frame) error {
	writer := csv.NewWriter(w)
	fields := ds.LogicalFields()

	header := make([]string, len(fields))
	for i, field := range fields {
		label, _ := ds.Column(field)
		header[i] = label
	}
	if err := writer.Write(header); err != nil {
		return apperr.EgressError("failed to write CSV header", err)
	}

	for _, r := range f.Records {
		row := make([]string, len(fields))
		for i, field := range fields {
			row[i] = cellFor(r, field)
		}
		if err := writer.Write(row); err != nil {
			return apperr.EgressError("failed to write CSV row", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperr.EgressError("failed to flush CSV writer", err)
	}
	return nil
}

func cellFor(r frame.Record, f schema.Field) string {
	switch f {
	case schema.FieldID:
		return strconv.FormatInt(int64(r.ID), 10)
	case schema.FieldIDSource:
		return deref(r.IDSource)
	case schema.FieldNom:
		return deref(r.Nom)
	case schema.FieldPrenom:
		return deref(r.Prenom)
	case schema.FieldCivilite:
		return deref(r.Civilite)
	case schema.FieldRaisonSociale:
		return deref(r.RaisonSociale)
	case schema.FieldEmail:
		return deref(r.Email)
	case schema.FieldTelephone:
		return deref(r.Telephone)
	case schema.FieldSiret:
		return deref(r.Siret)
	case schema.FieldSiretSuccesseur:
		return deref(r.SiretSuccesseur)
	case schema.FieldSiren:
		return deref(r.Siren)
	case schema.FieldAPE:
		return deref(r.APE)
	case schema.FieldCodeNAF:
		return deref(r.CodeNAF)
	case schema.FieldLibelleNAF:
		return deref(r.LibelleNAF)
	case schema.FieldPCE:
		return deref(r.PCE)
	case schema.FieldIDs:
		return deref(r.IDs)
	default:
		return ""
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Package apperr defines the error taxonomy shared across the ingestion,
// normalization, and deduplication stages of the pipeline.
package apperr

import (
	"errors"
	"fmt"
)

// Kind distinguishes the fatal error categories the pipeline driver
// translates into CLI exit codes. TransformRejection is deliberately
// absent: a rejected cell is represented as a nil field, never an error.
type Kind string

const (
	KindSchemaMismatch  Kind = "schema_mismatch"
	KindFrameSchema     Kind = "frame_schema"
	KindRegexBuild      Kind = "regex_build"
	KindIngress         Kind = "ingress"
	KindEgress          Kind = "egress"
)

// Error is a typed, wrapped error tagged with a Kind so callers can branch
// on category with errors.As while still chaining the underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// SchemaMismatch reports a logical field absent from the active dataset,
// or an ingress column type mismatch. Fatal, surfaced immediately.
func SchemaMismatch(msg string, cause error) error {
	return newErr(KindSchemaMismatch, msg, cause)
}

// FrameSchemaError reports an internal invariant violation during
// normalization, detection, or reconciliation. Fatal; indicates a defect.
func FrameSchemaError(msg string, cause error) error {
	return newErr(KindFrameSchema, msg, cause)
}

// RegexBuildError reports a pattern that failed to compile at startup.
func RegexBuildError(msg string, cause error) error {
	return newErr(KindRegexBuild, msg, cause)
}

// IngressError wraps a failure from a source collaborator (CSV reader,
// relational store, message bus consumer).
func IngressError(msg string, cause error) error {
	return newErr(KindIngress, msg, cause)
}

// EgressError wraps a failure from a sink collaborator (CSV writer,
// message bus producer).
func EgressError(msg string, cause error) error {
	return newErr(KindEgress, msg, cause)
}

// ErrCancelled is returned by the pipeline driver when cooperative
// cancellation is observed at a checkpoint. Non-fatal: no output frame
// is produced, but it is not a defect.
var ErrCancelled = errors.New("pipeline: cancelled")

// Is reports whether err (or any error it wraps) carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

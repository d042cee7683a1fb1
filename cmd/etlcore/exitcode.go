package main

import "etlcore/internal/apperr"

// exitCodeFor maps a pipeline-driver error to the CLI exit code
// taxonomy: 0 success, 1 configuration/schema error, 2 ingress error,
// 3 egress error, 4 cancellation, and any other error (principally
// FrameSchemaError, an internal invariant violation) to a generic
// non-zero status.
func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}
	if err == apperr.ErrCancelled {
		return exitCancelled
	}
	switch {
	case apperr.Is(err, apperr.KindSchemaMismatch), apperr.Is(err, apperr.KindRegexBuild):
		return exitConfigError
	case apperr.Is(err, apperr.KindIngress):
		return exitIngressError
	case apperr.Is(err, apperr.KindEgress):
		return exitEgressError
	default:
		return 1
	}
}

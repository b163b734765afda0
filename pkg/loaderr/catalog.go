package loaderr

import (
	"fmt"
	"strings"
)

// --- Configuration ---

func ConfigNotFound(path string) *Error {
	return New(CodeConfigNotFound, "ingest plan not found: "+path)
}

func ConfigInvalid(path string, cause error) *Error {
	return Wrap(CodeConfigInvalid, "ingest plan is not a valid mapping: "+path, cause)
}

func PlanEntryInvalid(kind, name, field string) *Error {
	return New(CodePlanEntryInvalid, fmt.Sprintf("%s %s: missing %s", kind, name, field))
}

func MissingCredentials(vars []string) *Error {
	return New(CodeMissingCredentials, "missing required settings: "+strings.Join(vars, ", "))
}

// --- Connection & load ---

func ConnectionFailed(uri string, cause error) *Error {
	return Wrap(CodeConnectionFailed, "cannot reach database at "+uri, cause)
}

func FetchFailed(bucket string, cause error) *Error {
	return Wrap(CodeFetchFailed, "fetch source data from bucket "+bucket, cause)
}

func SourceFileNotFound(path string) *Error {
	return New(CodeSourceFileNotFound, "source file not found: "+path)
}

func SchemaInitFailed(statement string, cause error) *Error {
	return Wrap(CodeSchemaInitFailed, "schema statement failed: "+statement, cause)
}

func BatchWriteFailed(name string, chunk int, cause error) *Error {
	return Wrap(CodeBatchWriteFailed, fmt.Sprintf("batch write failed for %s (chunk %d)", name, chunk), cause)
}

// --- Verification ---

func VerificationFailed(check string, cause error) *Error {
	return Wrap(CodeVerificationFailed, "verification query failed: "+check, cause)
}

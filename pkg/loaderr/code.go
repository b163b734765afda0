package loaderr

// Code is a machine-readable error code attached to every pipeline error.
type Code string

// Configuration and startup errors.
const (
	CodeConfigNotFound     Code = "CONFIG_NOT_FOUND"
	CodeConfigInvalid      Code = "CONFIG_INVALID"
	CodePlanEntryInvalid   Code = "PLAN_ENTRY_INVALID"
	CodeMissingCredentials Code = "MISSING_CREDENTIALS"
)

// Connection and load errors.
const (
	CodeConnectionFailed   Code = "CONNECTION_FAILED"
	CodeFetchFailed        Code = "FETCH_FAILED"
	CodeSourceFileNotFound Code = "SOURCE_FILE_NOT_FOUND"
	CodeSchemaInitFailed   Code = "SCHEMA_INIT_FAILED"
	CodeBatchWriteFailed   Code = "BATCH_WRITE_FAILED"
)

// Post-load errors. Verification failures are diagnostic only and are
// logged rather than returned, so this code appears in log output.
const (
	CodeVerificationFailed Code = "VERIFICATION_FAILED"
)

package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldRunID      = "run_id"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldTrigger       = "trigger"
	FieldReportMode    = "report_mode"
	FieldAcceptedLines = "accepted_lines"
	FieldMalformed     = "malformed_lines"
	FieldTotalBytes    = "total_bytes"
)

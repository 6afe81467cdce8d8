package logger

import "time"

// Standard field keys used across reqkit log lines.
const (
	FieldComponent    = "component"
	FieldTraceID      = "trace_id"
	FieldSpanID       = "span_id"
	FieldExecutionID  = "execution_id"
	FieldOperation    = "operation"
	FieldError        = "error"
	FieldErrorKind    = "error_kind"
	FieldDuration     = "duration_ms"
	FieldMethod       = "method"
	FieldURL          = "url"
	FieldStatusCode   = "status_code"
	FieldReqHeaders   = "request_headers"
	FieldResponseBody = "response_body"
	FieldChannel      = "channel"
)

// Fields builds a map from alternating key-value pairs.
// A trailing key without a value is ignored.
//
//	log.Info("sent", logger.Fields("method", "GET", "status_code", 200))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}

// DurationFields creates fields for a timed operation.
func DurationFields(op string, d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: op,
		FieldDuration:  d.Milliseconds(),
	}
}

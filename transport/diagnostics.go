package transport

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/kbukum/reqkit/logger"
	"github.com/kbukum/reqkit/request"
)

// Diagnostic describes one exchange. It is advisory: recording never
// changes the outcome of an execution.
type Diagnostic struct {
	ExecutionID    string
	Transport      string
	Method         string
	URL            string
	StatusCode     int
	RequestHeaders http.Header
	ResponseBody   []byte
	Duration       time.Duration
}

// Recorder receives diagnostics.
type Recorder interface {
	Record(ctx context.Context, d Diagnostic)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(ctx context.Context, d Diagnostic)

// Record calls f.
func (f RecorderFunc) Record(ctx context.Context, d Diagnostic) { f(ctx, d) }

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, Diagnostic) {}

// NopRecorder discards diagnostics.
func NopRecorder() Recorder { return nopRecorder{} }

const defaultMaxLoggedBody = 4096

// LogRecorder writes diagnostics as debug log lines. Authorization values
// are redacted and response bodies are truncated.
type LogRecorder struct {
	log     *logger.Logger
	maxBody int
}

// NewLogRecorder creates a LogRecorder. A nil log uses the "transport"
// logger from the registry.
func NewLogRecorder(log *logger.Logger) *LogRecorder {
	if log == nil {
		log = logger.Get("transport")
	}
	return &LogRecorder{log: log, maxBody: defaultMaxLoggedBody}
}

// WithMaxBody sets how many body bytes are logged. Zero or less logs none.
func (r *LogRecorder) WithMaxBody(n int) *LogRecorder {
	r.maxBody = n
	return r
}

// Record logs d.
func (r *LogRecorder) Record(_ context.Context, d Diagnostic) {
	body := d.ResponseBody
	truncated := false
	if r.maxBody <= 0 {
		body = nil
	} else if len(body) > r.maxBody {
		body = body[:r.maxBody]
		truncated = true
	}

	fields := logger.DurationFields("execute", d.Duration)
	fields[logger.FieldExecutionID] = d.ExecutionID
	fields[logger.FieldMethod] = d.Method
	fields[logger.FieldURL] = d.URL
	fields[logger.FieldStatusCode] = d.StatusCode
	fields[logger.FieldReqHeaders] = redact(d.RequestHeaders)
	fields[logger.FieldResponseBody] = string(body)
	if d.Transport != "" {
		fields["transport"] = d.Transport
	}
	if truncated {
		fields["response_body_truncated"] = true
	}
	r.log.Debug("exchange", fields)
}

func redact(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) == 0 {
			continue
		}
		if http.CanonicalHeaderKey(k) == request.HeaderAuthorization {
			out[k] = "[REDACTED]"
			continue
		}
		out[k] = v[0]
	}
	return out
}

// MemoryRecorder keeps diagnostics in memory. It is safe for concurrent use.
type MemoryRecorder struct {
	mu      sync.Mutex
	records []Diagnostic
}

// NewMemoryRecorder creates an empty MemoryRecorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (r *MemoryRecorder) Record(_ context.Context, d Diagnostic) {
	r.mu.Lock()
	r.records = append(r.records, d)
	r.mu.Unlock()
}

// Records returns the recorded diagnostics in arrival order.
func (r *MemoryRecorder) Records() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Diagnostic(nil), r.records...)
}

// Len returns the number of recorded diagnostics.
func (r *MemoryRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Reset discards recorded diagnostics.
func (r *MemoryRecorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}

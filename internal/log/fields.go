package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldRequestID     = "request_id"
	FieldClientIP      = "client_ip"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldQuery         = "query"
	FieldStatusCode    = "status_code"
	FieldDuration      = "duration_ms"
	FieldDurationHuman = "duration_human"
	FieldUserAgent     = "user_agent"
	FieldSuccess       = "success"
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldTool          = "tool"
	FieldExpenseID     = "id"
	FieldDate          = "date"
	FieldAmount        = "amount"
	FieldCategory      = "category"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldCount         = "count"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentExpense   = "expense"
	ComponentStorage   = "storage"
	ComponentAMQP      = "amqp"
	ComponentWorker    = "worker"
	ComponentTools     = "tools"
	ComponentRateLimit = "rate_limit"
	ComponentTrace     = "trace"
	ComponentBackend   = "backend"
	ComponentCLI       = "cli"
)

// Operations defines standard operation names
const (
	OpAdd       = "add_expense"
	OpList      = "list_expenses"
	OpSummarize = "summarize_expenses"
	OpAudit     = "audit"
	OpShutdown  = "shutdown"
	OpStartup   = "startup"
)

// LogFields provides a builder pattern for structured log fields. Fields
// keep the order they were added in; setting a key again replaces its value
// in place.
type LogFields struct {
	attrs []any
}

// NewFields creates a new LogFields instance
func NewFields() *LogFields {
	return &LogFields{attrs: make([]any, 0, 8)}
}

func (f *LogFields) set(key string, value any) *LogFields {
	for i := 0; i < len(f.attrs); i += 2 {
		if f.attrs[i] == key {
			f.attrs[i+1] = value
			return f
		}
	}
	f.attrs = append(f.attrs, key, value)
	return f
}

// WithComponent adds component field
func (f *LogFields) WithComponent(component string) *LogFields {
	return f.set(FieldComponent, component)
}

// WithRequestID adds request ID field
func (f *LogFields) WithRequestID(requestID string) *LogFields {
	if requestID == "" {
		return f
	}
	return f.set(FieldRequestID, requestID)
}

// WithError adds error field
func (f *LogFields) WithError(err error) *LogFields {
	if err == nil {
		return f
	}
	return f.set(FieldError, err.Error())
}

// WithOperation adds operation field
func (f *LogFields) WithOperation(op string) *LogFields {
	return f.set(FieldOperation, op)
}

// WithExpense adds expense-related fields
func (f *LogFields) WithExpense(id int64, date string, amount float64, category string) *LogFields {
	if id > 0 {
		f.set(FieldExpenseID, id)
	}
	return f.set(FieldDate, date).set(FieldAmount, amount).set(FieldCategory, category)
}

// WithRange adds date range fields
func (f *LogFields) WithRange(start, end string) *LogFields {
	return f.set(FieldStartDate, start).set(FieldEndDate, end)
}

// WithCount adds the number of rows a read returned
func (f *LogFields) WithCount(n int) *LogFields {
	return f.set(FieldCount, n)
}

// Len reports how many fields are set.
func (f *LogFields) Len() int {
	return len(f.attrs) / 2
}

// ToSlice returns the key/value pairs for slog in insertion order
func (f *LogFields) ToSlice() []any {
	out := make([]any, len(f.attrs))
	copy(out, f.attrs)
	return out
}

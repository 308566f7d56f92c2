package advisor

// Severity categorizes a result for presentation. The closed set keeps
// UI color handling away from free-form strings.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeverityInfo    Severity = "info"
)

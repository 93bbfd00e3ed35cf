package depgraph

// DiagnosticCategory classifies a non-fatal scan condition.
type DiagnosticCategory string

const (
	DiagUnreadableFile DiagnosticCategory = "unreadable-file"
	DiagUnresolved     DiagnosticCategory = "unresolved-dependency"
	DiagAmbiguous      DiagnosticCategory = "ambiguous-dependency"
	DiagKeyCollision   DiagnosticCategory = "key-collision"
)

// Diagnostic describes a non-fatal condition observed during a scan phase.
// Phases return diagnostics as values instead of printing them, so callers
// decide where warnings go.
type Diagnostic struct {
	Category DiagnosticCategory
	Message  string
}

func (d Diagnostic) String() string {
	return d.Message
}

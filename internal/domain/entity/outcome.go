package entity

// RunStatus classifies the terminal result of one identity's registration run.
type RunStatus string

const (
	StatusRegistered  RunStatus = "registered"
	StatusSkipped     RunStatus = "skipped"
	StatusMaintenance RunStatus = "maintenance"
	StatusFailed      RunStatus = "failed"
)

// Outcome is the single human-readable terminal result of a run. Every
// identity in a batch produces exactly one.
type Outcome struct {
	Status  RunStatus
	Code    string // Stable machine code, e.g. AUTHENTICATION_FAILED.
	Message string // The one line shown to the operator.
}

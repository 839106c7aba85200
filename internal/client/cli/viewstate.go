package cli

// ViewState tracks where a view is in its submit cycle. Every view follows
// the same transitions: idle -> submitting on a locally valid submit,
// submitting -> succeeded or failed on the response, and any terminal state
// accepts new input again.
type ViewState int

const (
	StateIdle ViewState = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s ViewState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

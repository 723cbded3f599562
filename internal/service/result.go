package service

// Outcome classifies how a mutation handled its request.
type Outcome string

const (
	// OutcomeAccepted means the mutation produced a new snapshot.
	OutcomeAccepted Outcome = "accepted"
	// OutcomeRejectedValidation means a required field was missing or
	// blank; the input snapshot was returned unchanged.
	OutcomeRejectedValidation Outcome = "rejected_validation"
	// OutcomeRejectedNotFound means a referenced id did not resolve;
	// the input snapshot was returned unchanged.
	OutcomeRejectedNotFound Outcome = "rejected_not_found"
)

// Result tells the caller whether a mutation was applied or declined,
// and why. Every mutation is total: it always returns a valid snapshot
// alongside its Result, never an error.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Reason  string  `json:"reason,omitempty"`
}

func accepted() Result {
	return Result{Outcome: OutcomeAccepted}
}

func rejectValidation(reason string) Result {
	return Result{Outcome: OutcomeRejectedValidation, Reason: reason}
}

func rejectNotFound(reason string) Result {
	return Result{Outcome: OutcomeRejectedNotFound, Reason: reason}
}

// Accepted reports whether the mutation was applied.
func (r Result) Accepted() bool {
	return r.Outcome == OutcomeAccepted
}

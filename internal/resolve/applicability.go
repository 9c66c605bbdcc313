package resolve

// Applicability is the verdict constraint solving reached for one candidate.
type Applicability uint8

const (
	ApplicabilityUnknown Applicability = iota
	ApplicabilityResolved
	ApplicabilityResolvedLowPriority
	ApplicabilityResolvedWithError
	ApplicabilityInapplicable
)

func (a Applicability) String() string {
	switch a {
	case ApplicabilityResolved:
		return "resolved"
	case ApplicabilityResolvedLowPriority:
		return "resolved-low-priority"
	case ApplicabilityResolvedWithError:
		return "resolved-with-error"
	case ApplicabilityInapplicable:
		return "inapplicable"
	default:
		return "unknown"
	}
}

// Success reports whether the candidate counts as successfully applicable.
func (a Applicability) Success() bool {
	return a == ApplicabilityResolved || a == ApplicabilityResolvedLowPriority
}

// Status is what a resolved-call view answers for get-status.
type Status uint8

const (
	// StatusUnknown marks stub views: inference never completed the call.
	StatusUnknown Status = iota
	StatusSuccess
	StatusOtherError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusOtherError:
		return "other-error"
	default:
		return "unknown"
	}
}

// statusOf derives a view status from candidate applicability.
func statusOf(a Applicability) Status {
	if a.Success() {
		return StatusSuccess
	}
	return StatusOtherError
}

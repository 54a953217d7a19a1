package tables

// Outcome classifies the result of a detection call. Detection never
// fails hard: a collaborator error degrades to an empty result for the
// page it occurred on.
type Outcome int

const (
	// OutcomeDetected means at least one valid table was found
	OutcomeDetected Outcome = iota
	// OutcomeMiss means nothing table-like was found; not an error
	OutcomeMiss
	// OutcomeRejected means a candidate existed but failed validation
	OutcomeRejected
	// OutcomeFailure means the document engine failed while reading
	// geometry or text; treated as a miss for the affected page
	OutcomeFailure
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeDetected:
		return "detected"
	case OutcomeMiss:
		return "miss"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailure:
		return "failure"
	}
	return "unknown"
}

// Detection is the explicit result of a detector entry point
type Detection struct {
	Outcome Outcome
	Tables  []*Table
	Err     error
}

// Detected wraps one or more found tables
func Detected(tables ...*Table) Detection {
	return Detection{Outcome: OutcomeDetected, Tables: tables}
}

// Miss reports that no table was found
func Miss() Detection {
	return Detection{Outcome: OutcomeMiss}
}

// Rejected reports that every candidate failed validation
func Rejected() Detection {
	return Detection{Outcome: OutcomeRejected}
}

// Failure reports a collaborator error; callers log it and continue
func Failure(err error) Detection {
	return Detection{Outcome: OutcomeFailure, Err: err}
}

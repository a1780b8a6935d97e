package rop

// Status is the outcome kind of a completed operation.
type Status int

const (
	// Unknown is the zero value. A constructed result never holds it.
	Unknown Status = iota
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// IsValid reports whether s may be used to construct a result.
func (s Status) IsValid() bool {
	return s == Success || s == Failure
}

package govalues

// Flags is an open bitmask passed to Format. Concrete bits are defined by the
// kinds that understand them; zero always means no special formatting.
type Flags int

// Status is the outcome class of a validation.
type Status int

const (
	Valid   Status = iota // The value passed validation.
	Skipped               // The value does not need to be validated or updated now.
	Invalid               // The value failed validation.
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case Skipped:
		return "skipped"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Result is the three-way outcome of Schema.Validate. A skip is neither a
// success nor an error; callers branch on Status.
type Result struct {
	status Status
	issues Issues
}

// Pass returns a Valid result.
func Pass() Result { return Result{status: Valid} }

// Skip returns a Skipped result.
func Skip() Result { return Result{status: Skipped} }

// Fail returns an Invalid result carrying the given issues.
func Fail(iss Issues) Result { return Result{status: Invalid, issues: iss} }

// Status reports the outcome class.
func (r Result) Status() Status { return r.status }

// OK reports whether validation passed.
func (r Result) OK() bool { return r.status == Valid }

// Skipped reports whether the value asked to be skipped.
func (r Result) Skipped() bool { return r.status == Skipped }

// Err returns the validation error for Invalid results and nil otherwise.
func (r Result) Err() error {
	if r.status != Invalid {
		return nil
	}
	if len(r.issues) == 0 {
		return Issues{{Code: CodeInvalidFormat}}
	}
	return r.issues
}

// Issues returns the issues of an Invalid result.
func (r Result) Issues() Issues { return r.issues }

package rng

// ErrorKind is a coarse category of random source failures which callers
// can match over.
type ErrorKind int

const (
	// Unavailable means a permanent failure, likely not recoverable
	// without user action.
	Unavailable ErrorKind = iota
	// Transient means a temporary failure. Retrying a few times is
	// recommended, but the failure may also be irrecoverable.
	Transient
	// NotReady means the source is not ready yet and should be tried
	// again a little later.
	NotReady
	// Other is an uncategorised error.
	Other
)

// ShouldRetry returns true if this kind of error may resolve itself on
// retry. See also ShouldWait.
func (k ErrorKind) ShouldRetry() bool {
	return k == Transient || k == NotReady
}

// ShouldWait returns true if callers should wait before retrying.
func (k ErrorKind) ShouldWait() bool {
	return k == NotReady
}

// Description returns a fixed description of this error kind.
// Kinds outside the defined set are a programmer error.
func (k ErrorKind) Description() string {
	switch k {
	case Unavailable:
		return "permanent failure or unavailable"
	case Transient:
		return "transient failure"
	case NotReady:
		return "not ready yet"
	case Other:
		return "uncategorised"
	default:
		panic("rng: unknown ErrorKind")
	}
}

// Error is the error type of random sources. It carries an ErrorKind, which
// can be matched over, and optional details: a message or a wrapped cause.
// The kind is fixed at construction; details never change its retry
// semantics.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error
}

// NewError constructs an Error of the given kind with no details.
func NewError(kind ErrorKind) *Error {
	return &Error{Kind: kind}
}

// NewErrorMsg constructs an Error of the given kind with a fixed message
// describing the details.
func NewErrorMsg(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

// WrapError constructs an Error of the given kind with a wrapped cause.
// The cause is available through Details and errors.Unwrap.
func WrapError(kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, err: cause}
}

// Error returns a string description of an Error.
func (e *Error) Error() string {
	return "RNG error: " + e.Kind.Description()
}

// Details returns the attached message, or the description of the wrapped
// cause, or "" when neither is present.
func (e *Error) Details() string {
	if e.msg != "" {
		return e.msg
	}
	if e.err != nil {
		return e.err.Error()
	}
	return ""
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

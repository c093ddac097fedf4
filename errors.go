package llmrouter

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorKind identifies which failure a BackendError represents.
type ErrorKind int

const (
	// ProcessLaunchFailed means the local executable could not be started at
	// all, usually because it is not installed or not on the PATH.
	ProcessLaunchFailed ErrorKind = iota
	// ProcessExitedNonZero means the local executable ran but reported a failure.
	ProcessExitedNonZero
	// TransportFailed means the HTTP request never produced a response.
	TransportFailed
	// NonSuccessStatus means the remote API answered with a non-2xx status.
	NonSuccessStatus
	// UnparsableResponse means the remote API answered 2xx, but with a body
	// matching none of the known success shapes.
	UnparsableResponse
	// MissingCredential means the selected backend needs an API key the policy
	// does not provide.
	MissingCredential
	// UnsupportedModel means no routing rule matches the model identifier.
	UnsupportedModel
	// EmptyResponse is only produced when Policy.RejectEmptyResponses is set.
	EmptyResponse
)

func (k ErrorKind) String() string {
	switch k {
	case ProcessLaunchFailed:
		return "process launch failed"
	case ProcessExitedNonZero:
		return "process exited with non-zero status"
	case TransportFailed:
		return "transport failed"
	case NonSuccessStatus:
		return "non-success status"
	case UnparsableResponse:
		return "unparsable response"
	case MissingCredential:
		return "missing credential"
	case UnsupportedModel:
		return "unsupported model"
	case EmptyResponse:
		return "empty response"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// BackendError is the single failure type returned by the routing client and
// every adapter. Only the fields relevant to its Kind are set.
type BackendError struct {
	Kind    ErrorKind
	Backend string

	// Stderr is the standard error of the local executable (ProcessExitedNonZero).
	Stderr string
	// StatusCode and Body describe a remote answer (NonSuccessStatus,
	// UnparsableResponse).
	StatusCode int
	Body       string
	// Credential names the missing key (MissingCredential).
	Credential string
	// Model is the offending identifier (UnsupportedModel).
	Model string

	cause error
}

func (e *BackendError) Error() string {
	prefix := e.Kind.String()
	if e.Backend != "" {
		prefix = e.Backend + ": " + prefix
	}

	switch e.Kind {
	case ProcessLaunchFailed, TransportFailed:
		if e.cause != nil {
			return fmt.Sprintf("%s: %s", prefix, e.cause)
		}
	case ProcessExitedNonZero:
		return fmt.Sprintf("%s: %s", prefix, e.Stderr)
	case NonSuccessStatus:
		return fmt.Sprintf("%s (%d): %s", prefix, e.StatusCode, e.Body)
	case UnparsableResponse:
		return fmt.Sprintf("%s: %s", prefix, e.Body)
	case MissingCredential:
		return fmt.Sprintf("%s: no %s configured", prefix, e.Credential)
	case UnsupportedModel:
		return fmt.Sprintf("%s: %s", prefix, e.Model)
	}

	return prefix
}

func (e *BackendError) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is, or wraps, a BackendError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var berr *BackendError

	if !errors.As(err, &berr) {
		return false
	}

	return berr.Kind == kind
}

// KindOf extracts the kind of a BackendError found in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var berr *BackendError

	if !errors.As(err, &berr) {
		return 0, false
	}

	return berr.Kind, true
}

// NewLaunchError reports an executable which could not be started. The hint
// is attached so callers can render remediation steps.
func NewLaunchError(backend string, cause error, hint string) error {
	err := error(&BackendError{Kind: ProcessLaunchFailed, Backend: backend, cause: cause})

	if hint != "" {
		err = errors.WithHint(err, hint)
	}

	return err
}

func NewExitError(backend, stderr string, cause error) error {
	return &BackendError{Kind: ProcessExitedNonZero, Backend: backend, Stderr: stderr, cause: cause}
}

func NewTransportError(backend string, cause error) error {
	return &BackendError{Kind: TransportFailed, Backend: backend, cause: cause}
}

func NewStatusError(backend string, code int, body string) error {
	return &BackendError{Kind: NonSuccessStatus, Backend: backend, StatusCode: code, Body: body}
}

func NewUnparsableError(backend string, code int, body string, cause error) error {
	return &BackendError{Kind: UnparsableResponse, Backend: backend, StatusCode: code, Body: body, cause: cause}
}

func NewMissingCredentialError(backend, credential string) error {
	return &BackendError{Kind: MissingCredential, Backend: backend, Credential: credential}
}

func NewUnsupportedModelError(model string) error {
	return &BackendError{Kind: UnsupportedModel, Model: model}
}

func newEmptyResponseError(backend string) error {
	return &BackendError{Kind: EmptyResponse, Backend: backend}
}

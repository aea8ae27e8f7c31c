package debate

import "errors"

// Sentinel errors surfaced at the service boundary. Transports map them to
// their own status codes; none of them mutates session state.
var (
	// ErrNotFound indicates the session id is unknown.
	ErrNotFound = errors.New("session not found")

	// ErrAlreadyStarted indicates Start was called on a session that has
	// already left the pending state.
	ErrAlreadyStarted = errors.New("session already started")

	// ErrInvalidState indicates the operation does not apply to the
	// session's current lifecycle state.
	ErrInvalidState = errors.New("operation not valid in current session state")

	// ErrInvalidConfig indicates a create or reconfigure request that
	// fails validation.
	ErrInvalidConfig = errors.New("invalid session configuration")

	// ErrNotReady indicates analytics were requested before the session
	// produced them.
	ErrNotReady = errors.New("analytics not ready")
)

// errCancelled aborts the session task when a cancel request lands. Internal
// to the orchestrator; callers observe StatusCancelled.
var errCancelled = errors.New("session cancelled")

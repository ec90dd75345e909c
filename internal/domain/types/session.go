package types

// SessionState is the phase of the client session machine.
type SessionState string

// Session phases. Checking only occurs during startup validation of a
// persisted token. Failed means that validation could not be completed
// (backend unreachable, server fault); the session is logged out either
// way, but a shell can distinguish it from a plainly rejected token.
const (
	SessionUnauthenticated SessionState = "unauthenticated"
	SessionChecking        SessionState = "checking"
	SessionAuthenticated   SessionState = "authenticated"
	SessionFailed          SessionState = "failed"
)

// Result is the uniform outcome of session operations. Operations never
// surface raw transport errors; a failed call yields OK=false and a
// displayable message.
type Result struct {
	OK      bool
	Message string
}

// Ok returns a successful result.
func Ok() Result { return Result{OK: true} }

// Fail returns a failed result carrying a displayable message.
func Fail(message string) Result { return Result{OK: false, Message: message} }

package notionhub

// Action is the outcome category of a guard decision.
type Action uint8

const (
	// ActionProceed lets the navigation continue to its target.
	ActionProceed Action = iota
	// ActionRedirectLogin sends the navigation to the login page.
	ActionRedirectLogin
	// ActionRedirectHome sends the navigation to the authenticated home.
	ActionRedirectHome
)

func (a Action) String() string {
	switch a {
	case ActionProceed:
		return "proceed"
	case ActionRedirectLogin:
		return "redirect-login"
	case ActionRedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Decision is the guard's resolution of one navigation attempt.
type Decision struct {
	Action Action
	// RedirectTo is the destination path for redirect actions, empty when
	// the navigation proceeds.
	RedirectTo string
	// Notice is the user-visible message attached to the decision, empty
	// when there is nothing to show.
	Notice string
}

// Level classifies a notification.
type Level uint8

const (
	// LevelInfo is an informational notice.
	LevelInfo Level = iota
	// LevelError is a user-visible error notice.
	LevelError
)

// Notifier is the fire-and-forget message surface of the hosting
// application. Implementations must not block; no return value is consumed.
type Notifier interface {
	Notify(level Level, message string)
}

// NoopNotifier discards every notice.
type NoopNotifier struct{}

// Notify implements [Notifier].
func (NoopNotifier) Notify(Level, string) {}

// NotifierFunc adapts a function to [Notifier].
type NotifierFunc func(level Level, message string)

// Notify implements [Notifier].
func (f NotifierFunc) Notify(level Level, message string) { f(level, message) }

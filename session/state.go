package session

// State is a step of the login flow.
type State int

const (
	// NoCredentials is the initial state, before any credential was asked for.
	NoCredentials State = iota
	// Prompting means the prompter is being asked for credentials.
	Prompting
	// Authenticating means a login request is in flight.
	Authenticating
	// Authenticated is terminal: a session exists.
	Authenticated
	// Rejected means the login endpoint refused the last credentials. The flow prompts again.
	Rejected
	// Abandoned is terminal: the user dismissed the prompt or gave no credentials.
	Abandoned
)

func (s State) String() string {
	switch s {
	case NoCredentials:
		return "no credentials"
	case Prompting:
		return "prompting"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Rejected:
		return "rejected"
	case Abandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

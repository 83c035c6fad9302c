// Package session implements the login flow that produces the credentials needed to resolve videos.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/atres-cli/atres/constant"
	"github.com/atres-cli/atres/log"
	"github.com/atres-cli/atres/network"
	"github.com/atres-cli/atres/source"
	"github.com/google/uuid"
	"github.com/samber/mo"
)

const (
	// LoginPath is the login endpoint, relative to the auth origin.
	LoginPath = "/j_spring_security_check"

	// failureMarker appears in the login response body when the credentials are wrong.
	failureMarker = `"error":true`

	// RetryReason is shown on the prompt following a failed login.
	RetryReason = "Wrong username or password. Please, try again."

	// SuccessMessage is the one time notification sent after a prompted login succeeds.
	SuccessMessage = "Login successfully"
)

// DefaultReason is shown on the first prompt when the caller gives none.
var DefaultReason = "Login to " + constant.BaseURL + " to get full access content."

// Session is an authenticated credential pair.
type Session struct {
	// ID correlates the log lines of one session.
	ID       string
	Username string
	Password string
}

// Prompter supplies credentials.
//
// With force unset, the prompter may answer from a store without asking the user, and returns
// nil when it has nothing. With force set it must ask the user; a dismissed prompt is reported
// through Credentials.Rejected.
type Prompter interface {
	Credentials(reason string, force bool) (*source.Credentials, error)
}

// Keeper is implemented by prompters able to store credentials that were accepted by the server.
type Keeper interface {
	Keep(credentials *source.Credentials) error
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) {
	f(message)
}

// Manager runs the login flow and owns the resulting session.
// A Manager creates at most one session: once authenticated, Ensure keeps returning it.
type Manager struct {
	fetcher  network.Fetcher
	authURL  string
	prompter Prompter
	notifier Notifier

	state   State
	session mo.Option[*Session]
	logins  int
	prompts int
}

// NewManager returns a manager logging in against the login endpoint of authOrigin.
func NewManager(fetcher network.Fetcher, authOrigin string, prompter Prompter, notifier Notifier) *Manager {
	if authOrigin == "" {
		authOrigin = constant.AuthURL
	}

	return &Manager{
		fetcher:  fetcher,
		authURL:  strings.TrimSuffix(authOrigin, "/") + LoginPath,
		prompter: prompter,
		notifier: notifier,
		state:    NoCredentials,
		session:  mo.None[*Session](),
	}
}

// State returns the current state of the flow.
func (m *Manager) State() State {
	return m.state
}

// Session returns the session, if the flow ended authenticated.
func (m *Manager) Session() mo.Option[*Session] {
	return m.session
}

// Logins returns the number of login requests sent so far.
func (m *Manager) Logins() int {
	return m.logins
}

// Prompts returns the number of forced prompts issued so far.
func (m *Manager) Prompts() int {
	return m.prompts
}

// Ensure returns the session, logging in first when needed.
//
// The first request for credentials does not force a prompt. A missing or empty answer forces
// one; an empty answer to a forced prompt abandons. A rejection from the login endpoint prompts
// again with RetryReason. An abandoned flow yields no session and no error: errors are only
// returned for transport failures.
func (m *Manager) Ensure(ctx context.Context, reason string) (mo.Option[*Session], error) {
	if m.state == Authenticated {
		return m.session, nil
	}

	if reason == "" {
		reason = DefaultReason
	}

	force := false
	for {
		if err := ctx.Err(); err != nil {
			return mo.None[*Session](), err
		}

		m.state = Prompting
		if force {
			m.prompts++
		}

		credentials, err := m.prompter.Credentials(reason, force)
		if err != nil {
			m.state = NoCredentials
			return mo.None[*Session](), fmt.Errorf("credentials: %w", err)
		}

		if credentials != nil && credentials.Rejected {
			log.Infof("login abandoned: prompt dismissed")
			m.state = Abandoned
			return mo.None[*Session](), nil
		}

		if credentials.Empty() {
			if !force {
				force = true
				continue
			}

			log.Infof("login abandoned: no credentials")
			m.state = Abandoned
			return mo.None[*Session](), nil
		}

		m.state = Authenticating
		ok, err := m.login(ctx, credentials)
		if err != nil {
			m.state = NoCredentials
			return mo.None[*Session](), err
		}

		if !ok {
			log.Warnf("login rejected for %s", credentials.Username)
			m.state = Rejected
			reason = RetryReason
			force = true
			continue
		}

		s := &Session{
			ID:       uuid.NewString(),
			Username: credentials.Username,
			Password: credentials.Password,
		}
		m.session = mo.Some(s)
		m.state = Authenticated
		entry := log.With(log.Fields{"session": s.ID, "user": s.Username})
		entry.Info("logged in")

		if force {
			if keeper, ok := m.prompter.(Keeper); ok {
				if err := keeper.Keep(credentials); err != nil {
					entry.Warnf("keep credentials: %s", err)
				}
			}

			if m.notifier != nil {
				m.notifier.Notify(SuccessMessage)
			}
		}

		return m.session, nil
	}
}

func (m *Manager) login(ctx context.Context, credentials *source.Credentials) (bool, error) {
	m.logins++

	body, err := m.fetcher.Fetch(ctx, m.authURL, &network.Options{
		PostData: map[string]string{
			"j_username": credentials.Username,
			"j_password": credentials.Password,
		},
	})
	if err != nil {
		return false, fmt.Errorf("login: %w", err)
	}

	return !strings.Contains(body, failureMarker), nil
}

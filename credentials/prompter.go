package credentials

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/atres-cli/atres/color"
	"github.com/atres-cli/atres/log"
	"github.com/atres-cli/atres/source"
	"github.com/atres-cli/atres/style"
)

// Asker asks the user for a username and a password.
type Asker func(reason string) (username, password string, err error)

// Prompter answers credential requests from the keyring, and asks the user when forced.
type Prompter struct {
	ask   Asker
	load  func() (*source.Credentials, error)
	store func(*source.Credentials) error
}

// NewPrompter returns a prompter backed by the system keyring and an interactive terminal prompt.
func NewPrompter() *Prompter {
	return &Prompter{ask: Survey, load: Load, store: Save}
}

// NewKeyringPrompter returns a prompter that only reads the keyring.
// Forced requests are rejected, since there is no terminal to ask on.
func NewKeyringPrompter() *Prompter {
	return &Prompter{load: Load, store: Save}
}

// Credentials implements session.Prompter.
func (p *Prompter) Credentials(reason string, force bool) (*source.Credentials, error) {
	if !force {
		stored, err := p.load()
		if err != nil {
			log.Warnf("keyring: %s", err)
			return nil, nil
		}
		return stored, nil
	}

	if p.ask == nil {
		log.Infof("credentials requested without a terminal: %s", reason)
		return &source.Credentials{Rejected: true}, nil
	}

	username, password, err := p.ask(reason)
	if errors.Is(err, terminal.InterruptErr) {
		return &source.Credentials{Rejected: true}, nil
	}
	if err != nil {
		return nil, err
	}

	return &source.Credentials{
		Username: strings.TrimSpace(username),
		Password: password,
	}, nil
}

// Keep implements session.Keeper.
func (p *Prompter) Keep(c *source.Credentials) error {
	return p.store(c)
}

// Survey asks for the credentials on the terminal.
func Survey(reason string) (username, password string, err error) {
	fmt.Println(style.Fg(color.Orange)(reason))

	err = survey.AskOne(&survey.Input{Message: "Username"}, &username)
	if err != nil {
		return
	}

	err = survey.AskOne(&survey.Password{Message: "Password"}, &password)
	return
}

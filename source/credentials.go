package source

// Credentials is the username/password pair obtained from the credential prompt.
type Credentials struct {
	Username string
	Password string
	// Rejected is set when the user dismissed the prompt.
	Rejected bool
}

// Empty reports whether either half of the pair is missing.
func (c *Credentials) Empty() bool {
	return c == nil || c.Username == "" || c.Password == ""
}

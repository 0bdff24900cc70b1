package models

// Session is the persisted pair identifying this client as logged in.
type Session struct {
	Token    string
	Username string
}

// Valid reports whether both fields are present. A partial session is
// treated the same as no session at all.
func (s Session) Valid() bool {
	return s.Token != "" && s.Username != ""
}

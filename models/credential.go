package models

import "time"

// NewCredential is the plaintext input of a vault add operation.
type NewCredential struct {
	Service  string
	Username string
	URL      string
	Email    string
	Notes    *string
	// Secret is the plaintext password. It is encrypted before it reaches
	// the store and is not retained by the session.
	Secret string
}

// Credential is the decrypted view of a VaultEntry returned by a reveal.
// It must not be cached: callers drop it once it has been shown or copied.
type Credential struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Service   string
	Username  string
	URL       string
	Email     string
	Notes     *string
	Secret    string
}

// CredentialUpdate describes a whole-row replace of an existing entry.
// nil fields keep their current value.
type CredentialUpdate struct {
	Service  *string
	Username *string
	URL      *string
	Email    *string
	Notes    *string
	Secret   *string
}

// IsEmpty reports whether the update changes nothing.
func (u CredentialUpdate) IsEmpty() bool {
	return u.Service == nil && u.Username == nil && u.URL == nil &&
		u.Email == nil && u.Notes == nil && u.Secret == nil
}

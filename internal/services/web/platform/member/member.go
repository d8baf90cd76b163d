// Package member connects the web service to the external member identity
// provider.
//
// The provider signs an HS256 token describing the member and hands it back
// through the auth callback. The token is kept in the session cookie and
// verified on every request; handlers read the outcome through the Capability
// stored in the request context.
package member

import (
	"strings"
	"time"
)

// Member is the record of a signed-in site member.
type Member struct {
	ID                 string
	Nickname           string
	FirstName          string
	LastName           string
	Title              string
	LoginEmail         string
	LoginEmailVerified bool
	Phones             []string
	PhotoURL           string
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	LastLoginAt        time.Time
}

// FullName joins the first and last names.
func (m Member) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(m.FirstName) + " " + strings.TrimSpace(m.LastName))
}

// DisplayName returns the nickname, then the full name, then fallback.
func (m Member) DisplayName(fallback string) string {
	if nickname := strings.TrimSpace(m.Nickname); nickname != "" {
		return nickname
	}
	if full := m.FullName(); full != "" {
		return full
	}
	return fallback
}

// PrimaryPhone returns the first listed phone number.
func (m Member) PrimaryPhone() string {
	for _, phone := range m.Phones {
		if phone = strings.TrimSpace(phone); phone != "" {
			return phone
		}
	}
	return ""
}

// Initial returns the uppercase first letter of the display name, used when
// no photo is available.
func (m Member) Initial(fallback string) string {
	for _, r := range m.DisplayName(fallback) {
		return strings.ToUpper(string(r))
	}
	return ""
}

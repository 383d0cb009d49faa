package domain

// Profile is the external user profile entity, read-only from this service.
// Profiles are versioned per fiscal code; only the highest version is
// authoritative and the repository returns only that one.
type Profile struct {
	FiscalCode       FiscalCode `json:"fiscal_code"`
	Version          int64      `json:"version"`
	Email            string     `json:"email,omitempty"`
	IsEmailValidated bool       `json:"is_email_validated"`
}

// NoticeEmail picks the notice email for a user: the profile email when it
// exists and has been validated, otherwise the identity-provider email
// carried on the session record. Empty means the user has no notice email,
// which is a legitimate outcome rather than an error.
func (p *Profile) NoticeEmail(user *User) string {
	if p.Email != "" && p.IsEmailValidated {
		return p.Email
	}
	return user.SpidEmail
}

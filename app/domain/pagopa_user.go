package domain

// PagoPAUser is the record returned to the proxy caller. NoticeEmail is
// omitted when the user has neither a validated profile email nor an
// identity-provider email.
type PagoPAUser struct {
	Name        string     `json:"name" validate:"required"`
	FamilyName  string     `json:"family_name" validate:"required"`
	FiscalCode  FiscalCode `json:"fiscal_code" validate:"required,fiscalcode"`
	MobilePhone string     `json:"mobile_phone,omitempty"`
	NoticeEmail string     `json:"notice_email,omitempty" validate:"omitempty,email"`
	SpidEmail   string     `json:"spid_email,omitempty" validate:"omitempty,email"`
}

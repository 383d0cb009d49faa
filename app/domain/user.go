package domain

import (
	"encoding/json"
	"fmt"

	"pagopa-proxy/app/utils/validator"
)

// Token types held by a user session. All of them are opaque strings; the
// session token is the primary key, the others are aliases resolving to it.
type (
	SessionToken  string
	WalletToken   string
	MyPortalToken string
	BPDToken      string
	FiscalCode    string
)

// SchemaVersion identifies which user record variant a stored payload
// satisfied. The variants form a superset chain: V2 adds the myportal token
// to V1, V3 adds the bpd token to V2.
type SchemaVersion int

const (
	UserSchemaV1 SchemaVersion = iota + 1
	UserSchemaV2
	UserSchemaV3
)

// User is the canonical session payload stored under a session token.
// Session and wallet tokens are always present on a decoded record; the
// myportal and bpd tokens only if the stored payload carried them.
type User struct {
	CreatedAt  int64      `json:"created_at" validate:"required"`
	Name       string     `json:"name" validate:"required"`
	FamilyName string     `json:"family_name" validate:"required"`
	FiscalCode FiscalCode `json:"fiscal_code" validate:"required,fiscalcode"`
	SpidLevel  string     `json:"spid_level" validate:"required"`

	DateOfBirth       string `json:"date_of_birth,omitempty"`
	NameID            string `json:"nameID,omitempty"`
	NameIDFormat      string `json:"nameIDFormat,omitempty"`
	SessionIndex      string `json:"sessionIndex,omitempty"`
	SessionTrackingID string `json:"session_tracking_id,omitempty"`
	SpidEmail         string `json:"spid_email,omitempty" validate:"omitempty,email"`
	SpidIDP           string `json:"spid_idp,omitempty"`
	SpidMobilePhone   string `json:"spid_mobile_phone,omitempty"`

	SessionToken  SessionToken  `json:"session_token" validate:"required"`
	WalletToken   WalletToken   `json:"wallet_token" validate:"required"`
	MyPortalToken MyPortalToken `json:"myportal_token,omitempty"`
	BPDToken      BPDToken      `json:"bpd_token,omitempty"`
}

var userValidator = validator.New()

// DecodeUser parses a raw session payload into a User record, validating the
// required fields shared by every schema version. Any failure is terminal:
// the stored payload will not change without external intervention, so
// callers must not retry a decode error.
func DecodeUser(data []byte) (*User, error) {
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserDecode, err)
	}

	if err := userValidator.Validate(&user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserDecode, err)
	}

	return &user, nil
}

// Version reports the highest schema variant the record satisfies. A bpd
// token without a myportal token does not promote the record past V1, since
// V3 requires every V2 field.
func (u *User) Version() SchemaVersion {
	switch {
	case u.MyPortalToken != "" && u.BPDToken != "":
		return UserSchemaV3
	case u.MyPortalToken != "":
		return UserSchemaV2
	default:
		return UserSchemaV1
	}
}

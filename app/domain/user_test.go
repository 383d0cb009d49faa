package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUserPayload(t *testing.T, mutate func(map[string]any)) []byte {
	t.Helper()

	payload := map[string]any{
		"created_at":    int64(1620000000000),
		"name":          "Luca",
		"family_name":   "Rossi",
		"fiscal_code":   "AAAAAA00A00A000A",
		"spid_level":    "https://www.spid.gov.it/SpidL2",
		"session_token": "session-token-1",
		"wallet_token":  "wallet-token-1",
	}
	if mutate != nil {
		mutate(payload)
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return data
}

func TestDecodeUser(t *testing.T) {
	tests := []struct {
		name        string
		payload     func(t *testing.T) []byte
		wantErr     bool
		wantVersion SchemaVersion
		validate    func(*testing.T, *User)
	}{
		{
			name: "minimal record decodes as v1",
			payload: func(t *testing.T) []byte {
				return validUserPayload(t, nil)
			},
			wantVersion: UserSchemaV1,
			validate: func(t *testing.T, u *User) {
				assert.Equal(t, "Luca", u.Name)
				assert.Equal(t, "Rossi", u.FamilyName)
				assert.Equal(t, FiscalCode("AAAAAA00A00A000A"), u.FiscalCode)
				assert.Equal(t, SessionToken("session-token-1"), u.SessionToken)
				assert.Equal(t, WalletToken("wallet-token-1"), u.WalletToken)
				assert.Empty(t, u.MyPortalToken)
				assert.Empty(t, u.BPDToken)
			},
		},
		{
			name: "record with myportal token decodes as v2",
			payload: func(t *testing.T) []byte {
				return validUserPayload(t, func(p map[string]any) {
					p["myportal_token"] = "myportal-token-1"
				})
			},
			wantVersion: UserSchemaV2,
		},
		{
			name: "record with myportal and bpd tokens decodes as v3",
			payload: func(t *testing.T) []byte {
				return validUserPayload(t, func(p map[string]any) {
					p["myportal_token"] = "myportal-token-1"
					p["bpd_token"] = "bpd-token-1"
				})
			},
			wantVersion: UserSchemaV3,
		},
		{
			name: "bpd token alone does not promote past v1",
			payload: func(t *testing.T) []byte {
				return validUserPayload(t, func(p map[string]any) {
					p["bpd_token"] = "bpd-token-1"
				})
			},
			wantVersion: UserSchemaV1,
		},
		{
			name: "optional spid fields are carried through",
			payload: func(t *testing.T) []byte {
				return validUserPayload(t, func(p map[string]any) {
					p["spid_email"] = "luca.rossi@example.com"
					p["spid_mobile_phone"] = "3222222222222"
					p["session_tracking_id"] = "tracking-1"
				})
			},
			wantVersion: UserSchemaV1,
			validate: func(t *testing.T, u *User) {
				assert.Equal(t, "luca.rossi@example.com", u.SpidEmail)
				assert.Equal(t, "3222222222222", u.SpidMobilePhone)
				assert.Equal(t, "tracking-1", u.SessionTrackingID)
			},
		},
		{
			name: "unknown fields are ignored",
			payload: func(t *testing.T) []byte {
				return validUserPayload(t, func(p map[string]any) {
					p["some_future_field"] = "value"
				})
			},
			wantVersion: UserSchemaV1,
		},
		{
			name: "not json at all",
			payload: func(t *testing.T) []byte {
				return []byte("not-a-json-payload")
			},
			wantErr: true,
		},
		{
			name: "missing wallet token",
			payload: func(t *testing.T) []byte {
				return validUserPayload(t, func(p map[string]any) {
					delete(p, "wallet_token")
				})
			},
			wantErr: true,
		},
		{
			name: "missing session token",
			payload: func(t *testing.T) []byte {
				return validUserPayload(t, func(p map[string]any) {
					delete(p, "session_token")
				})
			},
			wantErr: true,
		},
		{
			name: "missing fiscal code",
			payload: func(t *testing.T) []byte {
				return validUserPayload(t, func(p map[string]any) {
					delete(p, "fiscal_code")
				})
			},
			wantErr: true,
		},
		{
			name: "malformed fiscal code",
			payload: func(t *testing.T) []byte {
				return validUserPayload(t, func(p map[string]any) {
					p["fiscal_code"] = "NOT-A-FISCAL-CODE"
				})
			},
			wantErr: true,
		},
		{
			name: "malformed spid email",
			payload: func(t *testing.T) []byte {
				return validUserPayload(t, func(p map[string]any) {
					p["spid_email"] = "not-an-email"
				})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := DecodeUser(tt.payload(t))

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUserDecode)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.wantVersion, user.Version())
			if tt.validate != nil {
				tt.validate(t, user)
			}
		})
	}
}

func TestProfile_NoticeEmail(t *testing.T) {
	user := &User{SpidEmail: "spid@example.com"}

	tests := []struct {
		name    string
		profile Profile
		want    string
	}{
		{
			name:    "validated profile email wins",
			profile: Profile{Email: "profile@example.com", IsEmailValidated: true},
			want:    "profile@example.com",
		},
		{
			name:    "unvalidated profile email falls back to spid email",
			profile: Profile{Email: "profile@example.com", IsEmailValidated: false},
			want:    "spid@example.com",
		},
		{
			name:    "absent profile email falls back to spid email",
			profile: Profile{IsEmailValidated: true},
			want:    "spid@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.NoticeEmail(user))
		})
	}
}

func TestProfile_NoticeEmail_NoEmailAnywhere(t *testing.T) {
	profile := Profile{}
	user := &User{}

	assert.Empty(t, profile.NoticeEmail(user))
}

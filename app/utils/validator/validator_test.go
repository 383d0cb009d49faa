package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test struct for validation
type TestRecord struct {
	Email      string `json:"email" validate:"required,email"`
	FiscalCode string `json:"fiscal_code" validate:"required,fiscalcode"`
}

func TestNew(t *testing.T) {
	v := New()
	assert.NotNil(t, v)
	assert.NotNil(t, v.validator)
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     interface{}
		wantError bool
		checkErr  func(*testing.T, error)
	}{
		{
			name: "valid record",
			input: TestRecord{
				Email:      "test@example.com",
				FiscalCode: "RSSMRA80A01H501U",
			},
			wantError: false,
		},
		{
			name: "invalid email",
			input: TestRecord{
				Email:      "invalid-email",
				FiscalCode: "RSSMRA80A01H501U",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Errors, "email")
			},
		},
		{
			name: "invalid fiscal code",
			input: TestRecord{
				Email:      "test@example.com",
				FiscalCode: "NOT-A-FISCAL-CODE",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Errors, "fiscal_code")
				assert.Contains(t, validationErr.Errors["fiscal_code"], "fiscal code")
			},
		},
		{
			name:      "missing everything",
			input:     TestRecord{},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Len(t, validationErr.Errors, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)

			if tt.wantError {
				require.Error(t, err)
				if tt.checkErr != nil {
					tt.checkErr(t, err)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidFiscalCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "regular code", code: "RSSMRA80A01H501U", want: true},
		{name: "test fixture code", code: "AAAAAA00A00A000A", want: true},
		{name: "omocodia substitution digits", code: "RSSMRALMAMLHLMLU", want: true},
		{name: "lowercase", code: "rssmra80a01h501u", want: false},
		{name: "too short", code: "RSSMRA80A01H501", want: false},
		{name: "too long", code: "RSSMRA80A01H501UX", want: false},
		{name: "invalid month letter", code: "RSSMRA80Z01H501U", want: false},
		{name: "empty", code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidFiscalCode(tt.code))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("email@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
}

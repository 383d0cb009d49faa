package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pagopa-proxy/app/domain"
	mock_port "pagopa-proxy/app/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthMiddleware_RequireWalletToken(t *testing.T) {
	resolvedUser := &domain.User{
		Name:         "Luca",
		FamilyName:   "Rossi",
		FiscalCode:   "AAAAAA00A00A000A",
		SessionToken: "session-token-1",
		WalletToken:  "wallet-token-1",
	}

	tests := []struct {
		name           string
		authHeader     string
		setupMocks     func(*mock_port.MockSessionRepository)
		expectedStatus int
		wantUser       bool
	}{
		{
			name:       "valid bearer token resolves the user",
			authHeader: "Bearer wallet-token-1",
			setupMocks: func(sessions *mock_port.MockSessionRepository) {
				sessions.EXPECT().
					GetByWalletToken(gomock.Any(), domain.WalletToken("wallet-token-1")).
					Return(resolvedUser, nil)
			},
			expectedStatus: http.StatusOK,
			wantUser:       true,
		},
		{
			name:           "missing authorization header",
			authHeader:     "",
			setupMocks:     func(sessions *mock_port.MockSessionRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-bearer scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			setupMocks:     func(sessions *mock_port.MockSessionRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown token",
			authHeader: "Bearer unknown-token",
			setupMocks: func(sessions *mock_port.MockSessionRepository) {
				sessions.EXPECT().
					GetByWalletToken(gomock.Any(), domain.WalletToken("unknown-token")).
					Return(nil, domain.ErrSessionNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "store failure is not an auth failure",
			authHeader: "Bearer wallet-token-1",
			setupMocks: func(sessions *mock_port.MockSessionRepository) {
				sessions.EXPECT().
					GetByWalletToken(gomock.Any(), domain.WalletToken("wallet-token-1")).
					Return(nil, domain.ErrStoreUnavailable)
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:       "corrupt session payload",
			authHeader: "Bearer wallet-token-1",
			setupMocks: func(sessions *mock_port.MockSessionRepository) {
				sessions.EXPECT().
					GetByWalletToken(gomock.Any(), domain.WalletToken("wallet-token-1")).
					Return(nil, domain.ErrUserDecode)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSessions := mock_port.NewMockSessionRepository(ctrl)
			tt.setupMocks(mockSessions)

			mw := NewAuthMiddleware(mockSessions, discardLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/user", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var userInContext *domain.User
			next := func(c echo.Context) error {
				userInContext, _ = UserFromContext(c)
				return c.NoContent(http.StatusOK)
			}

			err := mw.RequireWalletToken()(next)(c)

			if tt.expectedStatus == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				var httpErr *echo.HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, tt.expectedStatus, httpErr.Code)
			}

			if tt.wantUser {
				require.NotNil(t, userInContext)
				assert.Equal(t, resolvedUser.FiscalCode, userInContext.FiscalCode)
			} else {
				assert.Nil(t, userInContext)
			}
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "plain bearer", header: "Bearer token-1", want: "token-1"},
		{name: "lowercase scheme", header: "bearer token-1", want: "token-1"},
		{name: "extra whitespace", header: "Bearer   token-1", want: "token-1"},
		{name: "no header", header: "", want: ""},
		{name: "scheme only", header: "Bearer", want: ""},
		{name: "wrong scheme", header: "Basic token-1", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.want, extractBearerToken(c))
		})
	}
}

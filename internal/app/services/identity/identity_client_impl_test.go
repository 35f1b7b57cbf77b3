package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/supertokens/supertokens-golang/recipe/emailpassword/epmodels"
	"github.com/supertokens/supertokens-golang/recipe/emailverification/evmodels"
	"go.uber.org/zap"
)

const testTenantID = "public"

type MockAccountGateway struct {
	mock.Mock
}

func (m *MockAccountGateway) SignIn(tenantID, email, password string) (epmodels.SignInResponse, error) {
	args := m.Called(tenantID, email, password)
	return args.Get(0).(epmodels.SignInResponse), args.Error(1)
}

func (m *MockAccountGateway) SignUp(tenantID, email, password string) (epmodels.SignUpResponse, error) {
	args := m.Called(tenantID, email, password)
	return args.Get(0).(epmodels.SignUpResponse), args.Error(1)
}

func (m *MockAccountGateway) GetUserByEmail(tenantID, email string) (*epmodels.User, error) {
	args := m.Called(tenantID, email)
	user, _ := args.Get(0).(*epmodels.User)
	return user, args.Error(1)
}

func (m *MockAccountGateway) SendResetPasswordEmail(tenantID, userID string) (epmodels.SendResetPasswordEmailResponse, error) {
	args := m.Called(tenantID, userID)
	return args.Get(0).(epmodels.SendResetPasswordEmailResponse), args.Error(1)
}

func (m *MockAccountGateway) IsEmailVerified(userID, email string) (bool, error) {
	args := m.Called(userID, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountGateway) SendEmailVerificationEmail(tenantID, userID, email string) (evmodels.SendEmailVerificationLinkResponse, error) {
	args := m.Called(tenantID, userID, email)
	return args.Get(0).(evmodels.SendEmailVerificationLinkResponse), args.Error(1)
}

func newTestIdentityClient(gateway *MockAccountGateway) *identityClient {
	return newIdentityClient(zap.NewNop(), Options{TenantID: testTenantID}, gateway)
}

func signInOK(user epmodels.User) epmodels.SignInResponse {
	return epmodels.SignInResponse{OK: &struct{ User epmodels.User }{User: user}}
}

func signUpOK(user epmodels.User) epmodels.SignUpResponse {
	return epmodels.SignUpResponse{OK: &struct{ User epmodels.User }{User: user}}
}

func requireAuthCode(t *testing.T, err error, code string) {
	t.Helper()
	var authErr *exceptions.AuthError
	require.True(t, errors.As(err, &authErr), "expected an auth error, got %v", err)
	assert.Equal(t, code, authErr.Code)
}

func TestIdentityClient_SignIn(t *testing.T) {
	t.Run("Verified user", func(t *testing.T) {
		gateway := new(MockAccountGateway)
		gateway.On("SignIn", testTenantID, "ceo@clinic.test", "secret-1").
			Return(signInOK(epmodels.User{ID: "uid-1", Email: "ceo@clinic.test"}), nil).Once()
		gateway.On("IsEmailVerified", "uid-1", "ceo@clinic.test").Return(true, nil).Once()

		identity, err := newTestIdentityClient(gateway).SignIn(context.Background(), "ceo@clinic.test", "secret-1")
		require.NoError(t, err)
		assert.Equal(t, &models.Identity{ID: "uid-1", Email: "ceo@clinic.test", EmailVerified: true}, identity)
		gateway.AssertExpectations(t)
	})

	t.Run("Wrong credentials", func(t *testing.T) {
		gateway := new(MockAccountGateway)
		gateway.On("SignIn", testTenantID, "ceo@clinic.test", "nope").
			Return(epmodels.SignInResponse{WrongCredentialsError: &struct{}{}}, nil).Once()

		_, err := newTestIdentityClient(gateway).SignIn(context.Background(), "ceo@clinic.test", "nope")
		requireAuthCode(t, err, constvars.AuthCodeInvalidCredential)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		gateway.AssertNotCalled(t, "IsEmailVerified", mock.Anything, mock.Anything)
	})

	t.Run("Core unreachable", func(t *testing.T) {
		gateway := new(MockAccountGateway)
		gateway.On("SignIn", testTenantID, mock.Anything, mock.Anything).
			Return(epmodels.SignInResponse{}, errors.New("connection refused")).Once()

		_, err := newTestIdentityClient(gateway).SignIn(context.Background(), "ceo@clinic.test", "secret-1")
		requireAuthCode(t, err, constvars.AuthCodeInternal)
	})
}

func TestIdentityClient_CreateCredential(t *testing.T) {
	t.Run("Creates the account", func(t *testing.T) {
		gateway := new(MockAccountGateway)
		gateway.On("SignUp", testTenantID, "nia@clinic.test", "secret-12").
			Return(signUpOK(epmodels.User{ID: "uid-9", Email: "nia@clinic.test"}), nil).Once()

		identity, err := newTestIdentityClient(gateway).CreateCredential(context.Background(), "nia@clinic.test", "secret-12")
		require.NoError(t, err)
		assert.Equal(t, "uid-9", identity.ID)
		assert.False(t, identity.EmailVerified)
	})

	t.Run("Email already in use", func(t *testing.T) {
		gateway := new(MockAccountGateway)
		gateway.On("SignUp", testTenantID, "nia@clinic.test", "secret-12").
			Return(epmodels.SignUpResponse{EmailAlreadyExistsError: &struct{}{}}, nil).Once()

		_, err := newTestIdentityClient(gateway).CreateCredential(context.Background(), "nia@clinic.test", "secret-12")
		requireAuthCode(t, err, constvars.AuthCodeEmailAlreadyInUse)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, "The email address is already in use by another account.", customErr.ClientMessage)
	})

	testCases := []struct {
		name     string
		email    string
		password string
		code     string
	}{
		{name: "Malformed email", email: "not-an-email", password: "secret-12", code: constvars.AuthCodeInvalidEmail},
		{name: "Short password", email: "nia@clinic.test", password: "a1", code: constvars.AuthCodeWeakPassword},
		{name: "Password without digit", email: "nia@clinic.test", password: "onlyletters", code: constvars.AuthCodeWeakPassword},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gateway := new(MockAccountGateway)

			_, err := newTestIdentityClient(gateway).CreateCredential(context.Background(), tc.email, tc.password)
			requireAuthCode(t, err, tc.code)
			gateway.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestIdentityClient_SendVerificationEmail(t *testing.T) {
	gateway := new(MockAccountGateway)
	gateway.On("SendEmailVerificationEmail", testTenantID, "uid-1", "ceo@clinic.test").
		Return(evmodels.SendEmailVerificationLinkResponse{OK: &struct{}{}}, nil).Once()
	gateway.On("SendEmailVerificationEmail", testTenantID, "uid-2", "cto@clinic.test").
		Return(evmodels.SendEmailVerificationLinkResponse{EmailAlreadyVerifiedError: &struct{}{}}, nil).Once()

	client := newTestIdentityClient(gateway)
	assert.NoError(t, client.SendVerificationEmail(context.Background(), &models.Identity{ID: "uid-1", Email: "ceo@clinic.test"}))
	assert.NoError(t, client.SendVerificationEmail(context.Background(), &models.Identity{ID: "uid-2", Email: "cto@clinic.test"}))
	gateway.AssertExpectations(t)
}

func TestIdentityClient_SendPasswordReset(t *testing.T) {
	t.Run("Known user", func(t *testing.T) {
		gateway := new(MockAccountGateway)
		gateway.On("GetUserByEmail", testTenantID, "ceo@clinic.test").
			Return(&epmodels.User{ID: "uid-1", Email: "ceo@clinic.test"}, nil).Once()
		gateway.On("SendResetPasswordEmail", testTenantID, "uid-1").
			Return(epmodels.SendResetPasswordEmailResponse{OK: &struct{}{}}, nil).Once()

		assert.NoError(t, newTestIdentityClient(gateway).SendPasswordReset(context.Background(), "ceo@clinic.test"))
		gateway.AssertExpectations(t)
	})

	t.Run("Unknown email", func(t *testing.T) {
		gateway := new(MockAccountGateway)
		gateway.On("GetUserByEmail", testTenantID, "ghost@clinic.test").Return(nil, nil).Once()

		err := newTestIdentityClient(gateway).SendPasswordReset(context.Background(), "ghost@clinic.test")
		requireAuthCode(t, err, constvars.AuthCodeUserNotFound)
		gateway.AssertNotCalled(t, "SendResetPasswordEmail", mock.Anything, mock.Anything)
	})
}

func TestIdentityClient_RateLimitHonorsContext(t *testing.T) {
	newSaturatedClient := func(gateway *MockAccountGateway) *identityClient {
		client := newIdentityClient(zap.NewNop(), Options{TenantID: testTenantID, MaxRequestsPerSecond: 1}, gateway)
		require.True(t, client.Limiter.Allow())
		return client
	}

	t.Run("Cancelled request", func(t *testing.T) {
		gateway := new(MockAccountGateway)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newSaturatedClient(gateway).SignIn(ctx, "ceo@clinic.test", "secret-1")
		assert.ErrorIs(t, err, context.Canceled)

		var authErr *exceptions.AuthError
		assert.False(t, errors.As(err, &authErr), "cancellation is not a provider rejection")
		gateway.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Deadline shorter than the wait", func(t *testing.T) {
		gateway := new(MockAccountGateway)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := newSaturatedClient(gateway).SignIn(ctx, "ceo@clinic.test", "secret-1")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusGatewayTimeout, customErr.StatusCode)

		var authErr *exceptions.AuthError
		assert.False(t, errors.As(err, &authErr))
		gateway.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStrongPassword(t *testing.T) {
	assert.True(t, strongPassword("secret-12"))
	assert.False(t, strongPassword("12345678"))
	assert.False(t, strongPassword("abc1"))
}

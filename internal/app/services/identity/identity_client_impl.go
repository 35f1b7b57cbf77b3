package identity

import (
	"context"
	"errors"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"
	"clinic-dashboard-service/internal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	operationSignIn            = "emailpassword.SignIn"
	operationSignUp            = "emailpassword.SignUp"
	operationGetUserByEmail    = "emailpassword.GetUserByEmail"
	operationResetPassword     = "emailpassword.SendResetPasswordEmail"
	operationIsEmailVerified   = "emailverification.IsEmailVerified"
	operationVerificationEmail = "emailverification.SendEmailVerificationEmail"
)

type identityClient struct {
	TenantID  string
	Gateway   accountGateway
	Limiter   *rate.Limiter
	Validator *validator.Validate
	Log       *zap.Logger
}

type Options struct {
	TenantID             string
	MaxRequestsPerSecond int
}

// NewIdentityClient talks to the supertokens core configured by
// drivers/identity.NewSupertokens.
func NewIdentityClient(logger *zap.Logger, options Options) contracts.IdentityProvider {
	return newIdentityClient(logger, options, supertokensGateway{})
}

func newIdentityClient(logger *zap.Logger, options Options, gateway accountGateway) *identityClient {
	limit := rate.Inf
	burst := 1
	if options.MaxRequestsPerSecond > 0 {
		limit = rate.Limit(options.MaxRequestsPerSecond)
		burst = options.MaxRequestsPerSecond
	}

	return &identityClient{
		TenantID:  options.TenantID,
		Gateway:   gateway,
		Limiter:   rate.NewLimiter(limit, burst),
		Validator: validator.New(),
		Log:       logger,
	}
}

func (c *identityClient) SignIn(ctx context.Context, email, password string) (*models.Identity, error) {
	if err := c.wait(ctx, operationSignIn); err != nil {
		return nil, err
	}

	response, err := c.Gateway.SignIn(c.TenantID, email, password)
	if err != nil {
		return nil, c.unavailable(ctx, operationSignIn, err)
	}
	if response.WrongCredentialsError != nil || response.OK == nil {
		return nil, c.reject(ctx, operationSignIn, constvars.AuthCodeInvalidCredential)
	}

	user := response.OK.User
	verified, err := c.Gateway.IsEmailVerified(user.ID, user.Email)
	if err != nil {
		return nil, c.unavailable(ctx, operationIsEmailVerified, err)
	}

	return &models.Identity{
		ID:            user.ID,
		Email:         user.Email,
		EmailVerified: verified,
	}, nil
}

// CreateCredential registers an email/password account. The SDK functions skip
// the form validation of the HTTP API, so email and password are checked here.
func (c *identityClient) CreateCredential(ctx context.Context, email, password string) (*models.Identity, error) {
	if err := c.Validator.Var(email, "required,email"); err != nil {
		return nil, c.reject(ctx, operationSignUp, constvars.AuthCodeInvalidEmail)
	}
	if !strongPassword(password) {
		return nil, c.reject(ctx, operationSignUp, constvars.AuthCodeWeakPassword)
	}

	if err := c.wait(ctx, operationSignUp); err != nil {
		return nil, err
	}

	response, err := c.Gateway.SignUp(c.TenantID, email, password)
	if err != nil {
		return nil, c.unavailable(ctx, operationSignUp, err)
	}
	if response.EmailAlreadyExistsError != nil || response.OK == nil {
		return nil, c.reject(ctx, operationSignUp, constvars.AuthCodeEmailAlreadyInUse)
	}

	return &models.Identity{
		ID:    response.OK.User.ID,
		Email: response.OK.User.Email,
	}, nil
}

// SendVerificationEmail treats an already verified address as sent.
func (c *identityClient) SendVerificationEmail(ctx context.Context, identity *models.Identity) error {
	if err := c.wait(ctx, operationVerificationEmail); err != nil {
		return err
	}

	response, err := c.Gateway.SendEmailVerificationEmail(c.TenantID, identity.ID, identity.Email)
	if err != nil {
		return c.unavailable(ctx, operationVerificationEmail, err)
	}
	if response.EmailAlreadyVerifiedError != nil {
		c.Log.Debug("identityClient.SendVerificationEmail email already verified",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		)
	}
	return nil
}

func (c *identityClient) SendPasswordReset(ctx context.Context, email string) error {
	if err := c.wait(ctx, operationResetPassword); err != nil {
		return err
	}

	user, err := c.Gateway.GetUserByEmail(c.TenantID, email)
	if err != nil {
		return c.unavailable(ctx, operationGetUserByEmail, err)
	}
	if user == nil {
		return c.reject(ctx, operationResetPassword, constvars.AuthCodeUserNotFound)
	}

	response, err := c.Gateway.SendResetPasswordEmail(c.TenantID, user.ID)
	if err != nil {
		return c.unavailable(ctx, operationResetPassword, err)
	}
	if response.UnknownUserIdError != nil {
		return c.reject(ctx, operationResetPassword, constvars.AuthCodeUserNotFound)
	}
	return nil
}

// wait blocks on the client side rate limit. A request whose context ends
// first reports the deadline, not a provider rejection.
func (c *identityClient) wait(ctx context.Context, operation string) error {
	err := c.Limiter.Wait(ctx)
	if err == nil {
		return nil
	}

	c.Log.Warn("identityClient.wait gave up on rate limit",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.Error(err),
	)
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(ctxErr)
		}
		return ctxErr
	}
	// the wait would outlast the context deadline
	return exceptions.ErrServerDeadlineExceeded(err)
}

func (c *identityClient) reject(ctx context.Context, operation, code string) error {
	c.Log.Warn("identityClient rejected",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.String(constvars.LoggingErrorCodeKey, code),
	)
	return exceptions.ErrIdentityProvider(&exceptions.AuthError{Code: code, Message: authMessages[code]}, operation)
}

func (c *identityClient) unavailable(ctx context.Context, operation string, err error) error {
	c.Log.Error("identityClient call failed",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.Error(err),
	)
	return exceptions.ErrIdentityProvider(&exceptions.AuthError{
		Code:    constvars.AuthCodeInternal,
		Message: authMessages[constvars.AuthCodeInternal],
	}, operation)
}

package auth

import (
	"context"
	"strings"
	"time"

	"clinic-dashboard-service/internal/app/config"
	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/app/services/identity"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/dto/requests"
	"clinic-dashboard-service/internal/pkg/dto/responses"
	"clinic-dashboard-service/internal/pkg/exceptions"
	"clinic-dashboard-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	Log              *zap.Logger
	IdentityProvider contracts.IdentityProvider
	SessionService   contracts.SessionService
	StaffUsecase     contracts.StaffUsecase
	InternalConfig   *config.InternalConfig
	now              func() time.Time
}

func NewAuthUsecase(
	logger *zap.Logger,
	identityProvider contracts.IdentityProvider,
	sessionService contracts.SessionService,
	staffUsecase contracts.StaffUsecase,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		Log:              logger,
		IdentityProvider: identityProvider,
		SessionService:   sessionService,
		StaffUsecase:     staffUsecase,
		InternalConfig:   internalConfig,
		now:              time.Now,
	}
}

// Login signs in with the identity provider and opens a dashboard session.
// An unverified email gets a fresh verification mail and is refused.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)

	user, err := uc.IdentityProvider.SignIn(ctx, request.Email, request.Password)
	if err != nil {
		uc.Log.Info("authUsecase.Login rejected by identity provider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if !user.EmailVerified {
		err = uc.IdentityProvider.SendVerificationEmail(ctx, user)
		if err != nil {
			uc.Log.Warn("authUsecase.Login failed to send verification email",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return nil, exceptions.ErrIdentityProvider(&exceptions.AuthError{
			Code:    constvars.AuthCodeEmailNotVerified,
			Message: identity.Message(constvars.AuthCodeEmailNotVerified),
		}, "signIn")
	}

	createdAt := uc.now().UTC()
	ttl := time.Duration(uc.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour
	session := &models.Session{
		SessionID:    uuid.NewString(),
		UserID:       user.ID,
		Email:        user.Email,
		IsSuperadmin: uc.isSuperadmin(user.Email),
		CreatedAt:    createdAt,
		ExpiresAt:    createdAt.Add(ttl),
	}

	err = uc.SessionService.Save(ctx, session, ttl)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	return &responses.Login{
		Token:        token,
		UserID:       session.UserID,
		Email:        session.Email,
		IsSuperadmin: session.IsSuperadmin,
		ExpiresAt:    session.ExpiresAt,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	err := uc.SessionService.Delete(ctx, session.SessionID)
	if err != nil {
		return err
	}
	uc.StaffUsecase.DropWorkspace(session.SessionID)

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return nil
}

func (uc *authUsecase) SendPasswordReset(ctx context.Context, request *requests.PasswordReset) error {
	return uc.IdentityProvider.SendPasswordReset(ctx, request.Email)
}

func (uc *authUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	return uc.SessionService.Get(ctx, sessionID)
}

func (uc *authUsecase) isSuperadmin(email string) bool {
	for _, superadmin := range uc.InternalConfig.App.SuperadminEmails {
		if strings.EqualFold(strings.TrimSpace(superadmin), email) {
			return true
		}
	}
	return false
}

package session

import (
	"context"
	"time"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
	}
}

func (svc *sessionService) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	sessionData, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), string(sessionData), ttl)
}

// Get returns ErrSessionNotFound when the session expired or never existed.
func (svc *sessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) Delete(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return constvars.RedisKeySessionPrefix + sessionID
}

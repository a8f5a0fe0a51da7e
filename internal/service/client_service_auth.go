package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	if err := a.adapter.Register(ctx, user); err != nil {
		if mapped := mapAdapterError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	return nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	log := a.logger.GetChildLogger()

	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		if mapped := mapAdapterError(err); mapped != err {
			return models.Session{}, mapped
		}
		return models.Session{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	// the client cannot verify the signature; the "sub" claim is read for
	// display and cache-keying purposes only
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		log.Warn().Err(err).Str("func", "clientAuthService.Login").Msg("token subject could not be parsed")
	}

	session := models.Session{
		UserID:   userID,
		Username: user.Username,
		Token:    token,
		SavedAt:  time.Now(),
	}

	if err = a.localStore.SessionRepository.SaveSession(ctx, session); err != nil {
		// the login itself succeeded; a failed save only costs persistence
		log.Warn().Err(err).Str("func", "clientAuthService.Login").Msg("failed to persist session")
	}

	return session, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.SessionRepository.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return models.Session{}, ErrNotLoggedIn
		}
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.localStore.SessionRepository.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(sub, 10, 64)
}

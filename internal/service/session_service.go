package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"docanalyzer/internal/config"
	"docanalyzer/internal/domain"
	"docanalyzer/internal/port"
)

const sessionAudience = "workspace"

// SessionClaims represents the JWT claims identifying a workspace session.
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID uuid.UUID `json:"session_id"`
}

// SessionToken is returned when a session starts.
type SessionToken struct {
	Token     string    `json:"token"`
	SessionID uuid.UUID `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionService issues and validates workspace session tokens.
type SessionService interface {
	Start(ctx context.Context) (*SessionToken, error)
	End(ctx context.Context, sessionID uuid.UUID) error
	ValidateToken(tokenString string) (*SessionClaims, error)
}

type sessionService struct {
	repo port.WorkspaceRepository
	cfg  config.SessionConfig
}

// NewSessionService creates a new SessionService implementation.
func NewSessionService(repo port.WorkspaceRepository, cfg config.SessionConfig) SessionService {
	return &sessionService{repo: repo, cfg: cfg}
}

func (s *sessionService) Start(ctx context.Context) (*SessionToken, error) {
	now := time.Now().UTC()
	sessionID := uuid.New()

	if err := s.repo.Create(ctx, domain.NewWorkspace(sessionID, now)); err != nil {
		return nil, fmt.Errorf("session.Start: %w", err)
	}

	expiresAt := now.Add(s.cfg.TTL)
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID.String(),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{sessionAudience},
		},
		SessionID: sessionID,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		_ = s.repo.Delete(ctx, sessionID)
		return nil, fmt.Errorf("signing session token: %w", err)
	}

	slog.Info("sessionService.Start: session started", "session_id", sessionID, "expires_at", expiresAt)

	return &SessionToken{Token: token, SessionID: sessionID, ExpiresAt: expiresAt}, nil
}

func (s *sessionService) End(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return err
	}
	slog.Info("sessionService.End: session ended", "session_id", sessionID)
	return nil
}

func (s *sessionService) ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	aud, _ := claims.GetAudience()
	if !slices.Contains(aud, sessionAudience) {
		return nil, domain.ErrUnauthorized
	}
	if claims.SessionID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inventory-console/inventory-api/internal/api/metrics"
	"github.com/inventory-console/inventory-api/internal/core/domain"
	"github.com/inventory-console/inventory-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// seedPasswords are the plain-text passwords of the two seed accounts. They
// are accepted by equality before the stored hash is consulted.
var seedPasswords = map[string]string{
	"admin":   "admin123",
	"manager": "manager123",
}

// AuthConfig tunes token issuance and the seed-password shortcut.
type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	SeedPasswords bool
}

// AuthService implements login.
type AuthService struct {
	repo ports.CredentialStore
	cfg  AuthConfig
	log  zerolog.Logger
	now  func() time.Time
}

func NewAuthService(repo ports.CredentialStore, cfg AuthConfig, log zerolog.Logger) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, cfg: cfg, log: log, now: time.Now}
}

// Login verifies the credentials and returns a signed session token.
// Unknown usernames yield domain.ErrUserNotFound, wrong passwords
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("unknown_user").Inc()
			s.log.Warn().Str("username", username).Str("reason", "unknown_user").Msg("login rejected")
		}
		return "", nil, err
	}

	if !s.verify(user, password) {
		metrics.LoginAttemptsTotal.WithLabelValues("bad_password").Inc()
		s.log.Warn().Str("username", username).Str("reason", "bad_password").Msg("login rejected")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := signToken(s.cfg.JWTSecret, user.Username, user.Role, s.now(), s.cfg.TokenTTL)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login succeeded")
	return token, user, nil
}

func (s *AuthService) verify(user *domain.User, password string) bool {
	if s.cfg.SeedPasswords {
		if want, ok := seedPasswords[user.Username]; ok && password == want {
			return true
		}
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

package service

import (
	"ParaVault/internal/auth"
	"ParaVault/internal/model"
	"ParaVault/internal/repo"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// refreshTokenSize — 256 бит энтропии (43 символа base64url).
const refreshTokenSize = 32

// TokenPair — ответ на успешный логин.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenService выпускает access JWT и opaque refresh-токены.
// Refresh-токен хранится только в виде SHA-256 отпечатка.
type TokenService struct {
	store      repo.RefreshStore
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     *zap.SugaredLogger

	now func() time.Time

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewTokenService(store repo.RefreshStore, secret string, accessTTL, refreshTTL time.Duration, logger *zap.SugaredLogger) *TokenService {
	return &TokenService{
		store:      store,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
}

// Issue выпускает пару токенов и сохраняет refresh-сессию.
func (s *TokenService) Issue(ctx context.Context, userID int64) (TokenPair, error) {
	access, err := auth.BuildAccessToken(userID, s.secret, s.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := generateToken(refreshTokenSize)
	if err != nil {
		return TokenPair{}, err
	}

	now := s.now()
	sess := &model.RefreshSession{
		ID:        s.newSessionID(now),
		UserID:    userID,
		TokenHash: fingerprintToken(refresh),
		ExpiresAt: now.Add(s.refreshTTL),
		CreatedAt: now,
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return TokenPair{}, fmt.Errorf("save refresh session: %w", err)
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh обменивает действующий refresh-токен на новый access.
func (s *TokenService) Refresh(ctx context.Context, refresh string) (string, error) {
	refresh = strings.TrimSpace(refresh)
	if refresh == "" {
		return "", ErrInvalidRefresh
	}
	sess, err := s.store.GetByHash(ctx, fingerprintToken(refresh))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidRefresh
		}
		return "", err
	}
	if sess.Expired(s.now()) {
		return "", ErrInvalidRefresh
	}
	return auth.BuildAccessToken(sess.UserID, s.secret, s.accessTTL)
}

// PurgeExpired удаляет истёкшие refresh-сессии.
func (s *TokenService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.store.DeleteExpired(ctx, s.now())
}

func (s *TokenService) newSessionID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

// generateToken — криптостойкий случайный токен в base64url без паддинга.
func generateToken(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// fingerprintToken — детерминированный SHA-256 отпечаток токена для поиска в хранилище.
func fingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

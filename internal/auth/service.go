package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/djbookingcom/pkg"

	"github.com/golang-jwt/jwt/v4"
)

const DefaultTTL = time.Hour

// The four rejection kinds of the auth gate. Callers surface all of
// them as a plain "unauthorized"; the distinction exists for logs and
// tests only.
var (
	ErrNoToken      = errors.New("token missing")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
	ErrUnknownAdmin = errors.New("unknown admin")

	ErrWrongPassword = errors.New("wrong password")
)

var _ Authenticator = (*Service)(nil)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*Admin, error)
}

// Claims is the token payload: which admin, when issued, when expired.
// The token is self-contained, nothing is kept server-side.
type Claims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

type Service struct {
	admins adminStore
	secret []byte
	ttl    time.Duration
	// ability to inject the clock (for unit and dev testing)
	NowFunc func() time.Time
}

func NewService(admins adminStore, secret []byte, ttl time.Duration) *Service {
	return &Service{
		admins:  admins,
		secret:  secret,
		ttl:     ttl,
		NowFunc: time.Now,
	}
}

// Login checks the submitted credentials against the stored admin and
// returns a fresh token. A missing admin and a wrong password stay
// distinguishable here (404 vs 401 upstream, as the site contract wants).
func (s *Service) Login(ctx context.Context, credentials Credentials) (string, error) {
	admin, err := s.admins.GetByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return "", err
		}
		return "", fmt.Errorf("get admin: %w", err)
	}

	if !pkg.CheckPasswordHash(credentials.Password, admin.PasswordHash) {
		return "", ErrWrongPassword
	}

	return s.IssueToken(admin)
}

func (s *Service) IssueToken(admin *Admin) (string, error) {
	now := s.NowFunc()
	claims := &Claims{
		AdminID: admin.ID,
		Email:   admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Authenticate verifies the token signature and expiry, then re-resolves
// the admin against the store - a token for a removed admin is useless.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*Admin, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	admin, err := s.admins.GetByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return nil, ErrUnknownAdmin
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	return admin, nil
}

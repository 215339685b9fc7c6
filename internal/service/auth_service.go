package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"battery_alert/internal/models"
	"battery_alert/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenTTL = time.Hour
	tokenIssuer     = "battery-alert"
	maxUsernameLen  = 64
)

var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidUsername  = errors.New("invalid username")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidToken     = errors.New("invalid token")
	ErrRoleNotAllowed   = errors.New("role not allowed for sign-up")
	ErrInsufficientRole = errors.New("insufficient role")
)

// Principal is the caller identified by a bearer token.
type Principal struct {
	UserID int
	Role   models.Role
}

type AuthService struct {
	authRepo       repository.Authorization
	signingKey     []byte
	tokenTTL       time.Duration
	operatorSignup bool
	now            func() time.Time
}

func NewAuthService(repo repository.Authorization, opts AuthOptions) *AuthService {
	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		authRepo:       repo,
		signingKey:     []byte(opts.SigningKey),
		tokenTTL:       ttl,
		operatorSignup: opts.OperatorSignup,
		now:            time.Now,
	}
}

// SignUp registers a viewer, or an operator when operator sign-up is enabled.
func (s *AuthService) SignUp(ctx context.Context, username, password string, role models.Role) (int, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(username) > maxUsernameLen {
		return 0, fmt.Errorf("%w: must be 1..%d bytes", ErrInvalidUsername, maxUsernameLen)
	}
	if role == "" {
		role = models.RoleViewer
	}
	if !role.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrRoleNotAllowed, role)
	}
	if role == models.RoleOperator && !s.operatorSignup {
		return 0, fmt.Errorf("%w: %s", ErrRoleNotAllowed, role)
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}
	return s.authRepo.Create(ctx, models.User{Username: username, PasswordHash: hash, Role: role})
}

type Claims struct {
	jwt.RegisteredClaims
	UserID int         `json:"user_id"`
	Role   models.Role `json:"role"`
}

// GenerateToken validates credentials and returns a JWT carrying the user's role.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	u, err := s.authRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}
	return s.issueToken(Principal{UserID: u.ID, Role: u.Role})
}

// ParseToken verifies an HS256 token from this service and returns its principal.
func (s *AuthService) ParseToken(accessToken string) (Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return s.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID <= 0 || !claims.Role.Valid() {
		return Principal{}, ErrInvalidToken
	}
	return Principal{UserID: claims.UserID, Role: claims.Role}, nil
}

// Authorize checks that p may act with the required role.
func Authorize(p Principal, required models.Role) error {
	if !p.Role.Allows(required) {
		return fmt.Errorf("%w: %s required", ErrInsufficientRole, required)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPassword)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPassword, err)
	}
	return string(hash), nil
}

func (s *AuthService) issueToken(p Principal) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: p.UserID,
		Role:   p.Role,
	})
	return token.SignedString(s.signingKey)
}

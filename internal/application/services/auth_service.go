package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/ports"
)

// CookiePolicy describes the session cookie handed out on sign-in
type CookiePolicy struct {
	Name     string
	MaxAge   time.Duration
	Secure   bool
	SameSite http.SameSite
}

// NewCookiePolicy returns the cookie policy for the given environment.
// Production cookies are Secure and SameSite=None so a separately hosted
// frontend can send them; everywhere else they are Lax.
func NewCookiePolicy(name string, maxAge time.Duration, production bool) CookiePolicy {
	policy := CookiePolicy{Name: name, MaxAge: maxAge, SameSite: http.SameSiteLaxMode}
	if production {
		policy.Secure = true
		policy.SameSite = http.SameSiteNoneMode
	}
	return policy
}

// AuthConfig is everything the auth service needs from configuration
type AuthConfig struct {
	Secret       string
	ExpiresIn    time.Duration
	Issuer       string
	BcryptCost   int
	UserCacheTTL time.Duration
	Cookie       CookiePolicy
}

// tokenClaims is the signed JWT payload
type tokenClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// AuthService handles authentication operations
type AuthService struct {
	users  ports.UserRepository
	cache  ports.CacheRepository
	config AuthConfig
	logger *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users ports.UserRepository, cache ports.CacheRepository, cfg AuthConfig, logger *logger.Logger) *AuthService {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = "token"
	}
	return &AuthService{
		users:  users,
		cache:  cache,
		config: cfg,
		logger: logger.WithComponent("auth"),
	}
}

// Signup creates a new account and signs it in
func (s *AuthService) Signup(ctx context.Context, req ports.SignupRequest) (*ports.AuthResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	email := normalizeEmail(req.Email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, entities.ErrEmailTaken
	} else if !errors.Is(err, entities.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("User signed up", "user_id", user.ID, "email", user.Email)
	return s.issue(user)
}

// Login checks the password and signs the user in
func (s *AuthService) Login(ctx context.Context, req ports.LoginRequest) (*ports.AuthResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	email := normalizeEmail(req.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, entities.ErrUserNotFound) {
		s.logger.Warnw("Login attempt with unknown email", "email", email)
		return nil, entities.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warnw("Login attempt with invalid password", "user_id", user.ID)
		return nil, entities.ErrInvalidCredentials
	}

	s.logger.Infow("User logged in", "user_id", user.ID)
	return s.issue(user)
}

// GoogleLogin signs in the account matching the Google profile, creating it
// on first use. Such accounts get a random password nobody knows.
func (s *AuthService) GoogleLogin(ctx context.Context, profile ports.GoogleProfile) (*ports.AuthResult, error) {
	email := normalizeEmail(profile.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: google profile has no email", entities.ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		s.logger.Infow("User logged in with Google", "user_id", user.ID)
		return s.issue(user)
	case !errors.Is(err, entities.ErrUserNotFound):
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(secret)), s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user = &entities.User{Email: email, PasswordHash: string(hash)}
	if profile.Name != "" {
		name := profile.Name
		user.Name = &name
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("User signed up with Google", "user_id", user.ID, "email", user.Email)
	return s.issue(user)
}

// Me returns the current user, served from cache when possible
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	key := userCacheKey(userID)

	var cached entities.User
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		s.logger.WithError(err).Warnw("User cache read failed", "user_id", userID)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, user, s.config.UserCacheTTL); err != nil {
		s.logger.WithError(err).Warnw("User cache write failed", "user_id", userID)
	}
	return user, nil
}

// ValidateToken validates a JWT token and returns claims
func (s *AuthService) ValidateToken(tokenString string) (*ports.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrNotAuthenticated, err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, entities.ErrNotAuthenticated
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject", entities.ErrNotAuthenticated)
	}

	return &ports.Claims{UserID: id, Email: claims.Email, Name: claims.Name}, nil
}

// SessionCookie wraps a token in the session cookie
func (s *AuthService) SessionCookie(token string) *http.Cookie {
	policy := s.config.Cookie
	return &http.Cookie{
		Name:     policy.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(policy.MaxAge.Seconds()),
		Expires:  time.Now().Add(policy.MaxAge),
		HttpOnly: true,
		Secure:   policy.Secure,
		SameSite: policy.SameSite,
	}
}

// ClearSessionCookie returns a cookie that makes the browser drop the session
func (s *AuthService) ClearSessionCookie() *http.Cookie {
	policy := s.config.Cookie
	return &http.Cookie{
		Name:     policy.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   policy.Secure,
		SameSite: policy.SameSite,
	}
}

func (s *AuthService) CookieName() string {
	return s.config.Cookie.Name
}

func (s *AuthService) issue(user *entities.User) (*ports.AuthResult, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &ports.AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) generateToken(user *entities.User) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		ID:    user.ID.String(),
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.ExpiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}
	if user.Name != nil {
		claims.Name = *user.Name
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func userCacheKey(id uuid.UUID) string {
	return "user:" + id.String()
}

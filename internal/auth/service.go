package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ksaito/giftapi/internal/config"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt limit

	defaultMembershipLevel = "basic"
	welcomePoints          = 100

	tokenIssuer = "giftapi"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// userStore abstracts the persistence layer.
type userStore interface {
	Insert(ctx context.Context, user User) error
	FindByEmail(ctx context.Context, email string) (User, error)
}

// Service encapsulates authentication use cases.
type Service struct {
	store   userStore
	cfg     config.AuthConfig
	log     *zap.Logger
	nowFunc func() time.Time
	parser  *jwt.Parser

	// seenTokens collects raw tokens handed to Logout. Token validation
	// does not consult it; a logged-out token stays valid until expiry.
	seenMu     sync.Mutex
	seenTokens map[string]struct{}
}

// NewService creates a Service with dependencies.
func NewService(store userStore, cfg config.AuthConfig, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		store:      store,
		cfg:        cfg,
		log:        log,
		nowFunc:    time.Now,
		parser:     jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name})),
		seenTokens: make(map[string]struct{}),
	}
}

// RegisterInput carries data for user registration.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	BirthDate string
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// Register creates a new user, hashing the password and issuing a token.
func (s *Service) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	if err := validateRegistration(input); err != nil {
		return AuthResult{}, err
	}

	// Hash before taking the repository lock; bcrypt is the expensive part.
	hashedPassword, err := hashPassword(input.Password, s.cfg.BcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:              uuid.NewString(),
		Email:           input.Email,
		PasswordHash:    hashedPassword,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		BirthDate:       input.BirthDate,
		JoinDate:        s.nowFunc().UTC(),
		MembershipLevel: defaultMembershipLevel,
		Points:          welcomePoints,
	}

	if err := s.store.Insert(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return AuthResult{}, ErrEmailTaken
		}
		return AuthResult{}, fmt.Errorf("insert user: %w", err)
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("user registered", zap.String("userID", user.ID))

	return AuthResult{User: user.Sanitized(), Token: token}, nil
}

// Login authenticates credentials and issues a fresh token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	if input.Email == "" || input.Password == "" {
		return AuthResult{}, ErrMissingFields
	}

	user, err := s.store.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	return AuthResult{User: user.Sanitized(), Token: token}, nil
}

// Logout records the raw token as seen. The set is write-only and grows
// for the process lifetime.
func (s *Service) Logout(token string) {
	s.seenMu.Lock()
	s.seenTokens[token] = struct{}{}
	s.seenMu.Unlock()
}

// ForgotPassword logs the reset intent. No email is actually sent.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return ErrMissingFields
	}

	if _, err := s.store.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	s.log.Info("password reset requested", zap.String("email", email))

	return nil
}

// ValidateAccessToken verifies the token signature and expiry. Every
// failure collapses to ErrInvalidToken; the reason is not surfaced.
func (s *Service) ValidateAccessToken(tokenString string) (Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return Claims{}, ErrAuthRequired
	}

	parsed, err := s.parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return Claims{}, ErrInvalidToken
	}

	expFloat, ok := mapClaims["exp"].(float64)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	exp := time.Unix(int64(expFloat), 0)

	if exp.Before(s.nowFunc()) {
		return Claims{}, ErrInvalidToken
	}

	iat := time.Time{}
	if iatFloat, ok := mapClaims["iat"].(float64); ok {
		iat = time.Unix(int64(iatFloat), 0)
	}

	return Claims{UserID: sub, ExpiresAt: exp, IssuedAt: iat}, nil
}

func (s *Service) issueToken(userID string) (string, error) {
	now := s.nowFunc()
	// jti keeps tokens issued within the same second distinct.
	claims := jwt.MapClaims{
		"sub": userID,
		"iss": tokenIssuer,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(s.cfg.TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func hashPassword(password string, cost int) (string, error) {
	if len(password) > maxPasswordLength {
		return "", fmt.Errorf("password exceeds maximum length of %d characters", maxPasswordLength)
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func validateRegistration(input RegisterInput) error {
	if input.Email == "" || input.Password == "" || input.FirstName == "" ||
		input.LastName == "" || input.BirthDate == "" {
		return ErrMissingFields
	}

	if !emailPattern.MatchString(input.Email) {
		return ErrInvalidEmail
	}

	if len(input.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

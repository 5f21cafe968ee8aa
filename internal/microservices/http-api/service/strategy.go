package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"
	"animehub/internal/middleware/auth"

	"github.com/google/uuid"
)

// StrategyKind names an identity strategy.
type StrategyKind string

const (
	KindPasswordLogin StrategyKind = "password-login"
	KindSignup        StrategyKind = "signup"
	KindBearerToken   StrategyKind = "bearer-token-verify"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID   string
	Username string
}

// Credentials are the inputs of an Authenticator. Signup uses all three
// fields, password login ignores Username.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// Authenticator turns credentials into a user.
type Authenticator interface {
	Kind() StrategyKind
	Authenticate(ctx context.Context, creds Credentials) (*models.User, error)
}

// Verifier turns a bearer token into an Identity.
type Verifier interface {
	Kind() StrategyKind
	Verify(ctx context.Context, token string) (*Identity, error)
}

// Strategies is the set of identity strategies the server runs with. It is
// built once at startup and handed to the services and middleware that need it.
type Strategies struct {
	Login  Authenticator
	Signup Authenticator
	Bearer Verifier
}

func NewStrategies(users repository.UserRepository, tokens *TokenIssuer) Strategies {
	return Strategies{
		Login:  &PasswordLoginStrategy{users: users},
		Signup: &SignupStrategy{users: users},
		Bearer: &BearerTokenStrategy{tokens: tokens},
	}
}

// Validate reports a strategy that is missing or registered under the wrong slot.
func (s Strategies) Validate() error {
	var errs []error
	check := func(slot string, got interface{ Kind() StrategyKind }, want StrategyKind) {
		if got == nil {
			errs = append(errs, fmt.Errorf("%s strategy is not configured", slot))
			return
		}
		if got.Kind() != want {
			errs = append(errs, fmt.Errorf("%s strategy has kind %q, want %q", slot, got.Kind(), want))
		}
	}
	check("login", s.Login, KindPasswordLogin)
	check("signup", s.Signup, KindSignup)
	check("bearer", s.Bearer, KindBearerToken)
	return errors.Join(errs...)
}

// PasswordLoginStrategy checks an email and password against the stored hash.
type PasswordLoginStrategy struct {
	users repository.UserRepository
}

func (p *PasswordLoginStrategy) Kind() StrategyKind { return KindPasswordLogin }

func (p *PasswordLoginStrategy) Authenticate(ctx context.Context, creds Credentials) (*models.User, error) {
	user, err := p.users.FindByEmail(ctx, normalizeEmail(creds.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// same cost as a wrong password
			auth.BurnCompare(creds.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if err := auth.VerifyPassword(user.PasswordHash, creds.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	return user, nil
}

// SignupStrategy creates an account. The password is hashed here, before the
// insert, never by a storage hook.
type SignupStrategy struct {
	users repository.UserRepository
}

func (s *SignupStrategy) Kind() StrategyKind { return KindSignup }

func (s *SignupStrategy) Authenticate(ctx context.Context, creds Credentials) (*models.User, error) {
	username := strings.TrimSpace(creds.Username)
	email := normalizeEmail(creds.Email)

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrNameInUse
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	hashedPassword, err := auth.HashPassword(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:             uuid.New().String(),
		Username:       username,
		Email:          email,
		PasswordHash:   hashedPassword,
		ProfilePicture: models.DefaultProfilePicture,
		IsActive:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrAccountExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// BearerTokenStrategy verifies access tokens minted by a TokenIssuer.
type BearerTokenStrategy struct {
	tokens *TokenIssuer
}

func (b *BearerTokenStrategy) Kind() StrategyKind { return KindBearerToken }

func (b *BearerTokenStrategy) Verify(_ context.Context, token string) (*Identity, error) {
	claims, err := b.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	return &Identity{UserID: claims.Subject, Username: claims.Username}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

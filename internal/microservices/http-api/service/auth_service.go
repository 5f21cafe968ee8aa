package service

import (
	"context"
	"fmt"
	"strings"

	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/validate"
)

type AuthService interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	// Verify resolves a bearer token to the caller's identity.
	Verify(ctx context.Context, token string) (*Identity, error)
}

type authService struct {
	strategies Strategies
	tokens     *TokenIssuer
}

func NewAuthService(strategies Strategies, tokens *TokenIssuer) AuthService {
	return &authService{strategies: strategies, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.strategies.Signup.Authenticate(ctx, Credentials{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}
	return s.respond("User created successfully", user)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	user, err := s.strategies.Login.Authenticate(ctx, Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, err
	}
	return s.respond("Login successful", user)
}

func (s *authService) Verify(ctx context.Context, token string) (*Identity, error) {
	return s.strategies.Bearer.Verify(ctx, token)
}

func (s *authService) respond(message string, user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &dto.AuthResponse{
		Message:   message,
		Token:     token,
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
		User:      dto.FromModelToUserResponse(user, false),
	}, nil
}

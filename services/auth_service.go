package services

import (
	"context"
	"errors"
	"log"

	"restaurant-client/api"
	"restaurant-client/constants"
	"restaurant-client/models"
	"restaurant-client/repositories"
	"restaurant-client/utils"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// AuthService drives the session lifecycle against the restaurant API and
// keeps the bearer token in durable storage so the session survives a
// restart.
type AuthService struct {
	client *api.Client
	tokens *repositories.TokenRepository
}

func NewAuthService(client *api.Client, tokens *repositories.TokenRepository) *AuthService {
	return &AuthService{
		client: client,
		tokens: tokens,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	req := models.LoginRequest{Email: email, Password: password}

	var resp models.LoginResponse
	if err := s.client.Post(ctx, constants.EndpointLogin, req, &resp); err != nil {
		return nil, err
	}

	if err := s.tokens.Store(resp.Token); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var resp models.LoginResponse
	if err := s.client.Post(ctx, constants.EndpointRegister, req, &resp); err != nil {
		return nil, err
	}

	if err := s.tokens.Store(resp.Token); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout tells the server, then drops the local token either way. A
// failed server call must not leave the device logged in.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.client.Post(ctx, constants.EndpointLogout, nil, nil); err != nil {
		log.Printf("Logout request failed, clearing local session anyway: %v", err)
	}
	return s.tokens.Clear()
}

func (s *AuthService) Refresh(ctx context.Context) error {
	var resp models.RefreshResponse
	if err := s.client.Post(ctx, constants.EndpointRefresh, nil, &resp); err != nil {
		return err
	}
	return s.tokens.Store(resp.Token)
}

// CurrentUser reads the identity out of the stored token. The signature
// is not verified locally; the server rejects a forged token on the next
// request.
func (s *AuthService) CurrentUser() (*models.User, error) {
	token := s.tokens.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	claims, err := utils.DecodeClaims(token)
	if err != nil {
		return nil, ErrNotAuthenticated
	}
	if utils.TokenExpired(claims) {
		return nil, ErrNotAuthenticated
	}

	return &models.User{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

func (s *AuthService) IsAuthenticated() bool {
	_, err := s.CurrentUser()
	return err == nil
}

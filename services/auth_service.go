package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/minhtran-dev/canteen-client/models"
)

// AuthService handles login and the current-user lookup. Password policy,
// hashing and session issuance are entirely server-side; this client only
// forwards credentials and stores the issued token.
type AuthService struct {
	client *Client
	store  interface {
		Set(key, value string) error
		Remove(key string) error
	}
}

func NewAuthService(client *Client, store interface {
	Set(key, value string) error
	Remove(key string) error
}) *AuthService {
	return &AuthService{client: client, store: store}
}

// Login exchanges credentials for a bearer token and mirrors it into the
// snapshot store so a restart stays signed in.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var result models.LoginResult
	if err := s.client.doAnon(ctx, "POST", "/auth/login", nil, form, &result); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := s.store.Set("access_token", result.AccessToken); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout drops the stored token. The server keeps no session to tear down.
func (s *AuthService) Logout() error {
	return s.store.Remove("access_token")
}

// CurrentUser retrieves the profile behind the stored token.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.client.do(ctx, "GET", "/users/me", nil, nil, &user); err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return &user, nil
}

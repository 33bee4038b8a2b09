package client

import (
	"context"
	"net/http"
	"regexp"

	"go.uber.org/zap"

	"github.com/ksaito/giftapi/internal/auth"
)

// The pages validate before submitting; the pattern mirrors the server's.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate string `json:"birthDate"`
}

// ProfileUpdate carries the mutable profile fields; empty means unchanged.
type ProfileUpdate struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
}

type authResponse struct {
	Message string    `json:"message"`
	User    auth.User `json:"user"`
	Token   string    `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type profileResponse struct {
	Message string    `json:"message"`
	User    auth.User `json:"user"`
}

// Register creates an account and persists the new session.
func (c *Client) Register(ctx context.Context, input RegisterInput) (Session, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" ||
		input.LastName == "" || input.BirthDate == "" {
		return Session{}, auth.ErrMissingFields
	}
	if !emailPattern.MatchString(input.Email) {
		return Session{}, auth.ErrInvalidEmail
	}
	if len(input.Password) < 8 {
		return Session{}, auth.ErrPasswordTooShort
	}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", input, &resp); err != nil {
		return Session{}, err
	}

	session := Session{IsLoggedIn: true, User: &resp.User, Token: resp.Token}
	if err := c.store.Save(session); err != nil {
		return Session{}, err
	}

	return session, nil
}

// Login authenticates and persists the new session.
func (c *Client) Login(ctx context.Context, email, password string, rememberMe bool) (Session, error) {
	if email == "" || password == "" {
		return Session{}, auth.ErrMissingFields
	}

	body := map[string]string{"email": email, "password": password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return Session{}, err
	}

	session := Session{IsLoggedIn: true, User: &resp.User, Token: resp.Token, RememberMe: rememberMe}
	if err := c.store.Save(session); err != nil {
		return Session{}, err
	}

	return session, nil
}

// Logout notifies the server best-effort and always clears the local
// session, whatever the server said.
func (c *Client) Logout(ctx context.Context) error {
	session, err := c.store.Load()
	if err == nil && session.Token != "" {
		if err := c.do(ctx, http.MethodPost, "/auth/logout", session.Token, nil, nil); err != nil {
			c.log.Warn("logout request failed", zap.Error(err))
		}
	}

	return c.store.Clear()
}

// ForgotPassword requests a reset email and returns the server message.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", auth.ErrMissingFields
	}

	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", "", map[string]string{"email": email}, &resp); err != nil {
		return "", err
	}

	return resp.Message, nil
}

// Profile fetches the authenticated user's record.
func (c *Client) Profile(ctx context.Context) (auth.User, error) {
	token, err := c.bearerToken()
	if err != nil {
		return auth.User{}, err
	}

	var user auth.User
	if err := c.do(ctx, http.MethodGet, "/user/profile", token, nil, &user); err != nil {
		return auth.User{}, err
	}

	return user, nil
}

// UpdateProfile applies a partial update and refreshes the cached user.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (auth.User, error) {
	token, err := c.bearerToken()
	if err != nil {
		return auth.User{}, err
	}

	var resp profileResponse
	if err := c.do(ctx, http.MethodPut, "/user/profile", token, update, &resp); err != nil {
		return auth.User{}, err
	}

	session, err := c.store.Load()
	if err == nil && session.IsLoggedIn {
		updated := resp.User
		session.User = &updated
		if err := c.store.Save(session); err != nil {
			return auth.User{}, err
		}
	}

	return resp.User, nil
}

// ChangePassword replaces the account password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	token, err := c.bearerToken()
	if err != nil {
		return err
	}

	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}

	return c.do(ctx, http.MethodPost, "/user/change-password", token, body, nil)
}

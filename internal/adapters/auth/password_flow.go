package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/bnema/bizassist-cli/internal/adapters/platform"
	"github.com/bnema/bizassist-cli/internal/domain"
)

const maxAuthResponseBytes = 1 << 20

var ErrInvalidCredentials = errors.New("invalid email or password")

type API struct {
	BaseURL      string
	LoginPath    string
	RegisterPath string
}

func DefaultAPI(baseURL string) API {
	return API{
		BaseURL:      baseURL,
		LoginPath:    "/auth/login",
		RegisterPath: "/auth/register",
	}
}

// PasswordFlowAdapter exchanges email and password for a platform access
// token.
type PasswordFlowAdapter struct {
	API            API
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResult struct {
	AccessToken string
	Profile     domain.Profile
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	} `json:"user"`
}

type authErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

func (a PasswordFlowAdapter) Login(ctx context.Context, req LoginRequest) (TokenResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validateEmail(req.Email); err != nil {
		return TokenResult{}, err
	}
	if req.Password == "" {
		return TokenResult{}, errors.New("password is required")
	}

	result, err := a.exchange(ctx, a.API.LoginPath, req)
	if err != nil {
		return TokenResult{}, fmt.Errorf("login: %w", err)
	}
	return result, nil
}

func (a PasswordFlowAdapter) Register(ctx context.Context, req RegisterRequest) (TokenResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		return TokenResult{}, errors.New("full name is required")
	}
	if err := validateEmail(req.Email); err != nil {
		return TokenResult{}, err
	}
	if len(req.Password) < 6 {
		return TokenResult{}, errors.New("password must be at least 6 characters")
	}

	result, err := a.exchange(ctx, a.API.RegisterPath, req)
	if err != nil {
		return TokenResult{}, fmt.Errorf("register: %w", err)
	}
	return result, nil
}

func (a PasswordFlowAdapter) exchange(ctx context.Context, path string, payload any) (TokenResult, error) {
	endpoint, err := platform.BuildAPIURL(a.API.BaseURL, path)
	if err != nil {
		return TokenResult{}, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return TokenResult{}, fmt.Errorf("encode request: %w", err)
	}

	requestCtx, cancel := a.requestContext(ctx)
	defer cancel()
	httpReq, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return TokenResult{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := a.httpClient().Do(httpReq)
	if err != nil {
		return TokenResult{}, fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return TokenResult{}, ErrInvalidCredentials
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return TokenResult{}, errors.New(decodeAuthError(resp))
	}

	var token tokenResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxAuthResponseBytes)).Decode(&token); err != nil {
		return TokenResult{}, fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return TokenResult{}, errors.New("token response missing access token")
	}

	return TokenResult{
		AccessToken: token.AccessToken,
		Profile: domain.Profile{
			Email:    strings.TrimSpace(token.User.Email),
			FullName: strings.TrimSpace(token.User.FullName),
		},
	}, nil
}

func (a PasswordFlowAdapter) httpClient() *http.Client {
	if a.HTTPClient != nil {
		return a.HTTPClient
	}
	return http.DefaultClient
}

func (a PasswordFlowAdapter) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := a.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email %q", email)
	}
	return nil
}

func decodeAuthError(resp *http.Response) string {
	var payload authErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxAuthResponseBytes)).Decode(&payload); err != nil || len(payload.Detail) == 0 {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil && detail != "" {
		return fmt.Sprintf("status %d: %s", resp.StatusCode, detail)
	}
	return fmt.Sprintf("status %d: %s", resp.StatusCode, string(payload.Detail))
}

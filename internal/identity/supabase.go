package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/google/uuid"
)

// Supabase talks to the GoTrue admin API with the service role key.
type Supabase struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func NewSupabase(baseURL, serviceKey string) *Supabase {
	return &Supabase{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// apiError is a non-2xx GoTrue response.
type apiError struct {
	Status int
	Code   string `json:"error_code"`
	Msg    string `json:"msg"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("supabase auth request failed with status %d: %s %s", e.Status, e.Code, e.Msg)
}

type gotrueUser struct {
	ID               uuid.UUID              `json:"id"`
	Email            string                 `json:"email"`
	EmailConfirmedAt *time.Time             `json:"email_confirmed_at"`
	UserMetadata     map[string]interface{} `json:"user_metadata"`
}

func (u *gotrueUser) account() *Account {
	name, _ := u.UserMetadata["full_name"].(string)
	return &Account{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       name,
		EmailConfirmed: u.EmailConfirmedAt != nil,
	}
}

// makeRequest sends a request to /auth/v1. bearer defaults to the service key.
func (s *Supabase) makeRequest(ctx context.Context, method, endpoint, bearer string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+"/auth/v1"+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if bearer == "" {
		bearer = s.serviceKey
	}
	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &apiError{Status: resp.StatusCode}
		_ = json.Unmarshal(respBody, apiErr)
		if apiErr.Msg == "" {
			apiErr.Msg = string(respBody)
		}
		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func statusOf(err error) int {
	if apiErr, ok := err.(*apiError); ok {
		return apiErr.Status
	}
	return 0
}

func (s *Supabase) CreateAccount(ctx context.Context, in CreateAccountInput) (*Account, error) {
	payload := map[string]interface{}{
		"email":         strings.ToLower(strings.TrimSpace(in.Email)),
		"email_confirm": in.EmailConfirmed,
		"user_metadata": map[string]string{"full_name": in.FullName},
	}
	if in.Password != "" {
		payload["password"] = in.Password
	}

	var user gotrueUser
	if err := s.makeRequest(ctx, http.MethodPost, "/admin/users", "", payload, &user); err != nil {
		if status := statusOf(err); status == http.StatusUnprocessableEntity || status == http.StatusConflict {
			return nil, fmt.Errorf("%w: %v", domain.ErrEmailAlreadyExists, err)
		}
		return nil, fmt.Errorf("creating account: %w", err)
	}
	return user.account(), nil
}

func (s *Supabase) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.makeRequest(ctx, http.MethodDelete, "/admin/users/"+id.String(), "", nil, nil); err != nil {
		if statusOf(err) == http.StatusNotFound {
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("deleting account: %w", err)
	}
	return nil
}

func (s *Supabase) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	var user gotrueUser
	if err := s.makeRequest(ctx, http.MethodGet, "/admin/users/"+id.String(), "", nil, &user); err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("getting account: %w", err)
	}
	return user.account(), nil
}

func (s *Supabase) SendRecoveryEmail(ctx context.Context, addr, redirectTo string) error {
	endpoint := "/recover"
	if redirectTo != "" {
		endpoint += "?redirect_to=" + url.QueryEscape(redirectTo)
	}
	if err := s.makeRequest(ctx, http.MethodPost, endpoint, "", map[string]string{"email": addr}, nil); err != nil {
		return fmt.Errorf("sending recovery email: %w", err)
	}
	return nil
}

func (s *Supabase) Authenticate(ctx context.Context, addr, password string) (*Session, error) {
	var resp struct {
		AccessToken string     `json:"access_token"`
		ExpiresIn   int64      `json:"expires_in"`
		User        gotrueUser `json:"user"`
	}
	err := s.makeRequest(ctx, http.MethodPost, "/token?grant_type=password", "",
		map[string]string{"email": addr, "password": password}, &resp)
	if err != nil {
		if status := statusOf(err); status == http.StatusBadRequest || status == http.StatusUnauthorized {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticating: %w", err)
	}

	return &Session{
		AccessToken: resp.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		Account:     *resp.User.account(),
	}, nil
}

func (s *Supabase) SessionFromToken(ctx context.Context, token string) (*Session, error) {
	var user gotrueUser
	if err := s.makeRequest(ctx, http.MethodGet, "/user", token, nil, &user); err != nil {
		if status := statusOf(err); status == http.StatusUnauthorized || status == http.StatusForbidden || status == http.StatusNotFound {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("resolving session: %w", err)
	}
	return &Session{AccessToken: token, Account: *user.account()}, nil
}

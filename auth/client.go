package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/configs"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/log"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrNoSubject    = errors.New("token has no subject")
)

// Session is the immutable snapshot handed to anything that needs to know
// who the caller is. The role inside is the cached one; privileged
// operations re-check the source of truth before mutating.
type Session struct {
	UserID string
	Email  string
	Token  string
	Role   string
}

// Client talks to the external identity provider. Credentials never touch
// this process beyond pass-through.
type Client interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string) error
	SignOut(ctx context.Context, token string) error
	SessionFromToken(token string) (*Session, error)
}

type httpAuth struct {
	baseURL    string
	jwtSecret  string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(cfg configs.AuthConfig) Client {
	return &httpAuth{
		baseURL:    cfg.BaseURL,
		jwtSecret:  cfg.JWTSecret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log.Logger("auth"),
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (a *httpAuth) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var out tokenResponse
	err := a.post(ctx, "/token?grant_type=password", "", credentials{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, ErrInvalidToken
	}
	return &Session{
		UserID: out.User.ID,
		Email:  out.User.Email,
		Token:  out.AccessToken,
	}, nil
}

func (a *httpAuth) SignUp(ctx context.Context, email, password string) error {
	return a.post(ctx, "/signup", "", credentials{Email: email, Password: password}, nil)
}

func (a *httpAuth) SignOut(ctx context.Context, token string) error {
	return a.post(ctx, "/logout", token, nil, nil)
}

// SessionFromToken rebuilds a session from a bearer token presented on an
// API request. The signature is verified against the provider's shared
// secret; the subject claim is the user id.
func (a *httpAuth) SessionFromToken(token string) (*Session, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(a.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrNoSubject
	}
	email, _ := claims["email"].(string)
	return &Session{UserID: sub, Email: email, Token: token}, nil
}

func (a *httpAuth) post(ctx context.Context, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var parsed struct {
			Message          string `json:"message"`
			ErrorDescription string `json:"error_description"`
		}
		msg := string(data)
		if err := json.Unmarshal(data, &parsed); err == nil {
			if parsed.Message != "" {
				msg = parsed.Message
			} else if parsed.ErrorDescription != "" {
				msg = parsed.ErrorDescription
			}
		}
		a.logger.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("auth provider rejected request")
		return fmt.Errorf("auth provider: %s", msg)
	}
	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}

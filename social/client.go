package social

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sentinel errors for the login flow.
var (
	// ErrLoginRequired means the saved session was rejected and a fresh
	// login with credentials is needed.
	ErrLoginRequired = errors.New("social: login required")

	// ErrChallengeRequired means the account triggered a verification
	// challenge that cannot be completed non-interactively.
	ErrChallengeRequired = errors.New("social: challenge required")

	// ErrNotLoggedIn means a posting call was made before Login.
	ErrNotLoggedIn = errors.New("social: not logged in")
)

// Provider is the posting backend. The HTTP provider talks to the real
// API; tests substitute their own.
type Provider interface {
	// Login authenticates, reusing a saved session when one is valid.
	Login(ctx context.Context) error

	// PostPhoto uploads the image with the caption and returns the
	// created media ID.
	PostPhoto(ctx context.Context, imagePath, caption string) (string, error)

	// LoggedIn reports whether the provider holds a valid session.
	LoggedIn() bool
}

// ClientConfig configures the HTTP posting client.
type ClientConfig struct {
	// Username and Password are the account credentials.
	Username string
	Password string

	// BaseURL is the API endpoint. Required.
	BaseURL string

	// Sessions persists login state between runs. Optional; without it
	// every Login hits the password endpoint.
	Sessions *SessionStore

	// HTTPClient overrides the default client. Optional.
	HTTPClient *http.Client

	// Timeout applies when HTTPClient is nil. Defaults to 60 seconds.
	Timeout time.Duration
}

// Client posts photos through the HTTP API. It implements Provider.
type Client struct {
	cfg     ClientConfig
	http    *http.Client
	logger  *zap.Logger
	session *Session
}

// NewClient creates an HTTP posting client.
func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 60 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{cfg: cfg, http: httpClient, logger: logger}
}

// LoggedIn reports whether the client holds a session.
func (c *Client) LoggedIn() bool {
	return c.session != nil && c.session.Token != ""
}

// Login authenticates against the API. A saved session is tried first;
// when it no longer works the client falls back to a credential login
// and saves the new session.
func (c *Client) Login(ctx context.Context) error {
	if c.cfg.Username == "" || c.cfg.Password == "" {
		return fmt.Errorf("%w: missing credentials", ErrLoginRequired)
	}

	if c.cfg.Sessions != nil {
		session, err := c.cfg.Sessions.Load()
		switch {
		case err == nil && session.Username == c.cfg.Username:
			if c.verifySession(ctx, session) {
				c.session = session
				c.logger.Info("logged in with saved session",
					zap.String("username", c.cfg.Username))
				return nil
			}
			c.logger.Warn("saved session rejected, retrying with credentials")
		case errors.Is(err, ErrNoSession):
			// First run, nothing saved yet.
		case err != nil:
			c.logger.Warn("could not load saved session", zap.Error(err))
		}
	}

	session, err := c.passwordLogin(ctx)
	if err != nil {
		return err
	}
	c.session = session

	if c.cfg.Sessions != nil {
		if err := c.cfg.Sessions.Save(session); err != nil {
			c.logger.Warn("could not save session", zap.Error(err))
		}
	}
	c.logger.Info("logged in", zap.String("username", c.cfg.Username))
	return nil
}

// verifySession checks a saved session against the account endpoint.
func (c *Client) verifySession(ctx context.Context, session *Session) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/accounts/current", nil)
	if err != nil {
		return false
	}
	c.authorize(req, session)

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

// passwordLogin performs a fresh credential login.
func (c *Client) passwordLogin(ctx context.Context) (*Session, error) {
	deviceID := uuid.NewString()
	body, err := json.Marshal(map[string]string{
		"username":  c.cfg.Username,
		"password":  c.cfg.Password,
		"device_id": deviceID,
	})
	if err != nil {
		return nil, fmt.Errorf("social: marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/accounts/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("social: build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("social: login request: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Token     string `json:"token"`
		Status    string `json:"status"`
		Message   string `json:"message"`
		Challenge bool   `json:"challenge_required"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("social: decode login response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK && result.Token != "":
		return &Session{
			Username: c.cfg.Username,
			DeviceID: deviceID,
			Token:    result.Token,
		}, nil
	case result.Challenge:
		return nil, fmt.Errorf("%w: %s", ErrChallengeRequired, result.Message)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", ErrLoginRequired, result.Message)
	default:
		return nil, fmt.Errorf("social: login failed with status %d: %s", resp.StatusCode, result.Message)
	}
}

// PostPhoto uploads the image and configures it as a feed post.
func (c *Client) PostPhoto(ctx context.Context, imagePath, caption string) (string, error) {
	if !c.LoggedIn() {
		return "", ErrNotLoggedIn
	}

	uploadID, err := c.upload(ctx, imagePath)
	if err != nil {
		return "", err
	}
	return c.configure(ctx, uploadID, caption)
}

// upload sends the image bytes as a multipart request.
func (c *Client) upload(ctx context.Context, imagePath string) (string, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("social: open upload image: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("photo", filepath.Base(imagePath))
	if err != nil {
		return "", fmt.Errorf("social: build multipart body: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("social: read upload image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("social: finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/media/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("social: build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req, c.session)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("social: upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.session = nil
		return "", ErrLoginRequired
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("social: upload failed with status %d", resp.StatusCode)
	}

	var result struct {
		UploadID string `json:"upload_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("social: decode upload response: %w", err)
	}
	if result.UploadID == "" {
		return "", fmt.Errorf("social: upload response missing upload_id")
	}
	return result.UploadID, nil
}

// configure turns an uploaded image into a published feed post.
func (c *Client) configure(ctx context.Context, uploadID, caption string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"upload_id": uploadID,
		"caption":   caption,
	})
	if err != nil {
		return "", fmt.Errorf("social: marshal configure request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/media/configure", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("social: build configure request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req, c.session)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("social: configure request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.session = nil
		return "", ErrLoginRequired
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("social: configure failed with status %d", resp.StatusCode)
	}

	var result struct {
		MediaID string `json:"media_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("social: decode configure response: %w", err)
	}
	return result.MediaID, nil
}

// authorize attaches the session token and device ID to a request.
func (c *Client) authorize(req *http.Request, session *Session) {
	if session == nil {
		return
	}
	req.Header.Set("Authorization", "Bearer "+session.Token)
	req.Header.Set("X-Device-ID", session.DeviceID)
}

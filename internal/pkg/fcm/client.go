package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const messagingScope = "https://www.googleapis.com/auth/firebase.messaging"

// Client sends pushes through the FCM HTTP v1 API, authenticated with a
// service-account token source. A client built without credentials is
// disabled: Send logs and reports failure without calling out.
type Client struct {
	httpClient *http.Client
	projectID  string
	timeout    time.Duration
}

// NewClient builds a push client from raw service-account JSON. Empty JSON
// yields a disabled client rather than an error so local setups can run
// without Firebase credentials.
func NewClient(serviceAccountJSON string, timeout time.Duration) (*Client, error) {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	if serviceAccountJSON == "" {
		slog.Warn("FCM service account not configured, push delivery disabled")
		return &Client{timeout: timeout}, nil
	}

	creds, err := google.CredentialsFromJSON(context.Background(), []byte(serviceAccountJSON), messagingScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FCM service account: %w", err)
	}
	if creds.ProjectID == "" {
		return nil, fmt.Errorf("FCM service account has no project_id")
	}

	httpClient := oauth2.NewClient(context.Background(), creds.TokenSource)
	httpClient.Timeout = timeout

	return &Client{
		httpClient: httpClient,
		projectID:  creds.ProjectID,
		timeout:    timeout,
	}, nil
}

// Enabled reports whether the client has credentials to deliver with.
func (c *Client) Enabled() bool {
	return c.httpClient != nil
}

type message struct {
	Token        string            `json:"token"`
	Notification *messageBody      `json:"notification,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
}

type messageBody struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Send delivers one push to one device token. Transport errors are returned
// so the caller can log them; callers must never propagate them further than
// the component that attempted the send.
func (c *Client) Send(ctx context.Context, fcmToken string, title, body string, data map[string]string) error {
	if !c.Enabled() {
		return fmt.Errorf("fcm client is disabled (no service account configured)")
	}

	url := fmt.Sprintf("https://fcm.googleapis.com/v1/projects/%s/messages:send", c.projectID)

	payload := struct {
		Message message `json:"message"`
	}{
		Message: message{
			Token:        fcmToken,
			Notification: &messageBody{Title: title, Body: body},
			Data:         data,
		},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode FCM payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to build FCM request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("FCM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("FCM returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// EmailClient sends alert emails through an HTTP email API.
type EmailClient struct {
	endpoint  string
	apiKey    string
	fromEmail string
	client    *http.Client
}

// NewEmailClient returns a client for the email API at endpoint. An empty
// endpoint or API key disables email dispatch.
func NewEmailClient(endpoint, apiKey, fromEmail string) *EmailClient {
	if endpoint == "" || apiKey == "" {
		return nil
	}

	return &EmailClient{
		endpoint:  endpoint,
		apiKey:    apiKey,
		fromEmail: fromEmail,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

func (c *EmailClient) Send(to, subject, message string) error {
	payload, err := json.Marshal(emailRequest{
		From:    c.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("email API returned status %d", resp.StatusCode)
	}

	return nil
}

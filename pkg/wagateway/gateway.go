// Package wagateway is the HTTP client for the external WhatsApp gateway.
// The gateway owns the socket session; this service only asks it to send
// messages and receives inbound traffic through a webhook.
package wagateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the WhatsApp gateway API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new gateway client with the given base URL and token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{},
	}
}

// SetBaseURL overrides the gateway URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// SendMessage sends a text message to a chat, tagging the given JIDs.
func (c *Client) SendMessage(chatJID, text string, mentions []string) error {
	payload := SendMessageRequest{
		ChatJID:  chatJID,
		Text:     text,
		Mentions: mentions,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/messages", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gateway sendMessage error %d: %s", resp.StatusCode, string(raw))
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("gateway sendMessage failed: %s", apiResp.Description)
	}

	return nil
}

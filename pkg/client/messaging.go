package client

import (
	"context"
	"fmt"
	"time"

	"zapagenda/pkg/sanitizer"
)

// MessagingClient delivers outbound WhatsApp texts through the configured
// gateway.
type MessagingClient struct {
	httpClient *HttpClient
}

func NewMessagingClient(baseURL, token string, timeout time.Duration) *MessagingClient {
	hc := NewHttpClient(baseURL, timeout)
	if token != "" {
		hc.SetDefaultHeader("Authorization", "Bearer "+token)
	}
	return &MessagingClient{httpClient: hc}
}

type outboundMessage struct {
	Phone string `json:"telefone"`
	Text  string `json:"mensagem"`
}

func (c *MessagingClient) SendText(ctx context.Context, phone, text string) error {
	normalized := sanitizer.NormalizePhone(phone)
	if normalized == "" {
		return fmt.Errorf("messaging: invalid phone %q", phone)
	}

	resp, err := c.httpClient.POST(ctx, "/messages", outboundMessage{
		Phone: normalized,
		Text:  text,
	})
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("messaging: send failed: status %d: %s", resp.StatusCode, GetErrorMessage(resp))
	}
	return nil
}

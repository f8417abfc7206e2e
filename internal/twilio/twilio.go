// Package twilio wraps the Twilio REST API used to reply to SMS and WhatsApp
// users of Healing Guru, and validates the signature of inbound webhooks.
package twilio

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"

	twiliogo "github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Constants for Twilio addressing and webhook validation
const (
	// WhatsAppPrefix marks a Twilio address as a WhatsApp sender or recipient.
	WhatsAppPrefix = "whatsapp:"
	// SignatureHeader carries the request signature on inbound webhooks.
	SignatureHeader = "X-Twilio-Signature"
)

// Sender is implemented by the real client and the mock.
type Sender interface {
	SendMessage(ctx context.Context, to string, body string) error
}

// Opts holds configuration options for the Twilio client.
type Opts struct {
	AccountSID string
	AuthToken  string
	From       string
	WebhookURL string // public URL of the inbound webhook, used for signature checks
}

// Option defines a configuration option for the Twilio client.
type Option func(*Opts)

// WithAccountSID sets the account SID.
func WithAccountSID(sid string) Option {
	return func(o *Opts) { o.AccountSID = sid }
}

// WithAuthToken sets the auth token used for REST calls.
func WithAuthToken(token string) Option {
	return func(o *Opts) { o.AuthToken = token }
}

// WithFromNumber sets the sending number. Prefix it with "whatsapp:" to reply
// over WhatsApp instead of SMS.
func WithFromNumber(from string) Option {
	return func(o *Opts) { o.From = from }
}

// WithWebhookURL sets the public webhook URL Twilio signs requests against.
func WithWebhookURL(u string) Option {
	return func(o *Opts) { o.WebhookURL = u }
}

// Client wraps the Twilio REST client.
type Client struct {
	rest      *twiliogo.RestClient
	from      string
	validator *RequestValidator
}

// NewClient creates a Twilio client. Options win over the TWILIO_* environment variables.
func NewClient(opts ...Option) (*Client, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.AccountSID == "" {
		cfg.AccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	}
	if cfg.AuthToken == "" {
		cfg.AuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	}
	if cfg.From == "" {
		cfg.From = os.Getenv("TWILIO_FROM_NUMBER")
	}
	if cfg.WebhookURL == "" {
		cfg.WebhookURL = os.Getenv("TWILIO_WEBHOOK_URL")
	}
	slog.Debug("Twilio client config loaded",
		"AccountSID_set", cfg.AccountSID != "",
		"AuthToken_set", cfg.AuthToken != "",
		"From_set", cfg.From != "",
		"WebhookURL_set", cfg.WebhookURL != "")

	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return nil, fmt.Errorf("account SID and auth token must be provided")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("from number must be provided")
	}

	rest := twiliogo.NewRestClientWithParams(twiliogo.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &Client{
		rest:      rest,
		from:      cfg.From,
		validator: NewRequestValidator(cfg.AuthToken, cfg.WebhookURL),
	}, nil
}

// RequestValidator returns the webhook validator built from the client's auth token.
func (c *Client) RequestValidator() *RequestValidator {
	return c.validator
}

// SendMessage sends body to the E.164 number to over the configured channel.
func (c *Client) SendMessage(ctx context.Context, to string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(addressFor(c.from, to))
	params.SetFrom(c.from)
	params.SetBody(body)

	resp, err := c.rest.Api.CreateMessage(params)
	if err != nil {
		slog.Error("Twilio SendMessage failed", "to", to, "error", err)
		return fmt.Errorf("failed to send message to %s: %w", to, err)
	}
	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	slog.Debug("Twilio message sent", "to", to, "sid", sid)
	return nil
}

// addressFor gives to the same channel prefix as the sending number.
func addressFor(from, to string) string {
	if strings.HasPrefix(from, WhatsAppPrefix) && !strings.HasPrefix(to, WhatsAppPrefix) {
		return WhatsAppPrefix + to
	}
	return to
}

// RequestValidator checks the X-Twilio-Signature of inbound webhooks against
// the public URL Twilio was configured to call.
type RequestValidator struct {
	validator  twilioclient.RequestValidator
	webhookURL string
}

// NewRequestValidator returns a validator for webhookURL. An empty URL
// disables validation.
func NewRequestValidator(authToken, webhookURL string) *RequestValidator {
	return &RequestValidator{
		validator:  twilioclient.NewRequestValidator(authToken),
		webhookURL: webhookURL,
	}
}

// Enabled reports whether requests are actually checked.
func (v *RequestValidator) Enabled() bool {
	return v != nil && v.webhookURL != ""
}

// ValidateRequest parses the form of r and reports whether its signature matches.
func (v *RequestValidator) ValidateRequest(r *http.Request) bool {
	if !v.Enabled() {
		return true
	}
	if err := r.ParseForm(); err != nil {
		slog.Warn("RequestValidator.ValidateRequest: failed to parse form", "error", err)
		return false
	}
	params := make(map[string]string, len(r.PostForm))
	for k, vals := range r.PostForm {
		if len(vals) > 0 {
			params[k] = vals[0]
		}
	}
	return v.validator.Validate(v.webhookURL, params, r.Header.Get(SignatureHeader))
}

// MockClient records sent messages instead of calling Twilio.
type MockClient struct {
	mu           sync.Mutex
	SentMessages []SentMessage
	// Err, when set, is returned by every SendMessage call.
	Err error
}

// SentMessage is one message captured by MockClient.
type SentMessage struct {
	To   string
	Body string
}

// NewMockClient creates an empty MockClient.
func NewMockClient() *MockClient {
	return &MockClient{SentMessages: []SentMessage{}}
}

// SendMessage implements Sender.
func (m *MockClient) SendMessage(ctx context.Context, to string, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.SentMessages = append(m.SentMessages, SentMessage{To: to, Body: body})
	return nil
}

// Sent returns a copy of the captured messages.
func (m *MockClient) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentMessage(nil), m.SentMessages...)
}

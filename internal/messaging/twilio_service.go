package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/twilio"
)

// emptyTwiML acknowledges a webhook without an inline reply; replies go out
// through the REST API once the flow has run.
const emptyTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

// TwilioService implements Service for Twilio SMS and WhatsApp numbers.
type TwilioService struct {
	client    twilio.Sender // real Twilio client or MockClient
	validator *twilio.RequestValidator
	responses chan models.InboundMessage
	mu        sync.RWMutex
	stopped   bool
}

// TwilioOption configures a TwilioService.
type TwilioOption func(*TwilioService)

// WithRequestValidator enables webhook signature checks.
func WithRequestValidator(v *twilio.RequestValidator) TwilioOption {
	return func(s *TwilioService) { s.validator = v }
}

// NewTwilioService creates a TwilioService sending through client.
func NewTwilioService(client twilio.Sender, opts ...TwilioOption) *TwilioService {
	s := &TwilioService{
		client:    client,
		responses: make(chan models.InboundMessage, DefaultChannelBufferSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	slog.Debug("TwilioService created", "signature_validation", s.validator.Enabled())
	return s
}

// ValidateAndCanonicalizeRecipient reduces a Twilio address to "+<digits>".
func (s *TwilioService) ValidateAndCanonicalizeRecipient(recipient string) (string, error) {
	return canonicalPhone(recipient)
}

// Start is a no-op; inbound messages arrive through WebhookHandler.
func (s *TwilioService) Start(ctx context.Context) error {
	return nil
}

// Stop closes the inbound channel. It is safe to call more than once.
func (s *TwilioService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil
	}
	s.stopped = true
	close(s.responses)
	slog.Info("TwilioService stopped")
	return nil
}

// SendMessage sends body to the canonical form of to.
func (s *TwilioService) SendMessage(ctx context.Context, to string, body string) error {
	s.mu.RLock()
	stopped := s.stopped
	s.mu.RUnlock()
	if stopped {
		return ErrServiceStopped
	}

	canonicalTo, err := s.ValidateAndCanonicalizeRecipient(to)
	if err != nil {
		slog.Error("TwilioService SendMessage validation error", "error", err, "to", to)
		return err
	}
	if err := s.client.SendMessage(ctx, canonicalTo, body); err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	return nil
}

// Responses returns the channel of inbound webhook messages.
func (s *TwilioService) Responses() <-chan models.InboundMessage {
	return s.responses
}

// WebhookHandler handles inbound Twilio webhook requests (POST form) and
// emits them on the Responses channel.
func (s *TwilioService) WebhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !s.validator.ValidateRequest(r) {
		slog.Warn("TwilioService.WebhookHandler: invalid signature", "remote", r.RemoteAddr)
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.Error("Failed to parse Twilio webhook form", "error", err)
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	from := r.FormValue("From")
	body := r.FormValue("Body")
	if from == "" || body == "" {
		slog.Warn("Twilio webhook missing fields", "from_set", from != "", "body_set", body != "")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	s.safeEmitResponse(models.InboundMessage{
		ID:      r.FormValue("MessageSid"),
		Channel: ChannelTwilio,
		From:    from,
		Body:    body,
		Time:    time.Now().Unix(),
	})

	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, emptyTwiML)
}

// safeEmitResponse pushes msg unless the service is stopped or the buffer stays full.
func (s *TwilioService) safeEmitResponse(msg models.InboundMessage) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stopped {
		slog.Warn("TwilioService dropping inbound message (service stopped)", "from", msg.From)
		return
	}
	select {
	case s.responses <- msg:
		slog.Debug("TwilioService emitted inbound message", "from", msg.From, "id", msg.ID)
	case <-time.After(DefaultChannelTimeout):
		slog.Warn("TwilioService responses channel blocked, dropping message", "from", msg.From)
	}
}

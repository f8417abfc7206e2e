// Package messaging connects Healing Guru to chat channels. Each channel is a
// Service that emits inbound messages and sends replies; a ChatBridge feeds
// those messages through the conversation flow.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
)

// Constants for channel services
const (
	// DefaultChannelBufferSize defines the buffer size of the inbound channel
	DefaultChannelBufferSize = 100
	// DefaultChannelTimeout bounds how long an inbound message waits for buffer space
	DefaultChannelTimeout = 1 * time.Second
	// MinPhoneDigits is the shortest accepted phone number
	MinPhoneDigits = 6
)

// Channel names used in user ids and metrics.
const (
	ChannelTwilio   = "twilio"
	ChannelWhatsApp = "whatsapp"
)

// ErrServiceStopped is returned when sending through a stopped service.
var ErrServiceStopped = errors.New("messaging service stopped")

var phoneNumberRegex = regexp.MustCompile(`[^0-9]`)

// Service defines a pluggable chat channel.
type Service interface {
	// ValidateAndCanonicalizeRecipient validates and canonicalizes a recipient identifier.
	// Returns the canonicalized recipient and an error if validation fails.
	ValidateAndCanonicalizeRecipient(recipient string) (string, error)

	// SendMessage sends a message to a recipient.
	SendMessage(ctx context.Context, to string, body string) error

	// Start begins any background processing (e.g., registering event handlers).
	Start(ctx context.Context) error

	// Stop stops background processing and closes the inbound channel.
	Stop() error

	// Responses returns a channel of incoming user messages.
	Responses() <-chan models.InboundMessage
}

// canonicalPhone reduces recipient to "+<digits>". Channel prefixes such as
// "whatsapp:" and any punctuation are dropped.
func canonicalPhone(recipient string) (string, error) {
	if recipient == "" {
		return "", fmt.Errorf("recipient cannot be empty")
	}
	digits := phoneNumberRegex.ReplaceAllString(recipient, "")
	if digits == "" {
		return "", fmt.Errorf("invalid phone number: no digits found in recipient %q", recipient)
	}
	if len(digits) < MinPhoneDigits {
		return "", fmt.Errorf("invalid phone number: %q is too short (minimum %d digits required)", digits, MinPhoneDigits)
	}
	canonical := "+" + digits
	if canonical != recipient {
		slog.Debug("messaging canonicalized recipient", "original", recipient, "canonical", canonical)
	}
	return canonical, nil
}

package messaging

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/store"
)

// Replies sent when a chat message cannot be answered normally.
const (
	ApologyMessage = "I'm sorry, something went wrong on my side. Could you send that again?"
	TooLongMessage = "That's a lot to hold in one message. Could you share it in smaller pieces?"
)

// DefaultSendTimeout bounds one reply.
const DefaultSendTimeout = 30 * time.Second

// Responder produces the reply for one chat turn. *flow.ConversationFlow satisfies it.
type Responder interface {
	Respond(ctx context.Context, userID, message string) (models.ChatReply, error)
}

// ChannelRecorder counts channel traffic. *metrics.Metrics satisfies it.
type ChannelRecorder interface {
	RecordChannelMessage(channel, direction string)
}

type nopChannelRecorder struct{}

func (nopChannelRecorder) RecordChannelMessage(string, string) {}

// ChatBridge answers every inbound message of a Service through a Responder.
type ChatBridge struct {
	svc         Service
	responder   Responder
	dedup       store.DedupRepo
	recorder    ChannelRecorder
	sendTimeout time.Duration
}

// BridgeOption configures a ChatBridge.
type BridgeOption func(*ChatBridge)

// WithDedup drops redelivered messages using repo.
func WithDedup(repo store.DedupRepo) BridgeOption {
	return func(b *ChatBridge) { b.dedup = repo }
}

// WithChannelRecorder sets the traffic recorder.
func WithChannelRecorder(r ChannelRecorder) BridgeOption {
	return func(b *ChatBridge) {
		if r != nil {
			b.recorder = r
		}
	}
}

// WithSendTimeout overrides DefaultSendTimeout.
func WithSendTimeout(d time.Duration) BridgeOption {
	return func(b *ChatBridge) {
		if d > 0 {
			b.sendTimeout = d
		}
	}
}

// NewChatBridge creates a bridge between svc and responder.
func NewChatBridge(svc Service, responder Responder, opts ...BridgeOption) *ChatBridge {
	b := &ChatBridge{
		svc:         svc,
		responder:   responder,
		recorder:    nopChannelRecorder{},
		sendTimeout: DefaultSendTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run handles inbound messages in arrival order until ctx is cancelled or
// the service closes its channel.
func (b *ChatBridge) Run(ctx context.Context) {
	slog.Debug("ChatBridge.Run: started")
	for {
		select {
		case <-ctx.Done():
			slog.Debug("ChatBridge.Run: context cancelled")
			return
		case msg, ok := <-b.svc.Responses():
			if !ok {
				slog.Debug("ChatBridge.Run: channel closed")
				return
			}
			b.Handle(ctx, msg)
		}
	}
}

// Handle answers a single inbound message.
func (b *ChatBridge) Handle(ctx context.Context, msg models.InboundMessage) {
	from, err := b.svc.ValidateAndCanonicalizeRecipient(msg.From)
	if err != nil {
		slog.Warn("ChatBridge.Handle: dropping message from invalid sender", "channel", msg.Channel, "error", err)
		return
	}
	userID := msg.Channel + ":" + from
	b.recorder.RecordChannelMessage(msg.Channel, "inbound")

	if msg.ID != "" && b.dedup != nil {
		fresh, err := b.dedup.RecordInbound(ctx, msg.ID, userID)
		if err != nil {
			slog.Warn("ChatBridge.Handle: dedup check failed, processing anyway", "user_id", userID, "error", err)
		} else if !fresh {
			slog.Debug("ChatBridge.Handle: duplicate delivery ignored", "user_id", userID, "message_id", msg.ID)
			return
		}
	}

	text := b.replyText(ctx, userID, msg.Body)

	sendCtx, cancel := context.WithTimeout(ctx, b.sendTimeout)
	defer cancel()
	if err := b.svc.SendMessage(sendCtx, from, text); err != nil {
		slog.Error("ChatBridge.Handle: failed to send reply", "user_id", userID, "error", err)
		return
	}
	b.recorder.RecordChannelMessage(msg.Channel, "outbound")

	if msg.ID != "" && b.dedup != nil {
		if err := b.dedup.MarkProcessed(ctx, msg.ID); err != nil {
			slog.Warn("ChatBridge.Handle: failed to mark message processed", "message_id", msg.ID, "error", err)
		}
	}
}

func (b *ChatBridge) replyText(ctx context.Context, userID, body string) string {
	reply, err := b.responder.Respond(ctx, userID, body)
	switch {
	case err == nil:
		return reply.Message
	case errors.Is(err, models.ErrMessageTooLong):
		return TooLongMessage
	default:
		slog.Error("ChatBridge.Handle: respond failed", "user_id", userID, "error", err)
		return ApologyMessage
	}
}

package messaging

import (
	"context"
	"testing"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/whatsapp"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"google.golang.org/protobuf/proto"
)

// Ensure WhatsAppService implements Service interface
func TestWhatsAppService_ImplementsService(t *testing.T) {
	var _ Service = (*WhatsAppService)(nil)
}

func TestWhatsAppService_SendMessageCanonicalizes(t *testing.T) {
	mockClient := whatsapp.NewMockClient()
	svc := NewWhatsAppService(mockClient)
	if err := svc.SendMessage(context.Background(), "+1 (555) 123-4567", "hello"); err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}
	sent := mockClient.Sent()
	if len(sent) != 1 || sent[0].To != "+15551234567" {
		t.Errorf("unexpected sent messages %+v", sent)
	}
	if err := svc.SendMessage(context.Background(), "123", "hello"); err == nil {
		t.Error("expected error for short number")
	}
}

func TestWhatsAppService_StartStop(t *testing.T) {
	svc := NewWhatsAppService(whatsapp.NewMockClient())
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if err := svc.Stop(); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
	if err := svc.Stop(); err != nil {
		t.Fatalf("second Stop returned error: %v", err)
	}
	if msg, ok := <-svc.Responses(); ok {
		t.Errorf("expected responses channel closed, got value %v", msg)
	}
	if err := svc.SendMessage(context.Background(), "+15551234567", "hi"); err != ErrServiceStopped {
		t.Errorf("expected ErrServiceStopped, got %v", err)
	}
}

func newMessageEvent(sender, text string, fromMe bool) *events.Message {
	evt := &events.Message{
		Info: types.MessageInfo{
			MessageSource: types.MessageSource{
				Sender:   types.NewJID(sender, types.DefaultUserServer),
				IsFromMe: fromMe,
			},
			ID: "ABC123",
		},
		Message: &waE2E.Message{Conversation: proto.String(text)},
	}
	return evt
}

func TestWhatsAppService_HandleIncomingMessage(t *testing.T) {
	svc := NewWhatsAppService(whatsapp.NewMockClient())

	svc.handleIncomingMessage(newMessageEvent("15551234567", "I feel anxious", false))
	select {
	case msg := <-svc.Responses():
		if msg.From != "+15551234567" || msg.Body != "I feel anxious" || msg.Channel != ChannelWhatsApp || msg.ID != "ABC123" {
			t.Errorf("unexpected inbound message %+v", msg)
		}
	default:
		t.Fatal("expected an inbound message")
	}

	svc.handleIncomingMessage(newMessageEvent("15551234567", "echo", true))
	svc.handleIncomingMessage(newMessageEvent("15551234567", "", false))
	select {
	case msg := <-svc.Responses():
		t.Errorf("expected own and empty messages to be ignored, got %+v", msg)
	default:
	}
}

func TestWhatsAppService_ExtendedText(t *testing.T) {
	evt := &events.Message{Message: &waE2E.Message{
		ExtendedTextMessage: &waE2E.ExtendedTextMessage{Text: proto.String("reply with quote")},
	}}
	if got := textOf(evt); got != "reply with quote" {
		t.Errorf("textOf() = %q", got)
	}
	if got := textOf(&events.Message{}); got != "" {
		t.Errorf("textOf(nil message) = %q", got)
	}
}

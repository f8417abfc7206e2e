package api

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/messaging"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
)

// fakeService is a messaging.Service whose Start can be made to fail.
type fakeService struct {
	startErr  error
	responses chan models.InboundMessage
	mu        sync.Mutex
	started   bool
	stopped   bool
}

func newFakeService(startErr error) *fakeService {
	return &fakeService{startErr: startErr, responses: make(chan models.InboundMessage)}
}

func (f *fakeService) ValidateAndCanonicalizeRecipient(r string) (string, error) { return r, nil }
func (f *fakeService) SendMessage(context.Context, string, string) error       { return nil }
func (f *fakeService) Responses() <-chan models.InboundMessage                 { return f.responses }

func (f *fakeService) Start(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	return nil
}

func (f *fakeService) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.stopped {
		f.stopped = true
		close(f.responses)
	}
	return nil
}

func (f *fakeService) wasStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

type echoResponder struct{}

func (echoResponder) Respond(_ context.Context, _ string, msg string) (models.ChatReply, error) {
	return models.ChatReply{Message: msg}, nil
}

func TestStartBridgesStopsStartedServicesOnFailure(t *testing.T) {
	first := newFakeService(nil)
	second := newFakeService(errors.New("login failed"))

	bridges, err := startBridges(context.Background(), []messaging.Service{first, second}, echoResponder{})
	require.Error(t, err)
	assert.Nil(t, bridges)
	assert.Contains(t, err.Error(), "login failed")
	assert.True(t, first.wasStopped(), "already started service must be stopped")
	assert.False(t, second.wasStopped())
}

func TestStartBridgesRunsUntilServicesStop(t *testing.T) {
	a, b := newFakeService(nil), newFakeService(nil)
	bridges, err := startBridges(context.Background(), []messaging.Service{a, b}, echoResponder{})
	require.NoError(t, err)

	require.NoError(t, a.Stop())
	require.NoError(t, b.Stop())
	bridges.Wait()
	assert.True(t, a.started && b.started)
}

// Package api provides the HTTP server of Healing Guru and the Run entry
// point that wires storage, the conversation flow, check-ins, metrics and
// the optional chat channels together.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/checkin"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/flow"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/guru"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/messaging"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/metrics"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/store"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/twilio"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/whatsapp"
)

// Server configuration constants
const (
	// DefaultAddr is the default HTTP listen address
	DefaultAddr = ":5002"
	// DefaultShutdownTimeout bounds graceful shutdown
	DefaultShutdownTimeout = 10 * time.Second
	// DefaultReadTimeout and DefaultWriteTimeout bound a single request
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	// DefaultIdleTimeout bounds keep-alive connections
	DefaultIdleTimeout = 60 * time.Second
	// ProgressListLimit is the number of progress entries returned by /api/progress
	ProgressListLimit = 20
)

// Opts holds configuration for the server and Run.
type Opts struct {
	Addr           string
	CookieSecure   bool
	HistoryLimit   int
	EnableTwilio   bool
	EnableWhatsApp bool
	Metrics        *metrics.Metrics
	Picker         guru.Picker
	TwilioWebhook  http.Handler
}

// Option defines a configuration option for the API server.
type Option func(*Opts)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(o *Opts) { o.Addr = addr }
}

// WithCookieSecure marks the session cookie Secure.
func WithCookieSecure(secure bool) Option {
	return func(o *Opts) { o.CookieSecure = secure }
}

// WithHistoryLimit sets how many turns the flow loads per chat message.
func WithHistoryLimit(n int) Option {
	return func(o *Opts) { o.HistoryLimit = n }
}

// WithTwilio enables the Twilio channel in Run.
func WithTwilio() Option {
	return func(o *Opts) { o.EnableTwilio = true }
}

// WithWhatsApp enables the whatsmeow channel in Run.
func WithWhatsApp() Option {
	return func(o *Opts) { o.EnableWhatsApp = true }
}

// WithMetrics instruments handlers and serves /metrics from m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Opts) { o.Metrics = m }
}

// WithPicker sets the picker used for affirmation lookups.
func WithPicker(p guru.Picker) Option {
	return func(o *Opts) { o.Picker = p }
}

// WithTwilioWebhook mounts h at /webhooks/twilio.
func WithTwilioWebhook(h http.Handler) Option {
	return func(o *Opts) { o.TwilioWebhook = h }
}

// Server serves the Healing Guru HTTP API.
type Server struct {
	st            store.Store
	flow          *flow.ConversationFlow
	checkins      *checkin.Service
	metrics       *metrics.Metrics
	picker        guru.Picker
	cookieSecure  bool
	twilioWebhook http.Handler
}

// NewServer creates a Server over the given store, flow and check-in service.
func NewServer(st store.Store, fl *flow.ConversationFlow, checkins *checkin.Service, opts ...Option) *Server {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Picker == nil {
		cfg.Picker = guru.RandomPicker{}
	}
	return &Server{
		st:            st,
		flow:          fl,
		checkins:      checkins,
		metrics:       cfg.Metrics,
		picker:        cfg.Picker,
		cookieSecure:  cfg.CookieSecure,
		twilioWebhook: cfg.TwilioWebhook,
	}
}

// Handler returns the routed, instrumented handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.handle(mux, "/health", "health", s.healthHandler)
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}

	s.handle(mux, "/api/chat", "chat", s.chatHandler)
	s.handle(mux, "/api/history", "history", s.historyHandler)
	s.handle(mux, "/api/insights", "insights", s.insightsHandler)
	s.handle(mux, "/api/get_tool", "get_tool", s.getToolHandler)
	s.handle(mux, "/api/affirmation", "affirmation", s.affirmationHandler)

	s.handle(mux, "/api/checkin", "checkin", s.checkinHandler)
	s.handle(mux, "/api/patterns", "patterns", s.patternsHandler)
	s.handle(mux, "/api/log_tool", "log_tool", s.logToolHandler)
	s.handle(mux, "/api/progress", "progress", s.progressHandler)
	s.handle(mux, "/api/affirmations/{emotion}", "affirmations", s.affirmationsHandler)
	s.handle(mux, "/api/tools", "tools", s.toolsHandler)

	s.handle(mux, "/api/journal", "journal", s.journalHandler)
	s.handle(mux, "/api/export", "export", s.exportHandler)
	s.handle(mux, "/api/account", "account", s.accountHandler)

	if s.twilioWebhook != nil {
		s.handle(mux, "/webhooks/twilio", "twilio_webhook", s.twilioWebhook.ServeHTTP)
	}
	return mux
}

func (s *Server) handle(mux *http.ServeMux, pattern, route string, h http.HandlerFunc) {
	mux.Handle(pattern, s.instrument(route, h))
}

// startBridges starts each service and runs a ChatBridge over it. When a
// service fails to start, the ones already running are stopped and their
// bridges drained before the error is returned.
func startBridges(ctx context.Context, services []messaging.Service, responder messaging.Responder, opts ...messaging.BridgeOption) (*sync.WaitGroup, error) {
	bridges := &sync.WaitGroup{}
	for i, svc := range services {
		if err := svc.Start(ctx); err != nil {
			for _, started := range services[:i] {
				if serr := started.Stop(); serr != nil {
					slog.Error("Run: failed to stop messaging service", "error", serr)
				}
			}
			bridges.Wait()
			return nil, fmt.Errorf("failed to start messaging service: %w", err)
		}
		bridge := messaging.NewChatBridge(svc, responder, opts...)
		bridges.Add(1)
		go func() {
			defer bridges.Done()
			bridge.Run(ctx)
		}()
	}
	return bridges, nil
}

// Run builds every module from the given options, serves HTTP and blocks
// until SIGINT or SIGTERM, then shuts down within DefaultShutdownTimeout.
func Run(storeOpts []store.Option, twilioOpts []twilio.Option, waOpts []whatsapp.Option, apiOpts []Option) error {
	cfg := Opts{Addr: DefaultAddr}
	for _, opt := range apiOpts {
		opt(&cfg)
	}

	st, err := store.New(storeOpts...)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			slog.Error("Run: failed to close store", "error", cerr)
		}
	}()

	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New()
	}
	fl := flow.NewConversationFlow(st,
		flow.WithRecorder(cfg.Metrics),
		flow.WithHistoryLimit(cfg.HistoryLimit),
	)
	checkins := checkin.NewService(st)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var services []messaging.Service
	if cfg.EnableTwilio {
		client, err := twilio.NewClient(twilioOpts...)
		if err != nil {
			return fmt.Errorf("failed to initialize Twilio client: %w", err)
		}
		svc := messaging.NewTwilioService(client, messaging.WithRequestValidator(client.RequestValidator()))
		cfg.TwilioWebhook = http.HandlerFunc(svc.WebhookHandler)
		services = append(services, svc)
		slog.Info("Run: Twilio channel enabled")
	}
	if cfg.EnableWhatsApp {
		client, err := whatsapp.NewClient(waOpts...)
		if err != nil {
			return fmt.Errorf("failed to initialize WhatsApp client: %w", err)
		}
		services = append(services, messaging.NewWhatsAppService(client))
		slog.Info("Run: WhatsApp channel enabled")
	}

	bridges, err := startBridges(ctx, services, fl,
		messaging.WithDedup(st),
		messaging.WithChannelRecorder(cfg.Metrics),
	)
	if err != nil {
		return err
	}

	server := NewServer(st, fl, checkins,
		WithCookieSecure(cfg.CookieSecure),
		WithMetrics(cfg.Metrics),
		WithPicker(cfg.Picker),
		WithTwilioWebhook(cfg.TwilioWebhook),
	)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: DefaultReadTimeout,
		ReadTimeout:       DefaultReadTimeout,
		WriteTimeout:      DefaultWriteTimeout,
		IdleTimeout:       DefaultIdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Healing Guru API listening", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("Run: shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			runErr = fmt.Errorf("http server failed: %w", err)
		}
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Run: HTTP shutdown failed", "error", err)
	}
	for _, svc := range services {
		if err := svc.Stop(); err != nil {
			slog.Error("Run: failed to stop messaging service", "error", err)
		}
	}
	bridges.Wait()
	slog.Info("Run: shutdown complete")
	return runErr
}

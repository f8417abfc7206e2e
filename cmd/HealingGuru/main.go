// Command HealingGuru serves the Healing Guru wellness chat API and, when
// configured, its Twilio and WhatsApp channels.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/api"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/flow"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/lockfile"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/store"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/twilio"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/util"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/whatsapp"
)

// Default configuration constants
const (
	// DefaultStateDir is the default directory for Healing Guru state data
	DefaultStateDir = "/var/lib/healing-guru"
	// DefaultDBFileName is the default SQLite database filename
	DefaultDBFileName = "healing_guru.db"
	// DefaultWhatsAppDBFileName is the default whatsmeow device store filename
	DefaultWhatsAppDBFileName = "whatsmeow.db"
	// DefaultLogLevel matches the verbose logging of development deployments
	DefaultLogLevel = "debug"
)

func main() {
	config := loadEnvironmentConfig()

	flags, err := parseCommandLineFlags(flag.CommandLine, os.Args[1:], config)
	if err != nil {
		os.Exit(2)
	}
	initializeLogger(flags.LogLevel)

	// File-backed databases get an exclusive lock on the state directory
	if needsStateLock(flags) {
		lock, err := lockfile.AcquireLock(flags.StateDir)
		if err != nil {
			var lockErr *lockfile.LockError
			if errors.As(err, &lockErr) {
				fmt.Fprintln(os.Stderr, lockErr.Error())
			}
			slog.Error("Failed to lock state directory", "error", err)
			os.Exit(1)
		}
		defer lock.Release()
	}

	// Build module options
	storeOpts := buildStoreOptions(flags)
	twilioOpts := buildTwilioOptions(flags)
	waOpts := buildWhatsAppOptions(flags)
	apiOpts := buildAPIOptions(flags)

	slog.Info("Bootstrapping Healing Guru with configured modules")
	slog.Debug("Final configuration",
		"state_dir", flags.StateDir,
		"dsn_type", dsnType(flags.DBDSN),
		"api_addr", flags.APIAddr,
		"twilio", twilioEnabled(flags),
		"whatsapp", flags.WhatsApp)
	if err := api.Run(storeOpts, twilioOpts, waOpts, apiOpts); err != nil {
		slog.Error("Healing Guru failed to run", "error", err)
		os.Exit(1)
	}
	slog.Info("Healing Guru exited successfully")
}

// Config holds environment configuration
type Config struct {
	StateDir         string
	DatabaseURL      string
	APIAddr          string
	LogLevel         string
	CookieSecure     bool
	HistoryLimit     int
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
	TwilioWebhookURL string
	WhatsApp         bool
	WhatsAppDBDSN    string
}

// Flags holds the final configuration after command line overrides
type Flags struct {
	StateDir         string
	DBDSN            string
	APIAddr          string
	LogLevel         string
	CookieSecure     bool
	HistoryLimit     int
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
	TwilioWebhookURL string
	WhatsApp         bool
	WhatsAppDBDSN    string
	QROutput         string
	Numeric          bool
}

// initializeLogger sets up structured logging at the configured level
func initializeLogger(level string) {
	lvl, ok := util.ParseLogLevel(level)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	if !ok {
		slog.Warn("Unknown log level, using info", "level", level)
	}
}

// loadEnvironmentConfig loads configuration from environment variables and .env file
func loadEnvironmentConfig() Config {
	dotenvErr := godotenv.Load()

	config := Config{
		StateDir:         os.Getenv("HEALING_GURU_STATE_DIR"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		APIAddr:          os.Getenv("API_ADDR"),
		LogLevel:         os.Getenv("HEALING_GURU_LOG_LEVEL"),
		CookieSecure:     util.ParseBoolEnv("HEALING_GURU_COOKIE_SECURE", false),
		HistoryLimit:     util.ParseIntEnv("HEALING_GURU_HISTORY_LIMIT", flow.DefaultHistoryLimit),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFrom:       os.Getenv("TWILIO_FROM_NUMBER"),
		TwilioWebhookURL: os.Getenv("TWILIO_WEBHOOK_URL"),
		WhatsApp:         util.ParseBoolEnv("WHATSAPP_ENABLED", false),
		WhatsAppDBDSN:    os.Getenv("WHATSAPP_DB_DSN"),
	}

	if config.StateDir == "" {
		config.StateDir = DefaultStateDir
	}
	if config.APIAddr == "" {
		config.APIAddr = api.DefaultAddr
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}

	// The logger is not configured yet; these land on the default handler.
	slog.Debug("environment variables loaded",
		"dotenv_loaded", dotenvErr == nil,
		"HEALING_GURU_STATE_DIR", config.StateDir,
		"DATABASE_URL_SET", config.DatabaseURL != "",
		"API_ADDR", config.APIAddr,
		"TWILIO_ACCOUNT_SID_SET", config.TwilioAccountSID != "",
		"WHATSAPP_ENABLED", config.WhatsApp)

	return config
}

// parseCommandLineFlags parses args with environment defaults. Database paths
// left unset follow the final state directory.
func parseCommandLineFlags(fs *flag.FlagSet, args []string, config Config) (Flags, error) {
	var f Flags
	fs.StringVar(&f.StateDir, "state-dir", config.StateDir, "state directory for Healing Guru data (overrides $HEALING_GURU_STATE_DIR)")
	fs.StringVar(&f.DBDSN, "db-dsn", config.DatabaseURL, "Postgres URL, SQLite path or \"memory\" (overrides $DATABASE_URL)")
	fs.StringVar(&f.APIAddr, "api-addr", config.APIAddr, "API server address (overrides $API_ADDR)")
	fs.StringVar(&f.LogLevel, "log-level", config.LogLevel, "log level: debug, info, warn or error (overrides $HEALING_GURU_LOG_LEVEL)")
	fs.BoolVar(&f.CookieSecure, "cookie-secure", config.CookieSecure, "mark the session cookie Secure (overrides $HEALING_GURU_COOKIE_SECURE)")
	fs.IntVar(&f.HistoryLimit, "history-limit", config.HistoryLimit, "conversation turns loaded per chat message (overrides $HEALING_GURU_HISTORY_LIMIT)")
	fs.StringVar(&f.TwilioAccountSID, "twilio-account-sid", config.TwilioAccountSID, "Twilio account SID (overrides $TWILIO_ACCOUNT_SID)")
	fs.StringVar(&f.TwilioAuthToken, "twilio-auth-token", config.TwilioAuthToken, "Twilio auth token (overrides $TWILIO_AUTH_TOKEN)")
	fs.StringVar(&f.TwilioFrom, "twilio-from", config.TwilioFrom, "Twilio sender number (overrides $TWILIO_FROM_NUMBER)")
	fs.StringVar(&f.TwilioWebhookURL, "twilio-webhook-url", config.TwilioWebhookURL, "public webhook URL for signature validation (overrides $TWILIO_WEBHOOK_URL)")
	fs.BoolVar(&f.WhatsApp, "whatsapp", config.WhatsApp, "enable the WhatsApp channel (overrides $WHATSAPP_ENABLED)")
	fs.StringVar(&f.WhatsAppDBDSN, "whatsapp-db-dsn", config.WhatsAppDBDSN, "whatsmeow device store DSN (overrides $WHATSAPP_DB_DSN)")
	fs.StringVar(&f.QROutput, "qr-output", "", "path to write login QR code")
	fs.BoolVar(&f.Numeric, "numeric-code", false, "use numeric login code instead of QR code")

	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}

	if f.DBDSN == "" {
		f.DBDSN = filepath.Join(f.StateDir, DefaultDBFileName)
	}
	if f.WhatsAppDBDSN == "" {
		f.WhatsAppDBDSN = filepath.Join(f.StateDir, DefaultWhatsAppDBFileName)
	}
	return f, nil
}

func dsnType(dsn string) string {
	if dsn == store.MemoryDSN {
		return store.MemoryDSN
	}
	return store.DetectDSNType(dsn)
}

// needsStateLock reports whether any SQLite database is in use.
func needsStateLock(f Flags) bool {
	if dsnType(f.DBDSN) == "sqlite3" {
		return true
	}
	return f.WhatsApp && store.DetectDSNType(f.WhatsAppDBDSN) == "sqlite3"
}

func twilioEnabled(f Flags) bool {
	return f.TwilioAccountSID != "" && f.TwilioAuthToken != "" && f.TwilioFrom != ""
}

// buildStoreOptions constructs store configuration options
func buildStoreOptions(f Flags) []store.Option {
	switch dsnType(f.DBDSN) {
	case "postgres":
		slog.Debug("Detected PostgreSQL DSN, configuring PostgreSQL store")
		return []store.Option{store.WithPostgresDSN(f.DBDSN)}
	case store.MemoryDSN:
		slog.Warn("Using in-memory store, data will not survive a restart")
		return []store.Option{store.WithDSN(store.MemoryDSN)}
	default:
		slog.Debug("Detected SQLite DSN, configuring SQLite store", "db_path", f.DBDSN)
		return []store.Option{store.WithSQLiteDSN(f.DBDSN)}
	}
}

// buildTwilioOptions constructs Twilio client options
func buildTwilioOptions(f Flags) []twilio.Option {
	var opts []twilio.Option
	if f.TwilioAccountSID != "" {
		opts = append(opts, twilio.WithAccountSID(f.TwilioAccountSID))
	}
	if f.TwilioAuthToken != "" {
		opts = append(opts, twilio.WithAuthToken(f.TwilioAuthToken))
	}
	if f.TwilioFrom != "" {
		opts = append(opts, twilio.WithFromNumber(f.TwilioFrom))
	}
	if f.TwilioWebhookURL != "" {
		opts = append(opts, twilio.WithWebhookURL(f.TwilioWebhookURL))
	}
	return opts
}

// buildWhatsAppOptions constructs WhatsApp configuration options
func buildWhatsAppOptions(f Flags) []whatsapp.Option {
	var waOpts []whatsapp.Option
	if f.QROutput != "" {
		waOpts = append(waOpts, whatsapp.WithQRCodeOutput(f.QROutput))
	}
	if f.Numeric {
		waOpts = append(waOpts, whatsapp.WithNumericCode())
	}
	if f.WhatsAppDBDSN != "" {
		waOpts = append(waOpts, whatsapp.WithDBDSN(f.WhatsAppDBDSN))
	}
	return waOpts
}

// buildAPIOptions constructs API server configuration options
func buildAPIOptions(f Flags) []api.Option {
	apiOpts := []api.Option{
		api.WithAddr(f.APIAddr),
		api.WithCookieSecure(f.CookieSecure),
		api.WithHistoryLimit(f.HistoryLimit),
	}
	if twilioEnabled(f) {
		apiOpts = append(apiOpts, api.WithTwilio())
	}
	if f.WhatsApp {
		apiOpts = append(apiOpts, api.WithWhatsApp())
	}
	return apiOpts
}

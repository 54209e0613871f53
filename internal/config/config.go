package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Ledger backend selectors.
const (
	BackendSheets   = "sheets"
	BackendPostgres = "postgres"
)

// Transport mode selectors.
const (
	TransportPolling = "polling"
	TransportWebhook = "webhook"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	BotToken      string
	AdminChatID   string
	TransportMode string
	RunAddress    string

	LedgerBackend         string
	SheetID               string
	SheetName             string
	GoogleCredentialsFile string
	GoogleCredentialsJSON string
	DatabaseURI           string

	RedisAddr   string
	RedisDB     int
	CounterKey  string
	CostCenters []string

	NotifyWorkers   int
	NotifyQueueSize int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultSheetName       = "Anfragen"
	defaultCredentialsFile = "credentials.json"
	defaultRedisAddr       = "localhost:6379"
	defaultCounterKey      = "procurebot:order_counter"
	defaultCostCenters     = "Lager,Stahlhalle,Bulli,HR,Finanzen,Produktion,Andere"
	defaultNotifyWorkers   = 2
	defaultNotifyQueue     = 16
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		BotToken:              getString(lookup, "TELEGRAM_BOT_TOKEN", ""),
		AdminChatID:           getString(lookup, "ADMIN_CHAT_ID", ""),
		TransportMode:         getString(lookup, "TRANSPORT_MODE", TransportPolling),
		RunAddress:            getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		LedgerBackend:         getString(lookup, "LEDGER_BACKEND", BackendSheets),
		SheetID:               getString(lookup, "GOOGLE_SHEET_ID", ""),
		SheetName:             getString(lookup, "GOOGLE_SHEET_NAME", defaultSheetName),
		GoogleCredentialsFile: getString(lookup, "GOOGLE_CREDENTIALS_FILE", defaultCredentialsFile),
		GoogleCredentialsJSON: getString(lookup, "GOOGLE_CREDENTIALS_JSON", ""),
		DatabaseURI:           getString(lookup, "DATABASE_URI", ""),
		RedisAddr:             getString(lookup, "REDIS_ADDR", defaultRedisAddr),
		RedisDB:               getInt(lookup, "REDIS_DB", 0),
		CounterKey:            getString(lookup, "COUNTER_KEY", defaultCounterKey),
		NotifyWorkers:         getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		NotifyQueueSize:       getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueue),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	costCenters := getString(lookup, "COST_CENTERS", defaultCostCenters)

	fs := flag.NewFlagSet("procurebot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.BotToken, "token", cfg.BotToken, "Telegram bot token")
	fs.StringVar(&cfg.AdminChatID, "admin", cfg.AdminChatID, "Admin chat ID for notifications")
	fs.StringVar(&cfg.TransportMode, "transport", cfg.TransportMode, "Update transport: polling or webhook")
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.LedgerBackend, "backend", cfg.LedgerBackend, "Ledger backend: sheets or postgres")
	fs.StringVar(&cfg.SheetID, "sheet", cfg.SheetID, "Google spreadsheet ID")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for the postgres backend")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for the order counter")
	fs.StringVar(&costCenters, "cost-centers", costCenters, "Comma separated cost center options")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of admin notification workers")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	cfg.CostCenters = splitList(costCenters)

	if tokenFile, ok := lookup("TELEGRAM_BOT_TOKEN_FILE"); ok && tokenFile != "" {
		content, err := os.ReadFile(tokenFile)
		if err != nil {
			return nil, fmt.Errorf("read bot token file: %w", err)
		}
		cfg.BotToken = strings.TrimSpace(string(content))
	}

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}
	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueue
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token must be provided")
	}

	switch cfg.TransportMode {
	case TransportPolling, TransportWebhook:
	default:
		return nil, fmt.Errorf("unknown transport mode %q", cfg.TransportMode)
	}

	switch cfg.LedgerBackend {
	case BackendSheets:
		if cfg.SheetID == "" {
			return nil, fmt.Errorf("spreadsheet ID must be provided for the sheets backend")
		}
	case BackendPostgres:
		if cfg.DatabaseURI == "" {
			return nil, fmt.Errorf("database URI must be provided for the postgres backend")
		}
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", cfg.LedgerBackend)
	}

	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("redis address must be provided")
	}

	if len(cfg.CostCenters) == 0 {
		return nil, fmt.Errorf("at least one cost center must be configured")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

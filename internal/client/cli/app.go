package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/facturadash/facturadash/internal/client/api"
	"github.com/facturadash/facturadash/internal/client/config"
	"github.com/facturadash/facturadash/internal/client/models"
	"github.com/facturadash/facturadash/internal/client/session"
	"github.com/facturadash/facturadash/internal/client/store"
	"github.com/facturadash/facturadash/internal/client/tokencodec"
	"github.com/facturadash/facturadash/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionIface is the slice of the session manager the command handlers use.
// Tests provide a stub.
type sessionIface interface {
	Bootstrap(ctx context.Context, atLoginPrompt bool)
	Login(ctx context.Context, email, password string)
	Register(ctx context.Context, reg models.Registration)
	Logout(ctx context.Context)
	User() *models.User
	IsAuthenticated() bool
	Err() string
	Token() string
	ClearError()
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	store   store.Store
	api     api.Client
	session sessionIface
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewDefault(parseLevel(cfg.LogLevel))

	if dir := filepath.Dir(cfg.CachePath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	st, err := store.Open(ctx, cfg.CachePath)
	if err != nil {
		logger.Error(ctx, "initializing local cache", "error", err.Error())
		return nil, err
	}

	codec := tokencodec.New(tokencodec.EnvironmentFingerprint())

	// The token source closes over manager, which is created right after the
	// transport. No request can fire before the assignment below.
	var manager *session.Manager
	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout,
		func(ctx context.Context) string { return manager.Token() }, logger)
	manager = session.NewManager(apiClient, st, codec, logger)

	return &App{
		config:  cfg,
		logger:  logger,
		store:   st,
		api:     apiClient,
		session: manager,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Run reconciles the cached session and starts the REPL. It blocks until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.store.Close() }()
	defer func() { _ = a.api.Close() }()

	a.session.Bootstrap(ctx, a.config.StartAtLogin)
	if u := a.session.User(); u != nil {
		printlnFn("Welcome back,", u.FullName())
	}

	printlnFn("FacturaDash CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return "(" + u.Email + ")"
	}
	return ""
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/iapapers/internal/client/client"
	"github.com/dmitrijs2005/iapapers/internal/client/config"
	"github.com/dmitrijs2005/iapapers/internal/client/repositories/votes"
	"github.com/dmitrijs2005/iapapers/internal/client/services"
	"github.com/dmitrijs2005/iapapers/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single connectivity probe.
const pingTimeout = 5 * time.Second

// pinger is the part of the API client the connectivity watcher needs.
type pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	api  pinger
	http *http.Client

	browse   services.BrowseService
	upload   services.UploadService
	subjects services.SubjectService
	feedback services.FeedbackService
	admin    services.AdminService

	modeMu sync.RWMutex
	mode   Mode

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.LedgerPath)
	if err != nil {
		logger.Error(ctx, "error initializing vote ledger", "path", c.LedgerPath, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger.With("component", "api")),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	ledger := votes.NewCachedRepository(votes.NewSQLiteRepository(db), votes.DefaultCacheSize)
	browse := services.NewBrowseService(apiClient, ledger, logger)

	return &App{
		config:   c,
		log:      logger,
		db:       db,
		api:      apiClient,
		http:     apiClient.HTTP(),
		browse:   browse,
		upload:   services.NewUploadService(apiClient, logger),
		subjects: services.NewSubjectService(apiClient, browse, logger),
		feedback: services.NewFeedbackService(apiClient, logger),
		admin:    services.NewAdminService(apiClient, logger),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		a.admin.Logout()
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "closing vote ledger", "error", err)
		}
	}()
	a.Root(ctx)
}

// checkOnline runs one probe and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.api.Ping(ctx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher probes the API every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

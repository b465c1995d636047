package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hangok-indie/hangok/internal/auth"
	"github.com/hangok-indie/hangok/internal/catalog"
	"github.com/hangok-indie/hangok/internal/engine"
	"github.com/hangok-indie/hangok/internal/shared"
	"github.com/hangok-indie/hangok/internal/storage"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	db         *sql.DB
	kv         storage.KV
	store      *storage.Store
	catalog    catalog.Service
	tokens     *auth.TokenStore
	session    *auth.Session
	engine     *engine.Engine
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	KV         storage.KV
	Catalog    catalog.Service
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration.
//
// When no KV port is injected, the runner opens the configured SQLite
// database; if that fails the daily state falls back to an in-memory store
// for the lifetime of the process.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	r := &Runner{
		config:     opts.Config,
		kv:         opts.KV,
		catalog:    opts.Catalog,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}

	if r.kv == nil {
		if db, err := shared.NewDatabase(opts.Config.Database.Path); err == nil {
			shared.ConfigureDatabase(db, opts.Config.Database.MaxOpenConns, opts.Config.Database.MaxIdleConns)
			r.db = db
			r.kv = storage.NewSQLiteKV(db)
		} else {
			r.logger.Warn("failed to open database, daily state will not persist", "error", err)
			r.kv = storage.NewMemoryKV()
		}
	}

	r.store = storage.NewStore(storage.StoreOpts{
		KV:      r.kv,
		Version: shared.AppVersion,
		Logger:  r.logger,
	})

	if r.catalog == nil {
		var client *http.Client
		if opts.HTTPClient != http.DefaultClient {
			client = opts.HTTPClient
		}
		r.catalog = catalog.NewSheetService(catalog.SheetOpts{
			URL:        opts.Config.Catalog.URL,
			HTTPClient: client,
			Timeout:    time.Duration(opts.Config.Catalog.TimeoutSeconds) * time.Second,
			RateLimit:  opts.Config.Catalog.RateLimit,
		})
	}

	r.tokens = auth.NewTokenStore(r.kv, r.logger)
	r.session = auth.NewSession(r.tokens)

	r.engine = engine.New(engine.Opts{
		Catalog:   r.catalog,
		Store:     r.store,
		Auth:      r.session,
		MaxPerDay: opts.Config.Recommendation.MaxPerDay,
		BatchSize: opts.Config.Recommendation.BatchSize,
		Logger:    r.logger,
	})

	return r
}

// Close releases the runner's database handle, if any.
func (r *Runner) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// SetLogger swaps the runner's logger (used by the TUI to redirect to a file).
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, statusCommand, recommendCommand, todayCommand, playlistCommand,
		shareCommand, openCommand, authCommand, serveCommand, resetCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

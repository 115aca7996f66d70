package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gofrs/flock"

	"scribe/internal/captions"
	"scribe/internal/config"
	"scribe/internal/deps"
	"scribe/internal/logging"
	"scribe/internal/transcript"
	"scribe/internal/videoinfo"
)

// Capabilities names the integrations the daemon was constructed with.
type Capabilities struct {
	CaptionsProvider  string
	MetadataProviders []string
	ProxyConfigured   bool
	AuthEnabled       bool
}

// Daemon coordinates the transcript service and enforces single-instance execution.
type Daemon struct {
	cfg          *config.Config
	logger       *slog.Logger
	service      *transcript.Service
	metadata     *videoinfo.Chain
	capabilities Capabilities

	lockPath string
	lock     *flock.Flock
	server   *apiServer

	running atomic.Bool
	cancel  context.CancelFunc
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	PID          int
	Bind         string
	LockFilePath string
	Capabilities Capabilities
	Dependencies []deps.Status
}

// New constructs a daemon around pre-built components.
func New(cfg *config.Config, logger *slog.Logger, svc *transcript.Service, metadata *videoinfo.Chain, caps Capabilities) (*Daemon, error) {
	if cfg == nil || svc == nil || metadata == nil {
		return nil, errors.New("daemon requires config, transcript service, and metadata chain")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	lockPath := filepath.Join(cfg.Logging.LogDir, "scribed.lock")
	d := &Daemon{
		cfg:          cfg,
		logger:       logger,
		service:      svc,
		metadata:     metadata,
		capabilities: caps,
		lockPath:     lockPath,
		lock:         flock.New(lockPath),
	}
	d.server = newAPIServer(cfg, d, logger)
	return d, nil
}

// FromConfig wires the caption client, transcript service, and metadata
// chain from configuration and returns a ready daemon.
func FromConfig(cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("configuration unavailable")
	}

	var captionOpts []captions.Option
	if cfg.YouTube.ProxyURL != "" {
		captionOpts = append(captionOpts, captions.WithProxy(cfg.YouTube.ProxyURL))
	}
	if cfg.YouTube.InnertubeBaseURL != "" {
		captionOpts = append(captionOpts, captions.WithBaseURL(cfg.YouTube.InnertubeBaseURL))
	}
	client := captions.New(captionOpts...)

	svc := transcript.NewService(client, logger,
		transcript.WithTruncationMarker(cfg.Transcript.TruncationMarker))

	var providers []videoinfo.Provider
	if cfg.YouTube.DataAPIKey != "" {
		providers = append(providers, videoinfo.NewDataAPI(cfg.YouTube.DataAPIKey))
	}
	providers = append(providers, videoinfo.NewOEmbed())
	if cfg.YouTube.YtDlpEnabled {
		providers = append(providers, videoinfo.NewYtDlp(cfg.YtDlpBinary()))
	}
	metadata := videoinfo.NewChain(logger, providers...)

	caps := Capabilities{
		CaptionsProvider:  "innertube",
		MetadataProviders: metadata.Names(),
		ProxyConfigured:   cfg.YouTube.ProxyURL != "",
		AuthEnabled:       cfg.Server.APIToken != "",
	}
	return New(cfg, logger, svc, metadata, caps)
}

// Start acquires the daemon lock and brings up the HTTP API.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another scribe daemon instance is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	if err := d.server.start(runCtx); err != nil {
		cancel()
		d.cancel = nil
		_ = d.lock.Unlock()
		return err
	}

	d.running.Store(true)
	d.logger.Info("scribe daemon started",
		logging.String("lock", d.lockPath),
		logging.String("bind", d.cfg.Server.Bind))
	return nil
}

// Stop shuts down the HTTP API and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.server.stop()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.running.Store(false)
	d.logger.Info("scribe daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	return nil
}

// Status returns the current daemon status, including the availability of
// optional external binaries.
func (d *Daemon) Status(ctx context.Context) Status {
	requirements := deps.Defaults(d.cfg.YtDlpBinary())
	return Status{
		Running:      d.running.Load(),
		PID:          os.Getpid(),
		Bind:         d.cfg.Server.Bind,
		LockFilePath: d.lockPath,
		Capabilities: d.capabilities,
		Dependencies: deps.CheckBinaries(requirements),
	}
}

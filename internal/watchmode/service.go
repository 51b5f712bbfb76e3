package watchmode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/flock"

	"podium/internal/analysis"
	"podium/internal/config"
	"podium/internal/logging"
	"podium/internal/reportstore"
	"podium/internal/transcript"
)

// ErrAlreadyRunning indicates another watcher holds the lock for this data directory.
var ErrAlreadyRunning = errors.New("another podium watcher is already running")

// Service watches a drop directory and analyzes transcripts as they arrive.
type Service struct {
	cfg       *config.Config
	logger    *slog.Logger
	store     *reportstore.Store
	engine    *analysis.Engine
	debouncer *debouncer
	fsWatcher *fsnotify.Watcher

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
}

// New constructs a watch service with initialized dependencies.
func New(cfg *config.Config, store *reportstore.Store, logger *slog.Logger) (*Service, error) {
	if cfg == nil || store == nil {
		return nil, errors.New("watch service requires config and store")
	}
	if strings.TrimSpace(cfg.Watch.Dir) == "" {
		return nil, errors.New("watch directory is not configured")
	}
	if logger == nil {
		logger = logging.Nop()
	}

	lockPath := cfg.LockPath()
	svc := &Service{
		cfg:      cfg,
		logger:   logging.WithComponent(logger, "watch"),
		store:    store,
		engine:   analysis.NewEngine(cfg.Lexicon()),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}
	svc.debouncer = newDebouncer(
		time.Duration(cfg.Watch.DebounceMS)*time.Millisecond,
		cfg.Watch.MaxBatch,
		svc.processBatch,
	)
	return svc, nil
}

// Start acquires the watcher lock, scans existing files, and begins watching.
func (s *Service) Start(ctx context.Context) error {
	if s.running.Load() {
		return errors.New("watch service already started")
	}

	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}

	if err := os.MkdirAll(s.cfg.Watch.Dir, 0o755); err != nil {
		_ = s.lock.Unlock()
		return fmt.Errorf("create watch directory: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		_ = s.lock.Unlock()
		return fmt.Errorf("create fs watcher: %w", err)
	}
	if err := fsWatcher.Add(s.cfg.Watch.Dir); err != nil {
		_ = fsWatcher.Close()
		_ = s.lock.Unlock()
		return fmt.Errorf("watch %s: %w", s.cfg.Watch.Dir, err)
	}

	s.fsWatcher = fsWatcher
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.running.Store(true)
	s.logger.Info("watch started", "dir", s.cfg.Watch.Dir, "lock", s.lockPath)

	s.scanExisting()
	go s.handleEvents()
	return nil
}

// Run starts the service and blocks until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	s.Stop()
	return nil
}

// Stop stops watching and releases the lock.
func (s *Service) Stop() {
	if !s.running.Load() {
		return
	}
	s.running.Store(false)

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.fsWatcher != nil {
		_ = s.fsWatcher.Close()
	}
	<-s.done
	s.debouncer.Stop()
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("failed to release watcher lock", "error", err)
	}
	s.logger.Info("watch stopped")
}

// scanExisting queues transcripts already present in the drop directory.
func (s *Service) scanExisting() {
	entries, err := os.ReadDir(s.cfg.Watch.Dir)
	if err != nil {
		s.logger.Warn("failed to scan watch directory", "error", err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.cfg.Watch.Dir, entry.Name())
		if isTranscriptPath(path) {
			s.debouncer.Add(path)
		}
	}
}

func (s *Service) handleEvents() {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			return

		case event, ok := <-s.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !isTranscriptPath(event.Name) {
				continue
			}
			s.logger.Debug("file event", "path", event.Name, "op", event.Op.String())
			s.debouncer.Add(event.Name)

		case err, ok := <-s.fsWatcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("watch error", "error", err)
		}
	}
}

func (s *Service) processBatch(paths []string) {
	sort.Strings(paths)
	for _, path := range paths {
		if err := s.ProcessFile(context.Background(), path); err != nil {
			s.logger.Warn("failed to process transcript", "path", path, "error", err)
		}
	}
}

// ProcessFile analyzes a single transcript file and stores the report.
// Transcripts whose fingerprint already has a stored report are skipped.
func (s *Service) ProcessFile(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat transcript: %w", err)
	}
	if info.IsDir() {
		return nil
	}

	tr, err := transcript.Load(path)
	if err != nil {
		return fmt.Errorf("load transcript: %w", err)
	}

	existing, err := s.store.FindByFingerprint(ctx, tr.Fingerprint)
	if err != nil {
		return fmt.Errorf("check fingerprint: %w", err)
	}
	if existing != nil {
		s.logger.Debug("transcript already analyzed", "path", path, "uuid", existing.UUID)
		return nil
	}

	report := s.engine.Analyze(tr.Chunks, tr.DurationMinutes)
	if report == nil {
		s.logger.Info("transcript has no analyzable speech", "path", path)
		return nil
	}

	record, err := reportstore.NewRecord(tr, report)
	if err != nil {
		return err
	}
	saved, err := s.store.Save(ctx, record)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	s.logger.Info("transcript analyzed",
		"path", path,
		"uuid", saved.UUID,
		"clarity", saved.Clarity,
		"conciseness", saved.Conciseness,
		"confidence", saved.Confidence,
	)
	return nil
}

func isTranscriptPath(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), ".json")
}

package commands

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hostsctl/hostsctl/src/internal/log"
)

// RestartableRunner keeps a long-running function alive, restarting it with
// exponential backoff when it fails or panics. A nil return or a cancelled
// context stops it for good.
type RestartableRunner struct {
	name           string
	runFunc        func(ctx context.Context) error
	maxRestarts    int
	restartBackoff time.Duration
	maxBackoff     time.Duration
	stopTimeout    time.Duration

	mu           sync.RWMutex
	running      bool
	cancel       context.CancelFunc
	done         chan struct{}
	lastError    error
	restartCount int
}

// RunnerConfig contains configuration for RestartableRunner.
type RunnerConfig struct {
	Name           string
	MaxRestarts    int           // 0 = unlimited restarts
	RestartBackoff time.Duration // Initial backoff (default: 1s)
	MaxBackoff     time.Duration // Max backoff (default: 30s)
	StopTimeout    time.Duration // Max wait in Stop (default: 30s)
}

// NewRestartableRunner creates a new restartable runner.
func NewRestartableRunner(cfg RunnerConfig, runFunc func(ctx context.Context) error) *RestartableRunner {
	if cfg.RestartBackoff == 0 {
		cfg.RestartBackoff = time.Second
	}
	if cfg.MaxBackoff == 0 {
		cfg.MaxBackoff = 30 * time.Second
	}
	if cfg.StopTimeout == 0 {
		cfg.StopTimeout = 30 * time.Second
	}

	return &RestartableRunner{
		name:           cfg.Name,
		runFunc:        runFunc,
		maxRestarts:    cfg.MaxRestarts,
		restartBackoff: cfg.RestartBackoff,
		maxBackoff:     cfg.MaxBackoff,
		stopTimeout:    cfg.StopTimeout,
	}
}

// Start runs the function in a goroutine.
func (r *RestartableRunner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("%s is already running", r.name)
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	r.running = true
	r.restartCount = 0
	r.lastError = nil

	go r.runLoop(runCtx, r.done)

	return nil
}

// Done is closed once the runner has stopped, either through Stop, a clean
// exit or after giving up on restarts.
func (r *RestartableRunner) Done() <-chan struct{} {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.done
}

// Stop cancels the function and waits for it to return.
func (r *RestartableRunner) Stop() error {
	r.mu.RLock()
	cancel, done := r.cancel, r.done
	r.mu.RUnlock()

	if done == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-time.After(r.stopTimeout):
		return fmt.Errorf("%s: timeout waiting for stop", r.name)
	}
}

// IsRunning returns true if the runner is currently running.
func (r *RestartableRunner) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.running
}

// LastError returns the error of the last failed run.
func (r *RestartableRunner) LastError() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastError
}

// RestartCount returns the number of restarts that have occurred.
func (r *RestartableRunner) RestartCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.restartCount
}

func (r *RestartableRunner) runLoop(ctx context.Context, done chan struct{}) {
	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
		close(done)
	}()

	backoff := r.restartBackoff

	for {
		err := r.runWithRecovery(ctx)
		if ctx.Err() != nil {
			log.Debugf("%s: stopped", r.name)
			return
		}
		if err == nil {
			log.Infof("%s: exited cleanly", r.name)
			return
		}

		r.mu.Lock()
		r.lastError = err
		r.restartCount++
		restartCount := r.restartCount
		r.mu.Unlock()

		if r.maxRestarts > 0 && restartCount >= r.maxRestarts {
			log.Errorf("%s: max restarts (%d) reached, giving up. Last error: %v", r.name, r.maxRestarts, err)
			return
		}

		log.Errorf("%s: failed with error: %v. Restarting in %v (restart #%d)", r.name, err, backoff, restartCount)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > r.maxBackoff {
			backoff = r.maxBackoff
		}
	}
}

func (r *RestartableRunner) runWithRecovery(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("panic: %v", recovered)
		}
	}()

	return r.runFunc(ctx)
}

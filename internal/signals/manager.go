package signals

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Manager owns the root context of the process and the exit code chosen on shutdown.
// Receiving SIGINT or SIGTERM cancels the context once.
type Manager struct {
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once

	mu       sync.RWMutex
	stopped  bool
	exitCode int
}

var (
	globalManager *Manager
	initOnce      sync.Once
)

// New creates a manager and starts listening for SIGINT and SIGTERM.
func New() *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{ctx: ctx, cancel: cancel}
	m.listen()
	return m
}

// GetGlobalManager returns the process-wide manager, creating it on first use.
func GetGlobalManager() *Manager {
	initOnce.Do(func() {
		globalManager = New()
	})
	return globalManager
}

// Context is canceled when a signal arrives or Shutdown is called.
func (m *Manager) Context() context.Context {
	return m.ctx
}

// IsShutdown reports whether shutdown has been triggered.
func (m *Manager) IsShutdown() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stopped
}

// ExitCode returns the code recorded by the first Shutdown call, or 0.
func (m *Manager) ExitCode() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.exitCode
}

// Shutdown records exitCode and cancels the context. Only the first call has an effect.
func (m *Manager) Shutdown(exitCode int) {
	m.once.Do(func() {
		m.mu.Lock()
		m.stopped = true
		m.exitCode = exitCode
		m.mu.Unlock()
		m.cancel()
	})
}

// ExitCodeFor maps a termination signal to the conventional 128+n exit code.
func ExitCodeFor(sig os.Signal) int {
	switch sig {
	case os.Interrupt:
		return 130
	case syscall.SIGTERM:
		return 143
	default:
		return 0
	}
}

func (m *Manager) listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.Shutdown(ExitCodeFor(sig))
		case <-m.ctx.Done():
		}
		signal.Stop(sigChan)
	}()
}

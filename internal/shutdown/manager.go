package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"sort-visualizer/internal/logger"
)

type Shutdownable interface {
	Shutdown()
}

// ShutdownFunc adapts a function to Shutdownable
type ShutdownFunc func()

func (f ShutdownFunc) Shutdown() { f() }

type registered struct {
	name      string
	component Shutdownable
}

// Manager runs registered components' Shutdown in reverse order, once, on a
// signal or an explicit call. Each step gets its own timeout.
type Manager struct {
	components []registered
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
	stopSignal func()
}

func NewManager(log logger.Logger, stepTimeout time.Duration) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if stepTimeout <= 0 {
		stepTimeout = 10 * time.Second
	}
	return &Manager{
		logger:  log,
		timeout: stepTimeout,
		done:    make(chan struct{}),
	}
}

func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, registered{name: name, component: component})
}

// Listen shuts down on SIGINT or SIGTERM. The shutdown runs on its own
// goroutine, never on the UI thread.
func (m *Manager) Listen() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	m.mu.Lock()
	m.stopSignal = stop
	m.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			m.logger.Info("ShutdownManager", "shutdown signal received", nil)
			m.Shutdown()
		case <-m.done:
		}
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	select {
	case <-m.done:
		m.mu.Unlock()
		return
	default:
		close(m.done)
	}
	components := append([]registered(nil), m.components...)
	stop := m.stopSignal
	m.mu.Unlock()

	if stop != nil {
		defer stop()
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(components),
	})

	for i := len(components) - 1; i >= 0; i-- {
		step := components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			step.component.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug("ShutdownManager", "component shut down", map[string]interface{}{
				"component": step.name,
			})
		case <-time.After(m.timeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": step.name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}

package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"agenda/internal/logger"
)

const (
	managerComponent = "ShutdownManager"

	DefaultComponentTimeout = 10 * time.Second
)

// Shutdownable is anything that releases resources on exit
type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable
type Func func()

func (f Func) Shutdown() { f() }

type registration struct {
	name      string
	component Shutdownable
}

// Manager stops registered components once, in reverse registration order
type Manager struct {
	components []registration
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		components: make([]registration, 0),
		logger:     log,
		timeout:    DefaultComponentTimeout,
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SetComponentTimeout bounds how long each component may take to stop
func (m *Manager) SetComponentTimeout(timeout time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = timeout
}

func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, registration{name: name, component: component})
}

// Listen shuts down on SIGINT or SIGTERM and then calls after, if set.
// The returned function stops listening.
func (m *Manager) Listen(after func()) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info(managerComponent, "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
			if after != nil {
				after()
			}
		case <-m.done:
		}
	}()

	return func() { signal.Stop(sigChan) }
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info(managerComponent, "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	for i := len(m.components) - 1; i >= 0; i-- {
		entry := m.components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			entry.component.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug(managerComponent, "component stopped", map[string]interface{}{
				"component_name": entry.name,
			})
		case <-time.After(m.timeout):
			m.logger.Warning(managerComponent, "component shutdown timeout", map[string]interface{}{
				"component_name": entry.name,
			})
		}
	}

	m.logger.Info(managerComponent, "shutdown sequence completed", nil)
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}

package shutdown

import (
	"sync"
	"testing"
	"time"

	"agenda/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestManager_ShutdownReverseOrder(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}

	m.Register("scheduler", record("scheduler"))
	m.Register("controller", record("controller"))

	m.Shutdown()

	assert.Equal(t, []string{"controller", "scheduler"}, order)
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel must be closed")
	}
}

func TestManager_ShutdownRunsOnce(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	calls := 0
	m.Register("counter", Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
}

func TestManager_ComponentTimeout(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	m.SetComponentTimeout(20 * time.Millisecond)

	block := make(chan struct{})
	defer close(block)
	reached := false
	m.Register("after", Func(func() { reached = true }))
	m.Register("stuck", Func(func() { <-block }))

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, reached)
}

func TestManager_ListenStop(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	stop := m.Listen(nil)
	stop()
	m.Shutdown()
}

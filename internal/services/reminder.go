package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"agenda/internal/logger"
	"agenda/internal/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const schedulerComponent = "ReminderScheduler"

const stopTimeout = 5 * time.Second

// Notification is a reminder due for one task
type Notification struct {
	TaskID   uuid.UUID
	TaskName string
	Deadline time.Time
}

// Title is the dialog title for the notification
func (n Notification) Title() string {
	return "Lembrete"
}

// Message is the dialog body for the notification
func (n Notification) Message() string {
	return fmt.Sprintf("%s: Lembrete programado para %s.", n.TaskName, models.FormatReminder(n.Deadline))
}

// TaskLister is the read side of the task store the scheduler scans
type TaskLister interface {
	List() []models.Task
}

// Dispatcher runs fn on the UI thread
type Dispatcher func(fn func())

// Notifier presents a due reminder and calls closed once the user has
// dismissed it
type Notifier func(n Notification, closed func())

// SyncDispatcher runs fn on the calling goroutine
func SyncDispatcher(fn func()) {
	fn()
}

// ReminderScheduler scans the task store on a fixed interval and notifies
// every task whose deadline time-of-day has passed. Only the time-of-day is
// compared, so a deadline on any date fires once per scan after that time.
// There is no de-duplication: a due task notifies again on every scan, but a
// scan is skipped while reminders from an earlier scan are still open, so
// unattended reminders never pile up.
type ReminderScheduler struct {
	tasks    TaskLister
	interval time.Duration
	dispatch Dispatcher
	logger   logger.Logger
	clock    func() time.Time

	mu       sync.Mutex
	notify   Notifier
	cron     *cron.Cron
	entryID  cron.EntryID
	running  bool
	pending  int
	scanned  int
	skipped  int
	notified int
}

// NewReminderScheduler creates a stopped scheduler. dispatch decides where
// scans run; pass fyne.Do to serialise them with UI events.
func NewReminderScheduler(tasks TaskLister, interval time.Duration, dispatch Dispatcher, log logger.Logger) *ReminderScheduler {
	if dispatch == nil {
		dispatch = SyncDispatcher
	}
	return &ReminderScheduler{
		tasks:    tasks,
		interval: interval,
		dispatch: dispatch,
		logger:   log,
		clock:    time.Now,
	}
}

// SetNotifier sets the receiver of due reminders
func (s *ReminderScheduler) SetNotifier(notify Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = notify
}

// Check returns one notification per task whose deadline time-of-day is at
// or before the time-of-day of now, in store order
func (s *ReminderScheduler) Check(now time.Time) []Notification {
	current := models.TimeOfDay(now)

	var due []Notification
	for _, task := range s.tasks.List() {
		if task.Deadline == nil {
			continue
		}
		if current >= models.TimeOfDay(*task.Deadline) {
			due = append(due, Notification{
				TaskID:   task.ID,
				TaskName: task.Name,
				Deadline: *task.Deadline,
			})
		}
	}
	return due
}

// Tick performs one scan through the dispatcher and delivers the results
func (s *ReminderScheduler) Tick() {
	s.dispatch(s.scan)
}

func (s *ReminderScheduler) scan() {
	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			s.pending = 0
			s.mu.Unlock()
			s.logger.Error(schedulerComponent, fmt.Errorf("%v", r), "reminder scan panicked", nil)
		}
	}()

	s.mu.Lock()
	if s.pending > 0 {
		open := s.pending
		s.skipped++
		s.mu.Unlock()
		s.logger.Debug(schedulerComponent, "scan skipped, reminders still open", map[string]interface{}{
			"open": open,
		})
		return
	}
	s.mu.Unlock()

	due := s.Check(s.clock())

	s.mu.Lock()
	notify := s.notify
	s.scanned++
	if notify != nil {
		s.pending = len(due)
		s.notified += len(due)
	}
	s.mu.Unlock()

	if len(due) > 0 {
		s.logger.Debug(schedulerComponent, "reminders due", map[string]interface{}{
			"count": len(due),
		})
	}

	if notify == nil {
		return
	}
	for _, n := range due {
		notify(n, s.closer())
	}
}

// closer returns the dismissal callback for one delivered reminder; extra
// calls are ignored
func (s *ReminderScheduler) closer() func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.pending > 0 {
				s.pending--
			}
		})
	}
}

// PendingReminders returns how many delivered reminders are still open
func (s *ReminderScheduler) PendingReminders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Start arms the repeating timer. Starting a running scheduler is a no-op.
func (s *ReminderScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if s.interval < time.Second {
		return fmt.Errorf("reminder interval %s is below one second", s.interval)
	}

	cronLogger := logger.NewCronLogger(s.logger, schedulerComponent)
	s.cron = cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger)),
	)
	s.entryID = s.cron.Schedule(cron.Every(s.interval), cron.FuncJob(s.Tick))
	s.cron.Start()
	s.running = true

	s.logger.Info(schedulerComponent, "reminder checks scheduled", map[string]interface{}{
		"interval": s.interval.String(),
	})
	return nil
}

// Stop disarms the timer and waits briefly for a tick in flight
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	c := s.cron
	s.running = false
	s.cron = nil
	s.mu.Unlock()

	ctx := c.Stop()
	waitCtx, cancel := context.WithTimeout(ctx, stopTimeout)
	defer cancel()
	<-waitCtx.Done()

	if ctx.Err() == nil {
		s.logger.Warning(schedulerComponent, "tick still running after stop timeout", nil)
	}
	s.logger.Info(schedulerComponent, "reminder checks stopped", s.Stats())
}

// Shutdown stops the scheduler
func (s *ReminderScheduler) Shutdown() {
	s.Stop()
}

// IsRunning reports whether the timer is armed
func (s *ReminderScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextRun returns when the next scan is due, or the zero time when stopped
func (s *ReminderScheduler) NextRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

// Stats returns scan counters for logging
func (s *ReminderScheduler) Stats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]interface{}{
		"scans":         s.scanned,
		"skipped":       s.skipped,
		"notifications": s.notified,
	}
}

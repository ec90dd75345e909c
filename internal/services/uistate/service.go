package uistate

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"ledgerdesk/internal/domain"
)

// defaultTTL is how long a notification stays in the queue before its
// scheduled removal fires.
const defaultTTL = 5 * time.Second

// Fixed titles per notification type.
const (
	titleSuccess = "Success"
	titleError   = "Error"
	titleWarning = "Warning"
	titleInfo    = "Info"
)

// Service implements the global UI state. Safe for concurrent use.
type Service struct {
	ttl time.Duration

	mu            sync.Mutex
	notifications []domain.Notification
	timers        map[domain.NotificationID]*time.Timer
	sidebarOpen   bool
	darkMode      bool
	loading       bool
}

// Option overrides Service defaults.
type Option func(*Service)

// WithTTL sets the notification lifetime. Tests use this to avoid
// real five second waits.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

// New constructs an empty UI state.
func New(opts ...Option) *Service {
	s := &Service{
		ttl:    defaultTTL,
		timers: make(map[domain.NotificationID]*time.Timer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ShowSuccess enqueues a success notification.
func (s *Service) ShowSuccess(message string) domain.NotificationID {
	return s.show(domain.NotifySuccess, titleSuccess, message)
}

// ShowError enqueues an error notification.
func (s *Service) ShowError(message string) domain.NotificationID {
	return s.show(domain.NotifyError, titleError, message)
}

// ShowWarning enqueues a warning notification.
func (s *Service) ShowWarning(message string) domain.NotificationID {
	return s.show(domain.NotifyWarning, titleWarning, message)
}

// ShowInfo enqueues an info notification.
func (s *Service) ShowInfo(message string) domain.NotificationID {
	return s.show(domain.NotifyInfo, titleInfo, message)
}

// show enqueues a notification and schedules its own removal. Each entry
// owns an independent timer; the timer is cancelled if the entry is
// removed early so it never fires against freed state.
func (s *Service) show(
	typ domain.NotificationType,
	title, message string,
) domain.NotificationID {
	id := domain.NotificationID(uuid.NewString())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, domain.Notification{
		ID:        id,
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	})
	s.timers[id] = time.AfterFunc(s.ttl, func() {
		s.RemoveNotification(id)
	})
	return id
}

// RemoveNotification drops a notification and cancels its expiry timer.
// Removing an unknown or already-removed id is a no-op.
func (s *Service) RemoveNotification(id domain.NotificationID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// Notifications returns the queue in enqueue order.
func (s *Service) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// ToggleSidebar flips the sidebar flag and reports the new value.
func (s *Service) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = !s.sidebarOpen
	return s.sidebarOpen
}

// SetDarkMode sets the theme flag.
func (s *Service) SetDarkMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = on
}

// DarkMode reports the theme flag.
func (s *Service) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// SetLoading sets the global loading flag.
func (s *Service) SetLoading(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = on
}

// Loading reports the global loading flag.
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

var _ domain.UIState = (*Service)(nil)

package interfaces

import (
	"context"

	domaintypes "ledgerdesk/internal/domain/types"
)

// SessionService owns the current identity and token and serializes every
// operation that can change them. Network failures never escape as raw
// errors; each operation reports a uniform Result.
type SessionService interface {
	// Bootstrap runs the one-time startup validation: with a persisted token
	// it enters Checking and calls the who-am-I endpoint, logging out on any
	// failure; without one it settles in Unauthenticated.
	Bootstrap(ctx context.Context) domaintypes.SessionState

	Login(ctx context.Context, email, password string) domaintypes.Result
	Register(ctx context.Context, reg domaintypes.Registration) domaintypes.Result
	UpdateProfile(ctx context.Context, update domaintypes.ProfileUpdate) domaintypes.Result
	ChangePassword(ctx context.Context, change domaintypes.PasswordChange) domaintypes.Result
	Refresh(ctx context.Context) domaintypes.Result

	// Logout is synchronous and always succeeds locally; the backend call is
	// fire-and-forget.
	Logout(ctx context.Context)

	State() domaintypes.SessionState
	CurrentUser() (domaintypes.User, bool)
	IsAuthenticated() bool
}

// UIState is the non-auth cross-cutting state consumed by the presentation
// layer: the notification queue plus a few boolean flags.
type UIState interface {
	ShowSuccess(message string) domaintypes.NotificationID
	ShowError(message string) domaintypes.NotificationID
	ShowWarning(message string) domaintypes.NotificationID
	ShowInfo(message string) domaintypes.NotificationID
	RemoveNotification(id domaintypes.NotificationID)
	Notifications() []domaintypes.Notification

	ToggleSidebar() bool
	SetDarkMode(on bool)
	DarkMode() bool
	SetLoading(on bool)
	Loading() bool
}

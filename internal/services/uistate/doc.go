// Package uistate holds cross-cutting presentation state.
//
// It keeps the notification queue, where every entry schedules its own
// removal and removal is idempotent, plus the sidebar, theme and loading
// flags.
package uistate

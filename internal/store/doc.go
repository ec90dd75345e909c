// Package store persists client-side state to the config directory.
//
// Writes go through a temp file and rename so a crash never leaves a
// half-written file behind.
package store

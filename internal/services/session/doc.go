// Package session owns the authenticated identity.
//
// It runs the Unauthenticated/Checking/Authenticated/Failed state machine,
// funnels every token mutation through the credential store, and reports
// each operation as a uniform Result instead of a raw error.
package session

// Package backend is the single outbound HTTP gateway to the SaaS API.
//
// Every request is decorated with the persisted bearer token when one
// exists, bounded by a shared timeout, and unwrapped from the backend's
// {success, data, message} envelope. A 401 on any endpoint clears the
// credential store and fires the unauthorized hook before the error is
// returned to the caller.
package backend

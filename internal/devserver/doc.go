// Package devserver is an in-memory implementation of the backend REST
// contract, used for local development and integration tests. It serves the
// same envelope, pagination and auth semantics as the hosted product but
// keeps everything in process: bcrypt password hashes, signed JWT token
// pairs, and mutex-guarded maps instead of a database.
package devserver

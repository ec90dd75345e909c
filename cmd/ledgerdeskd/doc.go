// Command ledgerdeskd runs the in-memory development backend.
//
// It serves the full REST contract on one port and keeps all data in
// process; restarting it drops every account and record. Useful for
// trying the CLI without a hosted deployment:
//
//	ledgerdeskd -addr :8080
//	ledgerdesk --base-url http://127.0.0.1:8080 register owner@example.com "Owner"
package main

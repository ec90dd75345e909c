// Package commands defines the ledgerdesk CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - login / logout / register   Manage the session
//   - whoami                      Show and update the signed-in profile
//   - profile                     Manage named backend profiles
//   - invoices                    Browse invoices and billing stats
//   - customers                   Browse CRM customers and follow-ups
//   - ai                          Ask the assistant and review history
//   - reports                     Dashboards, KPIs and generated reports
//
// # Implementation
//
// The root command resolves the backend base URL from flags or the profile
// store and builds the dependency graph (credential store, backend client,
// services) before any subcommand runs, so handlers share one app context.
package commands

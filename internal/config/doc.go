// Package config reads and writes named connection profiles.
//
// Profiles live in a YAML file under the application home directory and
// map a profile name to the backend base URL, so one install can talk to
// several deployments.
package config

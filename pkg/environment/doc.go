// Package environment names the deployment environment a process runs in.
//
// Parse turns a configuration value into one of Development, Staging or
// Production; the logger package uses it to choose output defaults.
package environment

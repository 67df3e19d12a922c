// Package commands defines the ipecho CLI.
//
// Commands
//
//   - serve     Run the HTTP service (default when no command is given)
//   - resolve   Print the address the service would report for the given
//     X-Forwarded-For value and peer address
//
// Global flags --env-file, --log-level and --log-format apply to every
// command. Flags override values read from the environment.
package commands

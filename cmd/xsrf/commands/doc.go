// Package commands defines the xsrf CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - new-session  Create a session token and store it in the vault
//   - mint         Derive a request token from the stored session token
//   - verify       Check an encoded request token against the session token
//   - fingerprint  Print the stored session token's fingerprint
//   - rotate       Replace the stored session token with a fresh one
//
// # Implementation
//
// The root command resolves the state directory and opens the vault before
// any subcommand runs. The vault holds the session token encrypted under the
// --passphrase flag; the token itself is only printed by new-session and
// rotate, for the caller to place in its session storage.
package commands

// Package cli provides the interactive hacksnooze terminal client.
//
// It wires configuration, the local session database, the HTTP API client,
// the services and the view controller, then runs a REPL that maps commands
// onto view triggers and prints the visible panels after every command.
//
// Commands:
//   - home, submit, favorites, mine, profile   navigation
//   - login, register, logout                  session
//   - post                                     fill in the submit form
//   - star <n|id>, trash <n|id>                act on a listed story
//   - show, help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

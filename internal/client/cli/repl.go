package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/hacksnooze/internal/client/view"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	commands() []string
	Home(ctx context.Context) error
	Submit(ctx context.Context) error
	Post(ctx context.Context) error
	Favorites(ctx context.Context) error
	Mine(ctx context.Context) error
	Profile(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Star(ctx context.Context, ref string) error
	Trash(ctx context.Context, ref string) error
	Show(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the hacksnooze client.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit". Prompts issued by the commands read from the same reader.
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                  show available commands
//	  - home                  all stories
//	  - login | register      authenticate or create an account
//	  - show                  print the current panels again
//	  - exit | quit           leave the program
//
//	Logged in:
//	  - home, submit, favorites, mine, profile
//	  - post                  submit a story
//	  - star <n|id>           toggle a favorite
//	  - trash <n|id>          delete one of your stories
//	  - logout
//
// Errors returned by command handlers are ignored here; handlers report their
// own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("hs %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: " + strings.Join(a.commands(), ", "))

		case "home":
			_ = a.Home(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "post":
			_ = a.Post(ctx)

		case "favorites", "favs":
			_ = a.Favorites(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "star", "trash":
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <n|id>", cmd))
				continue
			}
			if cmd == "star" {
				_ = a.Star(ctx, args[0])
			} else {
				_ = a.Trash(ctx, args[0])
			}

		case "show", "ls":
			_ = a.Show(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

// navCommands maps the controller's navigation entries to REPL commands.
var navCommands = map[view.Trigger][]string{
	view.Home:         {"home"},
	view.NavLogin:     {"login", "register"},
	view.NavSubmit:    {"submit", "post"},
	view.NavFavorites: {"favorites"},
	view.NavMyStories: {"mine"},
	view.NavProfile:   {"profile"},
	view.NavLogout:    {"logout"},
}

// helpCommands lists the commands for the given navigation entries. Story
// actions are only offered to a logged-in user.
func helpCommands(nav []view.Trigger, loggedIn bool) []string {
	var out []string
	for _, tr := range nav {
		out = append(out, navCommands[tr]...)
	}
	if loggedIn {
		out = append(out, "star <n|id>", "trash <n|id>")
	}
	return append(out, "show", "exit")
}

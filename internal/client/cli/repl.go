package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Home(ctx context.Context) error
	Tips(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Eco-Trackify client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands map one-to-one onto the web client's routes and nav actions:
//
//	login  — sign in (routes "/" and "/login")
//	signup — create an account ("/signup")
//	home   — footprint form and chart ("/home")
//	tips   — community tips ("/tips")
//	logout — clear the session and return to the entry route
//
// None of the commands require a session; a stale or missing token simply
// makes the underlying call fail. Errors returned by command handlers are
// ignored here; handlers display their own failures. This keeps the loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("eco %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: login, signup, home, tips, logout, exit")

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "home":
			_ = a.Home(ctx)

		case "tips":
			_ = a.Tips(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

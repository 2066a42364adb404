package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives. App satisfies it;
// tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
//
//	Not logged in: help, register, login, exit | quit
//	Logged in:     help, whoami, logout, exit | quit
//
// Commands from the other state are reported as unknown. Handler errors
// are not fatal: handlers print their own messages and the loop goes on.
// The loop ends on EOF, exit/quit or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(w, "aqi %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if a.isLoggedIn() {
			switch cmd {
			case "help":
				fmt.Fprintln(w, "Available commands: whoami, logout, exit")
			case "whoami":
				_ = a.WhoAmI(ctx)
			case "logout":
				_ = a.Logout(ctx)
			case "exit", "quit":
				fmt.Fprintln(w, "Bye!")
				return
			default:
				fmt.Fprintln(w, "Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			fmt.Fprintln(w, "Available commands: register, login, exit")
		case "register", "signup":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Species(ctx context.Context, args []string) error
	Breeds(ctx context.Context, args []string) error
	Animals(ctx context.Context, args []string) error
	AddAnimal(ctx context.Context) error
	SetStatus(ctx context.Context, args []string) error
	Volunteers(ctx context.Context) error
	Requests(ctx context.Context) error
	Approve(ctx context.Context, args []string) error
	Reject(ctx context.Context, args []string) error
	Discussions(ctx context.Context) error
	Messages(ctx context.Context, args []string) error
	Post(ctx context.Context, args []string) error
	Watch(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Goto(ctx context.Context, args []string) error
}

// runREPL starts a read–eval–print loop for the portal.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("shelter %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Lists: species [search], breeds <speciesID>, animals [status], volunteers, requests, discussions")
				printlnFn("Paging: next, prev, page <n>")
				printlnFn("Actions: addanimal, status <animalID> <status>, approve <id>, reject <id>, post <discussionID>, watch <discussionID>, messages <discussionID>, upload <path>")
				printlnFn("Session: whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "species":
			_ = a.Species(ctx, args)

		case "breeds":
			_ = a.Breeds(ctx, args)

		case "animals":
			_ = a.Animals(ctx, args)

		case "addanimal":
			_ = a.AddAnimal(ctx)

		case "status":
			_ = a.SetStatus(ctx, args)

		case "volunteers":
			_ = a.Volunteers(ctx)

		case "requests":
			_ = a.Requests(ctx)

		case "approve":
			_ = a.Approve(ctx, args)

		case "reject":
			_ = a.Reject(ctx, args)

		case "discussions":
			_ = a.Discussions(ctx)

		case "messages":
			_ = a.Messages(ctx, args)

		case "post":
			_ = a.Post(ctx, args)

		case "watch":
			_ = a.Watch(ctx, args)

		case "upload":
			_ = a.Upload(ctx, args)

		case "n", "next":
			_ = a.Next(ctx)

		case "p", "prev":
			_ = a.Prev(ctx)

		case "page":
			_ = a.Goto(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("must be positive: %d", n)
	}
	return n, nil
}

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
	isLoggedIn() bool
	Home(ctx context.Context) error
	Gallery(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Exhibitions(ctx context.Context) error
	Tour(ctx context.Context, args []string) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Wish(ctx context.Context, args []string) error
	Review(ctx context.Context, args []string) error
	WishlistPage(ctx context.Context) error
	Buy(ctx context.Context, args []string) error
	PurchasesPage(ctx context.Context) error
	Dashboard(ctx context.Context, args []string) error
}

// runREPL starts the read–eval–print loop for the gallery CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands available to everyone:
//
//	help, home, gallery [search=… category=… era=… sort=…], show <id>,
//	exhibitions, tour [next|prev|<room>], login, register, exit
//
// Logged in adds:
//
//	whoami, wish <id>, wishlist, review <id> <rating> <text…>, buy <id>,
//	purchases, dashboard, logout
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Welcome to the virtual gallery (type 'help' for commands)")
	for {
		printlnFn(fmt.Sprintf("gallery> %s > ", statusFn()))
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
			printlnFn("Browse: home, gallery [search=… category=… era=… sort=…], show <id>, exhibitions, tour [next|prev|<room>]")
			if a.isLoggedIn() {
				printlnFn("Account: whoami, wish <id>, wishlist, review <id> <rating> <text…>, buy <id>, purchases, dashboard, logout, exit")
			} else {
				printlnFn("Account: login, register, exit")
			}

		case "home":
			_ = a.Home(ctx)

		case "g", "gallery":
			_ = a.Gallery(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "exhibitions":
			_ = a.Exhibitions(ctx)

		case "tour":
			_ = a.Tour(ctx, args)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "wish":
			_ = a.Wish(ctx, args)

		case "review":
			_ = a.Review(ctx, args)

		case "wishlist":
			_ = a.WishlistPage(ctx)

		case "buy":
			_ = a.Buy(ctx, args)

		case "purchases":
			_ = a.PurchasesPage(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

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
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Register(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Invoices(ctx context.Context, args []string) error
	Invoice(ctx context.Context, id string) error
	SetStatus(ctx context.Context, args []string) error
	Search(ctx context.Context, query string) error
	Emitters(ctx context.Context, args []string) error
	Emitter(ctx context.Context, ruc string) error
	Companies(ctx context.Context) error
	Company(ctx context.Context, key string) error
	AddCompany(ctx context.Context) error
	EditCompany(ctx context.Context, id string) error
	Dashboard(ctx context.Context, args []string) error
	Metrics(ctx context.Context) error
	Reports(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the FacturaDash CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fd %s> ", statusFn()))
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
				printlnFn("Available commands: invoices, invoice <id>, setstatus <id> <estado>, search <query>,")
				printlnFn("  emitters [top], emitter <ruc>, companies, company <id|ruc>, addcompany, editcompany <id>,")
				printlnFn("  dashboard [charts|data], metrics, reports <dashboard|sales|ocr|activity>, export <tipo> <formato>,")
				printlnFn("  whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "invoices":
			_ = a.Invoices(ctx, args)

		case "invoice":
			if len(args) == 0 {
				printlnFn("Usage: invoice <id>")
				continue
			}
			_ = a.Invoice(ctx, args[0])

		case "setstatus":
			if len(args) < 2 {
				printlnFn("Usage: setstatus <id> <estado> [comment]")
				continue
			}
			_ = a.SetStatus(ctx, args)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <query>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "emitters":
			_ = a.Emitters(ctx, args)

		case "emitter":
			if len(args) == 0 {
				printlnFn("Usage: emitter <ruc>")
				continue
			}
			_ = a.Emitter(ctx, args[0])

		case "companies":
			_ = a.Companies(ctx)

		case "company":
			if len(args) == 0 {
				printlnFn("Usage: company <id|ruc>")
				continue
			}
			_ = a.Company(ctx, args[0])

		case "addcompany":
			_ = a.AddCompany(ctx)

		case "editcompany":
			if len(args) == 0 {
				printlnFn("Usage: editcompany <id>")
				continue
			}
			_ = a.EditCompany(ctx, args[0])

		case "dashboard":
			_ = a.Dashboard(ctx, args)

		case "metrics":
			_ = a.Metrics(ctx)

		case "reports":
			if len(args) == 0 {
				printlnFn("Usage: reports <dashboard|sales|ocr|activity>")
				continue
			}
			_ = a.Reports(ctx, args)

		case "export":
			if len(args) < 2 {
				printlnFn("Usage: export <tipo> <formato>")
				continue
			}
			_ = a.Export(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

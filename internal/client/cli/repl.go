package cli

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/taskhub/taskhub/internal/client/client"
)

// errUsage makes the REPL print the command's usage line.
var errUsage = errors.New("usage")

type command struct {
	usage string
	auth  bool
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"register":      {usage: "register", run: (*App).register},
	"login":         {usage: "login", run: (*App).login},
	"logout":        {usage: "logout", auth: true, run: (*App).logout},
	"deleteaccount": {usage: "deleteaccount", auth: true, run: (*App).deleteAccount},
	"tags":          {usage: "tags", auth: true, run: (*App).listTags},
	"addtag":        {usage: "addtag <name>", auth: true, run: (*App).addTag},
	"deltag":        {usage: "deltag <id>", auth: true, run: (*App).deleteTag},
	"tasks":         {usage: "tasks", auth: true, run: (*App).listTasks},
	"range":         {usage: "range <start YYYY-MM-DD> <end YYYY-MM-DD>", auth: true, run: (*App).listRange},
	"filter":        {usage: "filter", auth: true, run: (*App).filterTasks},
	"add":           {usage: "add", auth: true, run: (*App).addTask},
	"done":          {usage: "done <id>", auth: true, run: (*App).markDone},
	"undone":        {usage: "undone <id>", auth: true, run: (*App).markUndone},
	"rename":        {usage: "rename <id> <title>", auth: true, run: (*App).renameTask},
	"deltask":       {usage: "deltask <id>", auth: true, run: (*App).deleteTask},
}

func (a *App) prompt() string {
	if a.isLoggedIn() {
		return "taskhub (" + a.userName + ")> "
	}
	return "taskhub> "
}

// runREPL reads commands line by line until "exit", "quit" or end of input.
func (a *App) runREPL(ctx context.Context) {
	for {
		a.printf("%s", a.prompt())
		line, err := a.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			a.printf("\n")
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			a.printHelp()
			continue
		case "exit", "quit":
			a.printf("Bye!\n")
			return
		}

		cmd, ok := commands[name]
		if !ok {
			a.printf("Unknown command: %s\n", name)
			continue
		}
		if cmd.auth && !a.isLoggedIn() {
			a.printf("Please login first\n")
			continue
		}

		if err := cmd.run(a, ctx, args); err != nil {
			a.report(ctx, cmd, err)
		}
	}
}

func (a *App) report(ctx context.Context, cmd command, err error) {
	switch {
	case errors.Is(err, errUsage):
		a.printf("Usage: %s\n", cmd.usage)
	case errors.Is(err, client.ErrUnauthorized) && a.isLoggedIn():
		a.dropSession(ctx)
		a.printf("Session is no longer valid, please login again\n")
	default:
		a.printf("Error: %s\n", err)
	}
}

func (a *App) printHelp() {
	names := make([]string, 0, len(commands))
	for name, cmd := range commands {
		if cmd.auth == a.isLoggedIn() {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	a.printf("Available commands:\n")
	for _, name := range names {
		a.printf("  %s\n", commands[name].usage)
	}
	a.printf("  help\n  exit\n")
}

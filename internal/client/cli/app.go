package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/taskhub/taskhub/internal/client/client"
	"github.com/taskhub/taskhub/internal/client/config"
	"github.com/taskhub/taskhub/internal/client/session"
)

type sessionStore interface {
	Save(ctx context.Context, s session.Session) error
	Load(ctx context.Context) (session.Session, error)
	Clear(ctx context.Context) error
	Close() error
}

type App struct {
	config   *config.Config
	client   client.Client
	sessions sessionStore
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	store, err := session.Open(ctx, c.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("error opening session file: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		store.Close()
		return nil, err
	}

	return newApp(c, apiClient, store, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, store sessionStore, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, sessions: store, reader: bufio.NewReader(in), out: out}
}

// Run restores a saved login, checks the server and starts the REPL. It
// returns when the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	defer a.sessions.Close()

	a.printf("Welcome to TaskHub CLI (type 'help' for commands)\n")

	if err := a.client.Ping(ctx); err != nil {
		a.printf("Warning: %s\n", err)
	}

	a.restoreSession(ctx)
	a.runREPL(ctx)
}

func (a *App) restoreSession(ctx context.Context) {
	s, err := a.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			a.printf("Error: %s\n", err)
		}
		return
	}
	a.client.SetToken(s.Token)
	a.userName = s.Username
	a.printf("Logged in as %s\n", s.Username)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

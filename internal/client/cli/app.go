package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/hacksnooze/internal/client/client"
	"github.com/dmitrijs2005/hacksnooze/internal/client/config"
	"github.com/dmitrijs2005/hacksnooze/internal/client/render"
	"github.com/dmitrijs2005/hacksnooze/internal/client/services"
	"github.com/dmitrijs2005/hacksnooze/internal/client/view"
	"github.com/dmitrijs2005/hacksnooze/internal/filex"
	"github.com/dmitrijs2005/hacksnooze/internal/logging"
)

type App struct {
	config *config.Config
	db     *sql.DB
	api    client.Client
	log    logging.Logger
	render render.Renderer
	reader *bufio.Reader
	out    io.Writer

	ctrl *view.Controller
}

// NewApp opens the session database and builds the API client described by
// c. Logs go to stderr, the UI to stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel)

	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	var r render.Renderer = render.NewText(os.Stdout)
	if c.RenderMode == config.RenderHTML {
		r = render.NewHTML()
	}

	return newApp(c, db, api, log, r, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, db *sql.DB, api client.Client, log logging.Logger, r render.Renderer, reader *bufio.Reader, out io.Writer) *App {
	return &App{config: c, db: db, api: api, log: log, render: r, reader: reader, out: out}
}

// boot builds fresh services and a fresh controller over the same database
// and API client, then computes the initial view. It is also used after
// logout.
func (a *App) boot(ctx context.Context) {
	sessions := services.NewSessionStore(a.db)
	catalog := services.NewStoryCatalog(a.api, a.config.StoryLimit, a.log)
	users := services.NewUserService(a.api, sessions, catalog, a.log)
	a.ctrl = view.NewController(sessions, users, catalog, a.render, a.log)

	if err := a.ctrl.Boot(ctx); err != nil {
		a.report(fmt.Errorf("could not load stories: %w", err))
	}
}

// Run boots the client and serves the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to hacksnooze (type 'help' for commands)")
	a.boot(ctx)
	_ = a.Show(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.ctrl != nil && a.ctrl.LoggedIn()
}

func (a *App) commands() []string {
	return helpCommands(a.ctrl.Nav(), a.isLoggedIn())
}

func (a *App) getStatus() string {
	who := "guest"
	if u := a.ctrl.User(); u != nil {
		who = u.Username
	}
	var names []string
	for _, p := range a.ctrl.Visible() {
		names = append(names, p.String())
	}
	if len(names) == 0 {
		return fmt.Sprintf("(%s)", who)
	}
	return fmt.Sprintf("(%s) %s", who, strings.Join(names, "+"))
}

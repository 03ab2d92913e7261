package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/MajhiMohit/fsd-16-project/internal/access"
	"github.com/MajhiMohit/fsd-16-project/internal/catalog"
	"github.com/MajhiMohit/fsd-16-project/internal/config"
	"github.com/MajhiMohit/fsd-16-project/internal/directory"
	"github.com/MajhiMohit/fsd-16-project/internal/logging"
	"github.com/MajhiMohit/fsd-16-project/internal/models"
	"github.com/MajhiMohit/fsd-16-project/internal/session"
	"github.com/MajhiMohit/fsd-16-project/internal/state"

	_ "modernc.org/sqlite"
)

// App holds everything the REPL commands operate on.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Store
	catalog *catalog.Catalog
	dir     *directory.Directory
	reader  *bufio.Reader

	// currentRoom is the virtual-tour position, an index into
	// catalog.Rooms().
	currentRoom int
}

// NewApp opens the state database, seeds the catalog and directory, and
// builds the session store.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	st, db, err := state.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	dir := directory.New(directory.Seed())
	sess := session.New(st, dir, log, session.Options{AuthLatency: cfg.AuthLatency})

	return &App{
		config:  cfg,
		log:     log,
		db:      db,
		session: sess,
		catalog: catalog.NewSeeded(),
		dir:     dir,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run hydrates the session and enters the REPL, blocking until exit.
func (a *App) Run(ctx context.Context) {
	a.session.Hydrate(ctx)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the state database.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status renders the prompt segment: "guest", or "name (role)".
func (a *App) status() string {
	u, ok := a.session.CurrentUser()
	if !ok {
		return "guest"
	}
	return u.Name + " (" + u.Role.String() + ")"
}

// navigate is the CLI analog of a router redirect: it announces the target
// route and renders that route's page.
func (a *App) navigate(ctx context.Context, route access.Route) {
	printlnFn("→ " + string(route))
	switch route {
	case access.RouteLogin:
		_ = a.Login(ctx)
	case access.RouteGallery:
		_ = a.Gallery(ctx, nil)
	case access.RouteAdminHome, access.RouteArtistHome, access.RouteCuratorHome:
		_ = a.Dashboard(ctx, nil)
	case access.RouteRoot:
		_ = a.Home(ctx)
	}
}

// guard evaluates the access guard for a protected view. On a redirect
// outcome it navigates there; the caller may render the protected content
// only when the result is OutcomeAllow.
func (a *App) guard(ctx context.Context, allowed []models.Role) bool {
	d := access.Check(a.session, allowed, "")
	switch d.Outcome {
	case access.OutcomeLoading:
		printlnFn("Loading session…")
		return false
	case access.OutcomeRedirect:
		a.navigate(ctx, d.Target)
		return false
	}
	return true
}

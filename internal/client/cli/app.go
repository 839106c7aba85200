package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/asaraswat/ecotrackify/internal/client/api"
	"github.com/asaraswat/ecotrackify/internal/client/config"
	"github.com/asaraswat/ecotrackify/internal/client/services"
	"github.com/asaraswat/ecotrackify/internal/client/session"
	"github.com/asaraswat/ecotrackify/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the whole client together: config, session database, API
// gateway, services, views, router, and the REPL that drives them.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	auth       services.AuthService
	footprints services.FootprintService
	tips       services.TipService

	router *Router
	nav    *Nav
	login  *LoginView
	signup *SignupView
	home   *HomeView
	tipsV  *TipsView

	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault(os.Stderr, slog.LevelWarn)

	store, db, err := session.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	hc := &http.Client{Timeout: c.RequestTimeout}
	gateway := api.NewHTTPClient(c.ServerBaseURL, hc, log)

	auth := services.NewAuthService(gateway, store)
	footprints := services.NewFootprintService(gateway, store)
	tips := services.NewTipService(gateway, store)

	reader := bufio.NewReader(os.Stdin)
	router := NewRouter()

	app := &App{
		config:     c,
		log:        log,
		db:         db,
		auth:       auth,
		footprints: footprints,
		tips:       tips,
		router:     router,
		reader:     reader,
	}

	app.login = NewLoginView(auth, router, reader, os.Stdout, log)
	app.signup = NewSignupView(auth, router, reader, os.Stdout, log)
	app.home = NewHomeView(footprints, reader, os.Stdout, log)
	app.tipsV = NewTipsView(tips, reader, os.Stdout, log)
	app.nav = NewNav(auth, router, os.Stdout)

	router.Handle("/", app.login)
	router.Handle("/login", app.login)
	router.Handle("/signup", app.signup)
	router.Handle("/home", app.home)
	router.Handle("/tips", app.tipsV)

	return app, nil
}

// Login shows the sign-in view (routes "/" and "/login").
func (a *App) Login(ctx context.Context) error {
	return a.router.Navigate(ctx, "/login")
}

// Signup shows the account-creation view ("/signup").
func (a *App) Signup(ctx context.Context) error {
	return a.router.Navigate(ctx, "/signup")
}

// Home shows the footprint form and chart ("/home").
func (a *App) Home(ctx context.Context) error {
	return a.router.Navigate(ctx, "/home")
}

// Tips shows the community tips view ("/tips").
func (a *App) Tips(ctx context.Context) error {
	return a.router.Navigate(ctx, "/tips")
}

// Logout clears the session and returns to the entry route.
func (a *App) Logout(ctx context.Context) error {
	return a.nav.Logout(ctx)
}

func (a *App) getStatus() string {
	if a.router.Current() == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.router.Current())
}

// Run shows the entry route and hands control to the REPL until EOF or exit.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	fmt.Println("Welcome to Eco-Trackify (type 'help' for commands)")

	if err := a.router.Navigate(ctx, "/"); err != nil {
		a.log.Error(ctx, "entry route failed", "error", err)
	}

	scanner := bufio.NewScanner(a.reader)
	runREPL(ctx, a, a.getStatus, scanner)
}

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/km-arc/go-forms/framework/config"
	"github.com/km-arc/go-forms/framework/forms"
	gohttp "github.com/km-arc/go-forms/framework/http"
	"github.com/km-arc/go-forms/framework/http/controllers"
	"github.com/km-arc/go-forms/framework/logging"
	"github.com/km-arc/go-forms/framework/routing"
	"github.com/km-arc/go-forms/resources"
)

const shutdownTimeout = 5 * time.Second

// Application is the top-level application: configuration, logger, the form
// registry and the HTTP surface built on them.
type Application struct {
	Config *config.Config
	Log    *slog.Logger
	Forms  *forms.Registry
	Router *routing.Router
	Views  *gohttp.ViewEngine
}

// New loads configuration from envFiles (default ".env") and bootstraps the
// application, logging to stderr.
//
//	app, err := app.New()
//	err = app.Run(ctx)
func New(envFiles ...string) (*Application, error) {
	return NewWithConfig(config.Load(envFiles...), os.Stderr)
}

// NewWithConfig bootstraps the application from an already loaded config.
func NewWithConfig(cfg *config.Config, logOut io.Writer) (*Application, error) {
	policy, err := forms.ParsePolicy(cfg.Forms.Policy)
	if err != nil {
		return nil, err
	}
	log := logging.New(cfg.Log, logOut).With("app", cfg.App.Name)

	a := &Application{
		Config: cfg,
		Log:    log,
		Forms:  forms.NewRegistry(policy, log, forms.Builtin()...),
		Router: routing.New(),
		Views:  gohttp.NewViewEngine(resources.Views(), ".html"),
	}
	a.registerRoutes()
	return a, nil
}

func (a *Application) registerRoutes() {
	fc := &controllers.FormController{
		Forms:   a.Forms,
		Views:   a.Views,
		Log:     a.Log,
		AppName: a.Config.App.Name,
	}
	throttle := routing.Throttle(a.Config.Forms.SubmitRate, a.Config.Forms.SubmitBurst)
	r := a.Router

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		gohttp.NewResponse(w).RedirectTo("/forms")
	})
	r.Get("/forms", fc.Index)
	r.Get("/forms/{form}", fc.Show)
	r.Group(func(g *routing.Router) {
		g.Middleware(throttle)
		g.Post("/forms/{form}", fc.Store)
	})

	r.Prefix("/api/forms/{form}", func(api *routing.Router) {
		api.Post("/fields/{field}", fc.Field)
		api.Post("/validate", fc.Validate)
		api.Group(func(g *routing.Router) {
			g.Middleware(throttle)
			g.Post("/submit", fc.Submit)
		})
	})
}

// Run serves HTTP on APP_PORT until ctx is cancelled, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + a.Config.App.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		a.Log.Info("server listening",
			"url", fmt.Sprintf("http://localhost%s", srv.Addr),
			"env", a.Config.App.Env,
			"policy", a.Forms.Policy().String())
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.Log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }

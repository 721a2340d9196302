// Package todostate is the client-side state core for a task client:
// an authenticated session, a cached task list with a derived filtered
// view, and per-user favorites persisted across sessions. It is a
// library; the presentation layer supplies every trigger.
package todostate

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"todostate/pkg/config"
	"todostate/pkg/favorites"
	"todostate/pkg/notify"
	"todostate/pkg/recordapi"
	"todostate/pkg/recordapi/httpapi"
	"todostate/pkg/session"
	"todostate/pkg/storage"
	"todostate/pkg/storage/memkv"
	"todostate/pkg/storage/sqlitekv"
	"todostate/pkg/tasks"
)

// Options configures App construction. The zero value is usable:
// defaults come from the config package.
type Options struct {
	// BaseURL is the record service base URL.
	BaseURL string

	// DataDir is the durable data directory.
	DataDir string

	// HTTPClient overrides the transport used by the record service client.
	HTTPClient *http.Client

	// Client overrides the record service client entirely (for tests).
	Client recordapi.Client

	// Durable overrides the durable storage backend. When nil, a SQLite
	// database inside DataDir is opened.
	Durable storage.KV

	// ErrorTTL is the auto-expiry duration for login errors.
	ErrorTTL time.Duration

	// Logger receives structured logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// App wires the state core together.
type App struct {
	Session   *session.Manager
	Tasks     *tasks.Store
	Favorites *favorites.Store
	Notifier  *notify.Notifier

	durable storage.KV
}

// New constructs an App from opts.
func New(opts Options) (*App, error) {
	cfg := config.New(opts.DataDir)
	if opts.BaseURL != "" {
		cfg.APIURL = opts.BaseURL
	}
	if opts.ErrorTTL > 0 {
		cfg.ErrorTTL = opts.ErrorTTL
	}

	durable := opts.Durable
	if durable == nil {
		kv, err := sqlitekv.New(cfg.FavoritesDBPath())
		if err != nil {
			return nil, err
		}
		durable = kv
	}

	client := opts.Client
	if client == nil {
		c := httpapi.New(cfg.APIURL, opts.HTTPClient)
		c.SetLogger(opts.Logger)
		client = c
	}

	notifier := notify.New(cfg.ErrorTTL)
	favs := favorites.New(durable)
	favs.SetLogger(opts.Logger)

	sess := session.New(client, memkv.New(), notifier)
	sess.SetLogger(opts.Logger)

	taskStore := tasks.New(client, favs)
	taskStore.SetLogger(opts.Logger)

	return &App{
		Session:   sess,
		Tasks:     taskStore,
		Favorites: favs,
		Notifier:  notifier,
		durable:   durable,
	}, nil
}

// SignIn runs the login choreography: authenticate, load the user's
// favorites, fetch the task list. Returns false if login fails; the
// login error is readable via Session.Err.
func (a *App) SignIn(ctx context.Context, username, phone string) bool {
	if !a.Session.Login(ctx, username, phone) {
		return false
	}
	if u := a.Session.User(); u != nil {
		a.Favorites.Load(u.ID)
	}
	a.Tasks.Fetch(ctx)
	return true
}

// SignOut runs the logout choreography: clear the session and reset the
// in-memory favorites scope. The durable favorites survive for the next
// sign-in.
func (a *App) SignOut() {
	a.Session.Logout()
	a.Favorites.Clear()
}

// Close releases the durable storage backend.
func (a *App) Close() error {
	return a.durable.Close()
}

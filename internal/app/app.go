package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/middleware"
)

type App struct {
	log    *logrus.Logger
	config config.Config
	router *http.ServeMux
}

func New(log *logrus.Logger, c config.Config) *App {
	return &App{
		log:    log,
		config: c,
		router: http.NewServeMux(),
	}
}

// Handler wires the routes and middleware. It may only be called once.
func (a *App) Handler() (http.Handler, error) {
	if err := a.loadRoutes(); err != nil {
		return nil, err
	}
	return middleware.Wrap(
		a.router,
		middleware.Cors(a.config.AllowsOrigin),
		middleware.Logging(a.log),
		middleware.Recover(a.log),
	), nil
}

// Start listens on the configured address and serves until ctx is done.
func (a *App) Start(ctx context.Context) error {
	l, err := net.Listen("tcp", a.config.Addr)
	if err != nil {
		return fmt.Errorf("unable to listen: %w", err)
	}
	return a.Serve(ctx, l)
}

// Serve runs the server on l and shuts it down gracefully, within the
// configured timeout, once ctx is done.
func (a *App) Serve(ctx context.Context, l net.Listener) error {
	handler, err := a.Handler()
	if err != nil {
		l.Close()
		return err
	}

	server := &http.Server{
		Handler: handler,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	a.log.Infof("ready to serve @ %s", l.Addr())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Serve(l); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), a.config.ShutdownTimeout.Duration,
		)
		defer cancel()
		a.log.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

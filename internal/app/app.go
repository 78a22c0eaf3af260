package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/middleware"
	"github.com/vancomm/minefield/internal/session"
)

type App struct {
	logger  *slog.Logger
	router  *http.ServeMux
	session *session.Session
	ws      *config.WebSocket
}

func New(logger *slog.Logger, s *session.Session) (*App, error) {
	ws, err := config.NewWebSocket()
	if err != nil {
		return nil, fmt.Errorf("unable to read ws config: %w", err)
	}

	app := &App{
		logger:  logger,
		router:  http.NewServeMux(),
		session: s,
		ws:      ws,
	}
	app.loadRoutes()

	return app, nil
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Recover(a.logger),
		middleware.Logging(a.logger),
		middleware.Cors(),
	)
}

// Start serves on addr until ctx is cancelled, then shuts the server down.
func (a *App) Start(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening", slog.String("addr", addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}

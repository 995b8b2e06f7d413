package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"campnav/config"
	"campnav/internal/delivery"
	apimiddleware "campnav/internal/delivery/api/middleware"
	"campnav/internal/delivery/api/router"
	"campnav/internal/delivery/api/validator"
	"campnav/internal/delivery/middleware"
	"campnav/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

type apiServer struct {
	echo   *echo.Echo
	addr   string
	h2     *http2.Server
	logger *slog.Logger
}

// NewServer builds the echo server serving the JSON API and the dashboard.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	httpCfg := params.Cfg.HTTP

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = httpCfg.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = httpCfg.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = httpCfg.Timeouts.WriteTimeout
	e.Server.IdleTimeout = httpCfg.Timeouts.IdleTimeout
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError

	// Order matters: the request ID must exist before the access log reads it.
	// Body limits are set per route group by the router.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		echomiddleware.CORS(),
		echomiddleware.Secure(),
	)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		echo:   e,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(httpCfg.Port)),
		h2:     &http2.Server{IdleTimeout: httpCfg.Timeouts.IdleTimeout},
		logger: params.Logger,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.shutdown})

	return srv, nil
}

// Serve blocks until the server is shut down. HTTP/2 is served in cleartext.
func (s *apiServer) Serve(context.Context) error {
	s.logger.Info("HTTP server listening", slog.String("addr", s.addr))

	err := s.echo.StartH2CServer(s.addr, s.h2)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *apiServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("HTTP server shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}

package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"ecommerce/config"
	"ecommerce/internal/delivery"
	httpmiddleware "ecommerce/internal/delivery/http/middleware"
	"ecommerce/internal/delivery/http/router"
	"ecommerce/internal/delivery/http/validator"
	"ecommerce/internal/delivery/middleware"
	"ecommerce/internal/domain/lifecycle"
	"ecommerce/internal/errors"
	"ecommerce/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics `optional:"true"`
	RouterParams router.RouterParams
}

// NewServer builds the catalog API server.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := newEcho(params)

	srv := &httpServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Recover first so panics in later middleware are caught.
	echoServer.Use(echomiddleware.Recover())

	// Request ID before logging so every log line carries it.
	echoServer.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	echoServer.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	if params.Metrics != nil && params.Cfg.Metrics != nil && params.Cfg.Metrics.Enabled {
		echoServer.Use(middleware.NewMetricsMiddleware(params.Metrics).Handle)
	}

	corsConfig := echomiddleware.DefaultCORSConfig
	if len(params.Cfg.HTTP.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = params.Cfg.HTTP.CORS.AllowOrigins
	}
	echoServer.Use(echomiddleware.CORSWithConfig(corsConfig))

	if params.Cfg.HTTP.MaxRequestBodySize != "" {
		echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))
	}

	echoServer.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	echoServer.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

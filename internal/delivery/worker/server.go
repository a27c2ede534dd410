package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/middleware"
	"marketplace/internal/delivery/worker/handler"
	"marketplace/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// consumerName identifies this worker in health checks and logs.
const consumerName = "order-accounting"

// healthStatus is the worker's /health payload.
type healthStatus struct {
	Status     string  `json:"status"`
	Consumer   string  `json:"consumer"`
	FeePercent float64 `json:"feePercent"`
	PushAuth   bool    `json:"pushAuth"`
	InFlight   int64   `json:"inFlight"`
}

type workerServer struct {
	cfg         *config.Config
	logger      *slog.Logger
	server      *echo.Echo
	pushHandler *handler.PushHandler
	inFlight    atomic.Int64
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the HTTP server receiving order events from Pub/Sub
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := newWorkerServer(params.Cfg, params.Logger, params.PushHandler)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newWorkerServer(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *workerServer {
	srv := &workerServer{
		cfg:         cfg,
		logger:      logger,
		pushHandler: pushHandler,
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())

	// Request IDs must exist before the logger runs.
	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger)
	e.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(logger, cfg)
	e.Use(loggerMiddleware.Handle)

	e.GET("/health", srv.health)
	e.POST("/push", pushHandler.HandlePush, srv.trackInFlight)

	srv.server = e

	return srv
}

func (s *workerServer) health(c echo.Context) error {
	status := healthStatus{
		Status:   "ok",
		Consumer: consumerName,
		PushAuth: s.pushHandler.VerifiesPushAuth(),
		InFlight: s.inFlight.Load(),
	}
	if s.cfg.Accounting != nil {
		status.FeePercent = s.cfg.Accounting.FeePercent
	}

	return c.JSON(http.StatusOK, status)
}

// trackInFlight counts push requests still being booked.
func (s *workerServer) trackInFlight(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.inFlight.Add(1)
		defer s.inFlight.Add(-1)

		return next(c)
	}
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting order accounting worker",
		slog.String("host_port", hostPort),
		slog.Bool("push_auth", s.pushHandler.VerifiesPushAuth()),
	)
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop waits for in-flight pushes up to the shutdown timeout. Unacknowledged
// pushes are redelivered by Pub/Sub and booked once.
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Stopping order accounting worker", slog.Int64("in_flight", s.inFlight.Load()))

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("Order accounting worker stopped with pushes pending",
			slog.Int64("in_flight", s.inFlight.Load()),
			slog.Any("error", err),
		)

		return errors.WithStack(err)
	}

	return nil
}

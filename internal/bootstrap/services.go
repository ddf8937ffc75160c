package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/resumelab/resumelab/config"
	"github.com/resumelab/resumelab/internal/data"
	"github.com/resumelab/resumelab/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth         *service.AuthService
	Resumes      *service.ResumeService
	Improvements *service.ImprovementService

	// Improvements is backed by this repository; the improver worker shares
	// it so both sides of the pipeline see the same state machine.
	ImprovementRepo *data.ImprovementRepo
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Broker      *Broker
	Logger      *slog.Logger
}

// NewServices wires repositories and adapters into the application services.
// The publisher is only built when the HTTP service is enabled; the improver
// consumes but never publishes.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	userRepo := data.NewUserRepo(deps.DB)
	resumeRepo := data.NewResumeRepo(deps.DB)
	improvementRepo := data.NewImprovementRepo(deps.DB)

	container := ServiceContainer{
		Resumes:         service.NewResumeService(service.ResumeServiceOptions{Resumes: resumeRepo}),
		ImprovementRepo: improvementRepo,
	}

	if deps.Config.IsHTTPServerEnabled() {
		auth, err := BuildAuthService(AuthConfig{
			Auth:        deps.Config.Auth,
			Users:       userRepo,
			RedisClient: deps.RedisClient,
			Logger:      logger,
		})
		if err != nil {
			return ServiceContainer{}, fmt.Errorf("build auth service: %w", err)
		}
		container.Auth = auth

		publisher, err := deps.Broker.NewPublisher(deps.Config.Broker, logger)
		if err != nil {
			return ServiceContainer{}, fmt.Errorf("build publisher: %w", err)
		}

		container.Improvements = service.NewImprovementService(service.ImprovementServiceOptions{
			Resumes:      resumeRepo,
			Improvements: improvementRepo,
			Publisher:    publisher,
			Logger:       logger,
			DedupEnabled: deps.Config.Improver.DedupEnabled,
		})
	}

	return container, nil
}

// ServiceOrchestrationConfig contains configuration for service orchestration.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Broker   *Broker
	Logger   *slog.Logger
}

// shutdownWaitTimeout is the maximum time to wait for services to stop gracefully.
const shutdownWaitTimeout = 15 * time.Second

// backgroundServiceHandle tracks a running background service.
type backgroundServiceHandle struct {
	name string
	done <-chan struct{}
}

// RunServicesWithShutdown starts all enabled services and manages their
// lifecycle. It blocks until a shutdown signal is received or a service fails.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	enabledServices, err := cfg.Config.GetEnabledServices()
	if err != nil {
		return fmt.Errorf("determine enabled services: %w", err)
	}

	serviceCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, errorChannelBufferSize(enabledServices))

	var httpServer *http.Server
	if enabledServices[config.ServiceModeHTTP] {
		httpServer, err = StartHTTPServer(&HTTPServerConfig{
			Config:   cfg.Config.HTTP,
			Services: cfg.Services,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("start http server: %w", err)
		}
	}

	var backgrounds []backgroundServiceHandle
	if enabledServices[config.ServiceModeImprover] {
		done := make(chan struct{})
		go func() {
			defer close(done)
			runErr := RunImprover(serviceCtx, ImproverConfig{
				Broker:       cfg.Broker,
				Improvements: cfg.Services.ImprovementRepo,
				Config:       cfg.Config.Improver,
				Statsd:       cfg.Config.Statsd,
				Notify:       cfg.Config.Notify,
				Logger:       logger,
			})
			if runErr != nil && !errors.Is(runErr, context.Canceled) {
				select {
				case errCh <- fmt.Errorf("improver failed: %w", runErr):
				default:
					logger.Warn("dropping background service error", "service", "improver", "error", runErr)
				}
			}
		}()
		logger.Info("background service started", "service", "improver",
			"concurrency", cfg.Config.Improver.Concurrency)
		backgrounds = append(backgrounds, backgroundServiceHandle{name: "improver", done: done})
	}

	return waitForShutdown(shutdownConfig{
		cancel:      cancel,
		errCh:       errCh,
		httpServer:  httpServer,
		logger:      logger,
		backgrounds: backgrounds,
	})
}

func errorChannelCapacity(enabled map[config.ServiceMode]bool) int {
	count := 0
	for _, mode := range config.ValidServiceModes() {
		if enabled[mode] {
			count++
		}
	}
	return count
}

func errorChannelBufferSize(enabled map[config.ServiceMode]bool) int {
	size := errorChannelCapacity(enabled) + 1
	if size < 1 {
		return 1
	}
	return size
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	cancel      context.CancelFunc
	errCh       <-chan error
	httpServer  *http.Server
	logger      *slog.Logger
	backgrounds []backgroundServiceHandle
}

// waitForShutdown waits for a shutdown signal or a service error.
func waitForShutdown(cfg shutdownConfig) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		cfg.logger.Info("shutting down services...")
		cfg.cancel()
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("service error", "error", err)
		cfg.cancel()
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop attempts to gracefully stop all services.
func gracefulStop(cfg shutdownConfig) error {
	if cfg.httpServer != nil {
		// Not derived from cfg.ctx: that context is already canceled and
		// would abort the drain immediately.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWaitTimeout)
		defer cancel()

		if err := ShutdownHTTPServer(ShutdownConfig{
			Context: shutdownCtx,
			Server:  cfg.httpServer,
			Logger:  cfg.logger,
		}); err != nil {
			return err
		}
	}

	for _, svc := range cfg.backgrounds {
		waitForService(svc.done, svc.name, cfg.logger)
	}

	return nil
}

// waitForService waits for a service to finish with timeout.
func waitForService(done <-chan struct{}, name string, logger *slog.Logger) {
	if done == nil {
		return
	}
	select {
	case <-done:
		logger.Info(name + " stopped")
	case <-time.After(shutdownWaitTimeout):
		logger.Warn("timeout waiting for " + name + " to stop")
	}
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/tradelite-api/internal/api/handler"
	"github.com/vfg2006/tradelite-api/internal/api/handler/router"
	"github.com/vfg2006/tradelite-api/internal/config"
	"github.com/vfg2006/tradelite-api/internal/usecases/administering"
	"github.com/vfg2006/tradelite-api/internal/usecases/authenticating"
	"github.com/vfg2006/tradelite-api/internal/usecases/managing"
	"github.com/vfg2006/tradelite-api/internal/usecases/mentoring"
	"github.com/vfg2006/tradelite-api/internal/usecases/promoting"
	"github.com/vfg2006/tradelite-api/internal/usecases/supporting"
	"github.com/vfg2006/tradelite-api/pkg/log"
	"github.com/vfg2006/tradelite-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Admin         administering.AdminService
	Manager       managing.ManagerService
	Mentor        mentoring.MentorService
	Promoter      promoting.PromoterService
	Support       supporting.SupportService
	CronJobs      handler.CronJobServices
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("autenticador é obrigatório")
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler monta o roteador com a cadeia de middlewares global
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Admin(services.Admin)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
		router.WithRoutes(handler.Manager(services.Manager)...),
		router.WithRoutes(handler.Mentor(services.Mentor)...),
		router.WithRoutes(handler.Promoter(services.Promoter)...),
		router.WithRoutes(handler.Support(services.Support)...),
		router.WithNotFound(handler.SPA(cfg.Static.Dir)),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithFields(log.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}

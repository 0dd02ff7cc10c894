package main

import (
	"context"

	"github.com/vfg2006/tradelite-api/infrastructure/cache"
	"github.com/vfg2006/tradelite-api/infrastructure/database/postgres"
	"github.com/vfg2006/tradelite-api/infrastructure/events"
	"github.com/vfg2006/tradelite-api/infrastructure/mockdata"
	"github.com/vfg2006/tradelite-api/infrastructure/referencedata"
	"github.com/vfg2006/tradelite-api/infrastructure/repository"
	"github.com/vfg2006/tradelite-api/internal/api"
	"github.com/vfg2006/tradelite-api/internal/api/handler"
	"github.com/vfg2006/tradelite-api/internal/config"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/scheduler"
	"github.com/vfg2006/tradelite-api/internal/usecases/administering"
	"github.com/vfg2006/tradelite-api/internal/usecases/authenticating"
	"github.com/vfg2006/tradelite-api/internal/usecases/managing"
	"github.com/vfg2006/tradelite-api/internal/usecases/mentoring"
	"github.com/vfg2006/tradelite-api/internal/usecases/promoting"
	"github.com/vfg2006/tradelite-api/internal/usecases/supporting"
	"github.com/vfg2006/tradelite-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel); err != nil {
		log.L.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalog, err := referencedata.Load(cfg.ReferenceData.Path)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao carregar o catálogo de referência")
	}

	authenticator, err := authenticating.NewService(catalog.Users, cfg.Auth)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao preparar as credenciais de demonstração")
	}

	var pgConn *postgres.Connection
	if cfg.Storage.Driver == config.StoragePostgres {
		pgConn = pgconn(ctx, cfg.Database)
		defer pgConn.Close()
	}

	repos, err := newRepositories(cfg.Storage.Driver, pgConn)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao criar os repositórios")
	}

	generator := mockdata.New(catalog, cfg.MockData.Seed)

	publisher := alertPublisher(cfg.Kafka)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.L.WithError(err).Warn("Erro ao fechar o publicador de alertas")
		}
	}()

	mentorService := mentoring.NewService(catalog, generator, snapshotCache(ctx, cfg))

	kpiSnapshotSyncService := scheduler.NewKPISnapshotSyncService(mentorService, cfg)
	if err := kpiSnapshotSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de snapshots de KPIs")
	} else {
		log.L.Info("Agendador de snapshots de KPIs iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Admin:         administering.NewService(generator, catalog),
		Manager:       managing.NewService(generator, catalog),
		Mentor:        mentorService,
		Promoter:      promoting.NewService(generator, repos.Prices, publisher, catalog),
		Support:       supporting.NewService(generator, repos.Tickets, catalog),
		CronJobs: handler.CronJobServices{
			KPISnapshotSyncService: kpiSnapshotSyncService,
		},
	})
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newRepositories evita passar um *postgres.Connection nil embrulhado na interface
func newRepositories(driver string, conn *postgres.Connection) (*repository.Repositories, error) {
	if conn == nil {
		return repository.New(driver, nil)
	}
	return repository.New(driver, conn)
}

// snapshotCache usa o Redis quando configurado e cai para a memória do processo caso contrário
func snapshotCache(ctx context.Context, cfg *config.Config) mentoring.SnapshotCache {
	if !cfg.KPICache.Enabled {
		return nil
	}

	if cfg.Redis.URL != "" {
		client, err := cache.Connect(ctx, cfg.Redis.URL)
		if err == nil {
			log.L.Info("Cache de KPIs usando Redis")
			return cache.NewRedisSnapshotCache(client, cfg.KPICache.TTL)
		}
		log.L.WithError(err).Warn("Redis indisponível, cache de KPIs em memória")
	}

	return cache.NewMemorySnapshotCache(cfg.KPICache.TTL)
}

type closablePublisher interface {
	Publish(ctx context.Context, event domain.AlertEvent) error
	Close() error
}

func alertPublisher(cfg config.Kafka) closablePublisher {
	if len(cfg.Brokers) == 0 {
		log.L.Info("Sem brokers Kafka configurados, alertas apenas registrados em log")
		return events.NewLogPublisher()
	}

	publisher, err := events.NewKafkaPublisher(cfg.Brokers, map[string]string{
		domain.EventPriceVariationAlert: cfg.TopicPriceAlert,
		domain.EventExpiryAlert:         cfg.TopicExpiryAlert,
		domain.EventContestSubmitted:    cfg.TopicContest,
	})
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao criar o publicador Kafka")
	}

	log.L.WithField("kafka_brokers", cfg.Brokers).Info("Alertas publicados no Kafka")
	return publisher
}

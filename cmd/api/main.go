package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/vital/internal/api"
	"github.com/limbo/vital/internal/jobs"
	"github.com/limbo/vital/internal/repository"
	"github.com/limbo/vital/internal/service"
	"github.com/limbo/vital/pkg/aiclient"
	"github.com/limbo/vital/pkg/cleanup"
	"github.com/limbo/vital/pkg/config"
	jwtservice "github.com/limbo/vital/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func setupLogger(format string) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	settings := config.New().Settings
	setupLogger(settings.LogFormat)
	defer cleanup.CleanUp()

	dbCfg := repository.PGCfg{
		Address:  settings.PostgresAddress,
		Username: settings.PostgresUser,
		Password: settings.PostgresPassword,
		DB:       settings.PostgresDB,
	}
	if settings.RunMigrations {
		if err := repository.Migrate(&dbCfg, settings.MigrationsDir); err != nil {
			log.Fatal("migrations error: " + err.Error())
		}
		slog.Info("migrations applied")
	}
	pool := repository.NewPool(&dbCfg)

	usersRepo := repository.NewUsersRepoWithConn(pool)
	var sessionsRepo repository.SessionsRepositoryI = repository.NewSessionsRepoWithConn(pool)
	if settings.RedisAddress != "" {
		sessionsRepo = repository.NewRedisSessionsRepo(repository.RedisCfg{
			Address:  settings.RedisAddress,
			Password: settings.RedisPassword,
		})
		slog.Info("sessions stored in redis")
	}
	txManager := repository.NewTxManager(pool)
	clock := service.NewClock(settings.Location(), nil)
	ai := aiclient.New(settings.AIBaseURL, settings.AIAPIKey, settings.AIModel, settings.AITimeout)
	if settings.AIAPIKey == "" {
		slog.Warn("AI_API_KEY is empty, AI features answer with fallback texts")
	}

	authService := service.NewAuthService(usersRepo, sessionsRepo, settings.SessionTTL, clock)
	serv := api.New(&api.ServicesList{
		AuthService:      authService,
		TasksService:     service.NewTasksService(txManager, repository.NewTasksRepoWithConn(pool), usersRepo, clock),
		PointsService:    service.NewPointsService(txManager, usersRepo),
		ProfileService:   service.NewProfileService(txManager, usersRepo),
		SymptomsService:  service.NewSymptomsService(repository.NewSymptomsRepoWithConn(pool), usersRepo, ai),
		RemindersService: service.NewRemindersService(repository.NewRemindersRepoWithConn(pool)),
		ChatService:      service.NewChatService(ai, usersRepo),
		TokenService:     jwtservice.New(settings.SessionSecret),
		DB:               pool,
	}, api.Options{
		SessionTTL:        settings.SessionTTL,
		CookieSecure:      settings.CookieSecure,
		CORSOrigins:       settings.CORSOrigins,
		MetricsUser:       settings.MetricsUser,
		MetricsPass:       settings.MetricsPass,
		AuthRatePerMinute: settings.AuthRatePerMinute,
		AuthRateBurst:     settings.AuthRateBurst,
	})

	scheduler := jobs.New(settings.Location(), authService, serv)
	if err := scheduler.Register(settings.SessionPurgeSpec); err != nil {
		log.Fatal(err)
	}
	scheduler.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := serv.Run(ctx, settings.APIAddress); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}

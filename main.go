package main

import (
	"context"
	"os"

	"github.com/beracah/beracah-BE/api"
	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/beracah/beracah-BE/internal/deliverytracking"
	"github.com/beracah/beracah-BE/internal/event"
	"github.com/beracah/beracah-BE/internal/lalamove"
	"github.com/beracah/beracah-BE/internal/mailer"
	"github.com/beracah/beracah-BE/internal/notification"
	"github.com/beracah/beracah-BE/internal/util"
	"github.com/beracah/beracah-BE/internal/worker"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/beracah/beracah-BE/docs"
)

//	@title			Beracah Storefront API
//	@version		1.0.0
//	@description	API documentation for the Beracah food-ordering storefront backend

//	@host		localhost:8080
//	@BasePath	/v1
//	@schemes	http https

//	@securityDefinitions.apikey	accessToken
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}
	log.Info().Msg("configurations loaded successfully ✅")

	// Create connection pool
	connPool, err := pgxpool.New(context.Background(), config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to validate db connection string 😣")
	}

	if pingErr := connPool.Ping(context.Background()); pingErr != nil {
		log.Fatal().Err(pingErr).Msg("failed to connect to db 😣")
	}
	log.Info().Msg("connected to db ✅")

	store := db.NewStore(connPool)

	redisOpt := asynq.RedisClientOpt{
		Addr: config.RedisServerAddress,
	}
	taskDistributor := worker.NewTaskDistributor(redisOpt)

	redisDb := redis.NewClient(&redis.Options{
		Addr: config.RedisServerAddress,
	})
	if pingErr := redisDb.Ping(context.Background()).Err(); pingErr != nil {
		log.Fatal().Err(pingErr).Msg("failed to connect to redis 😣")
	}
	log.Info().Msg("connected to redis ✅")

	deliveryService := lalamove.NewService(&config)
	log.Info().Msg("delivery service created successfully ✅")

	var notifier *notification.DiscordNotifier
	if config.DiscordBotToken != "" && config.DiscordChannelID != "" {
		notifier, err = notification.NewDiscordNotifier(config.DiscordBotToken, config.DiscordChannelID)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create discord notifier 😣")
		}
		log.Info().Msg("discord notifier created successfully ✅")
	}

	var mailService *mailer.GmailSender
	if config.GmailSMTPUsername != "" && config.GmailSMTPPassword != "" {
		mailService, err = mailer.NewGmailSender(config.GmailSMTPUsername, config.GmailSMTPPassword, config.StoreInboxAddress)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create mailer service 😣")
		}
		log.Info().Msg("mailer service created successfully ✅")
	}

	eventSender := event.NewSSEServer()
	go eventSender.Run()

	go runTaskProcessor(redisOpt, store, deliveryService, notifier, mailService, eventSender)
	go runDeliveryTracker(store, deliveryService, notifier, eventSender)

	runHTTPServer(&config, store, redisDb, taskDistributor, mailService, deliveryService, eventSender)
}

func runTaskProcessor(
	redisOpt asynq.RedisClientOpt,
	store db.Store,
	deliveryService lalamove.DeliveryProvider,
	notifier *notification.DiscordNotifier,
	mailService *mailer.GmailSender,
	eventSender event.EventSender,
) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store, deliveryService, notifier, mailService, eventSender)

	log.Info().Msg("starting task processor")
	if err := taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}
}

func runDeliveryTracker(
	store db.Store,
	deliveryService lalamove.DeliveryProvider,
	notifier *notification.DiscordNotifier,
	eventSender event.EventSender,
) {
	// The tracker reads order details against the market and sandbox
	// selection held in the stored site settings.
	settings, err := store.ListSiteSettings(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("failed to load site settings, delivery tracker disabled")
		return
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}

	storeConfig, err := lalamove.ConfigFromSettings(values)
	if err != nil {
		log.Warn().Err(err).Msg("store config incomplete, delivery tracker disabled")
		return
	}

	tracker, err := deliverytracking.NewDeliveryTracker(store, deliveryService, storeConfig, notifier, eventSender)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create delivery tracker 😣")
	}

	log.Info().Msg("starting delivery tracker")
	if err = tracker.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start delivery tracker 😣")
	}
}

func runHTTPServer(
	config *util.Config,
	store db.Store,
	redisDb *redis.Client,
	taskDistributor worker.TaskDistributor,
	mailService *mailer.GmailSender,
	deliveryService lalamove.DeliveryProvider,
	eventSender event.EventSender,
) {
	server, err := api.NewServer(store, redisDb, taskDistributor, config, mailService, deliveryService, eventSender)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	if err = server.Start(config.HTTPServerAddress); err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}

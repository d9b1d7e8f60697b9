package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"taskmatch/internal/config"
	"taskmatch/internal/handlers"
	"taskmatch/internal/notify"
	"taskmatch/internal/repositories"
	"taskmatch/internal/services"
	"taskmatch/utils"
)

type application struct {
	cfg      config.Config
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB
	tokens   *utils.Manager

	providerHub *notify.ProviderHub

	userRepo *repositories.UserRepository

	userHandler      *handlers.UserHandler
	providerHandler  *handlers.ProviderHandler
	serviceHandler   *handlers.ServiceHandler
	requestHandler   *handlers.RequestHandler
	offerHandler     *handlers.OfferHandler
	pairedJobHandler *handlers.PairedJobHandler
	paymentHandler   *handlers.PaymentHandler
}

// hubLogger adapts the standard loggers to the notify.Logger interface.
type hubLogger struct {
	info *log.Logger
	err  *log.Logger
}

func (l hubLogger) Infof(format string, args ...interface{})  { l.info.Printf(format, args...) }
func (l hubLogger) Errorf(format string, args ...interface{}) { l.err.Printf(format, args...) }

func initializeApp(cfg config.Config, db *sql.DB, errorLog, infoLog *log.Logger) *application {
	tokens, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	logger := hubLogger{info: infoLog, err: errorLog}
	providerHub := notify.NewProviderHub(logger)

	dispatcher := &notify.Dispatcher{
		Hub:    providerHub,
		Logger: logger,
	}

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	providerRepo := repositories.ProviderRepository{DB: db}
	serviceRepo := repositories.ServiceRepository{DB: db}
	requestRepo := repositories.RequestRepository{DB: db}
	offerRepo := repositories.OfferRepository{DB: db}
	pairedJobRepo := repositories.PairedJobRepository{DB: db}

	dispatcher.Tokens = &userRepo

	// Push delivery is optional: without Firebase credentials only the
	// realtime hub is used.
	if cfg.Firebase.CredentialsFile != "" {
		fcmClient, err := notify.NewFCMClient(context.Background(), cfg.Firebase.CredentialsFile)
		if err != nil {
			errorLog.Printf("FCM disabled: %v", err)
		} else {
			dispatcher.Push = &notify.FCMSender{Client: fcmClient}
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Services
	userService := &services.UserService{UserRepo: &userRepo, ProviderRepo: &providerRepo, Tokens: tokens}
	providerService := &services.ProviderService{Providers: &providerRepo, Jobs: &pairedJobRepo}
	serviceService := &services.ServiceService{ServiceRepo: &serviceRepo}
	requestService := &services.RequestService{Requests: &requestRepo, Catalog: &serviceRepo, Dispatcher: dispatcher}
	offerService := &services.OfferService{Offers: &offerRepo, Ledger: &userRepo}
	matchingService := &services.MatchingService{Jobs: &pairedJobRepo, Notifier: dispatcher}
	paymentService := services.NewPaymentService(&services.RedisIntentStore{Client: rdb}, &userRepo, cfg.Payment.PricePerToken)

	return &application{
		cfg:         cfg,
		errorLog:    errorLog,
		infoLog:     infoLog,
		db:          db,
		tokens:      tokens,
		providerHub: providerHub,
		userRepo:    &userRepo,

		userHandler:      &handlers.UserHandler{Service: userService},
		providerHandler:  &handlers.ProviderHandler{Service: providerService},
		serviceHandler:   &handlers.ServiceHandler{Service: serviceService},
		requestHandler:   &handlers.RequestHandler{Service: requestService},
		offerHandler:     &handlers.OfferHandler{Service: offerService},
		pairedJobHandler: &handlers.PairedJobHandler{Service: matchingService},
		paymentHandler:   &handlers.PaymentHandler{Service: paymentService},
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}

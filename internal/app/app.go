package app

import (
	"net/http"

	"event-manager-go/internal/auth"
	"event-manager-go/internal/config"
	"event-manager-go/internal/db"
	categoriesdomain "event-manager-go/internal/domain/categories"
	clientsdomain "event-manager-go/internal/domain/clients"
	collectionsdomain "event-manager-go/internal/domain/collections"
	eventsdomain "event-manager-go/internal/domain/events"
	financialdomain "event-manager-go/internal/domain/financial"
	userdomain "event-manager-go/internal/domain/user"
	categoriesrepo "event-manager-go/internal/repository/postgres/categories"
	clientsrepo "event-manager-go/internal/repository/postgres/clients"
	collectionsrepo "event-manager-go/internal/repository/postgres/collections"
	eventsrepo "event-manager-go/internal/repository/postgres/events"
	financialrepo "event-manager-go/internal/repository/postgres/financial"
	userrepo "event-manager-go/internal/repository/postgres/user"
	"event-manager-go/internal/transport/httpserver"
	"event-manager-go/internal/transport/httpserver/handler"
	authmw "event-manager-go/internal/transport/httpserver/middleware"
	"event-manager-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	users := userdomain.NewService(userrepo.NewPostgres(dbConn))
	clients := clientsdomain.NewService(clientsrepo.NewPostgres(dbConn))
	categories := categoriesdomain.NewService(categoriesrepo.NewPostgres(dbConn))
	events := eventsdomain.NewService(eventsrepo.NewPostgres(dbConn))
	collections := collectionsdomain.NewService(collectionsrepo.NewPostgres(dbConn))
	financial := financialdomain.NewService(financialrepo.NewPostgres(dbConn))

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	handlers := handler.New(users, clients, categories, events, collections, financial, tokens, cfg.Auth, log)
	session := authmw.NewSessionAuth(cfg.Auth.CookieName, tokens, users, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, session)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

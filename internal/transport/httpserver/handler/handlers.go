package handler

import (
	"net/http"

	"event-manager-go/internal/auth"
	"event-manager-go/internal/config"
	categoriesdomain "event-manager-go/internal/domain/categories"
	clientsdomain "event-manager-go/internal/domain/clients"
	collectionsdomain "event-manager-go/internal/domain/collections"
	eventsdomain "event-manager-go/internal/domain/events"
	financialdomain "event-manager-go/internal/domain/financial"
	userdomain "event-manager-go/internal/domain/user"
	"event-manager-go/pkg/logger"
)

type Handlers struct {
	Users       *userdomain.Service
	Clients     *clientsdomain.Service
	Categories  *categoriesdomain.Service
	Events      *eventsdomain.Service
	Collections *collectionsdomain.Service
	Financial   *financialdomain.Service

	tokens  *auth.Tokens
	authCfg config.AuthConfig
	log     logger.Logger
}

func New(
	users *userdomain.Service,
	clients *clientsdomain.Service,
	categories *categoriesdomain.Service,
	events *eventsdomain.Service,
	collections *collectionsdomain.Service,
	financial *financialdomain.Service,
	tokens *auth.Tokens,
	authCfg config.AuthConfig,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Users:       users,
		Clients:     clients,
		Categories:  categories,
		Events:      events,
		Collections: collections,
		Financial:   financial,
		tokens:      tokens,
		authCfg:     authCfg,
		log:         log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

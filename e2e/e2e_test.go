//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

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

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	log := logger.NewFromEnv()

	cfg := config.Config{
		DB: config.DBConfig{DSN: dsn},
		Auth: config.AuthConfig{
			JWTSecret:  "e2e-secret",
			TokenTTL:   time.Hour,
			CookieName: "access_token",
		},
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
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

	router := httpserver.NewRouter(cfg, handlers, session)
	server := httptest.NewServer(router)

	return &testEnv{server: server, db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	sqlDB, err := e.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		"TRUNCATE TABLE financial_transactions, collections, event_group_items, event_checklist_items, event_payment_months, participants, events, financial_categories, clients, users RESTART IDENTITY CASCADE",
	).Error
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func requestJSON(t *testing.T, client *http.Client, method, url string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

func decode(t *testing.T, data []byte, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, dst); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
}

type idResponse struct {
	ID uint `json:"id"`
}

type meResponse struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
}

type participantResponse struct {
	ID      uint   `json:"id"`
	EventID uint   `json:"eventId"`
	Name    string `json:"name"`
}

type collectionEntry struct {
	ParticipantID  uint    `json:"participantId"`
	ReferenceMonth string  `json:"referenceMonth"`
	Amount         float64 `json:"amount"`
}

type transactionResponse struct {
	ID          uint    `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	SourceType  string  `json:"sourceType"`
	SourceID    *uint   `json:"sourceId"`
	CategoryID  *uint   `json:"categoryId"`
}

func TestCollectionLifecycle(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := newClient(t)
	base := env.server.URL

	resp, body := requestJSON(t, client, http.MethodPost, base+"/auth/register", map[string]string{
		"name":            "Owner",
		"email":           "owner@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: status %d body %s", resp.StatusCode, body)
	}

	resp, body = requestJSON(t, client, http.MethodPost, base+"/auth/login", map[string]string{
		"email":    "owner@example.com",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: status %d body %s", resp.StatusCode, body)
	}

	resp, body = requestJSON(t, client, http.MethodGet, base+"/auth/me", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: status %d body %s", resp.StatusCode, body)
	}
	var me meResponse
	decode(t, body, &me)
	if me.Email != "owner@example.com" {
		t.Fatalf("me email = %q", me.Email)
	}

	resp, body = requestJSON(t, client, http.MethodPost, base+"/clients/new", map[string]string{
		"name": "Condo Jardim",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create client: status %d body %s", resp.StatusCode, body)
	}
	var createdClient idResponse
	decode(t, body, &createdClient)

	eventDate := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	resp, body = requestJSON(t, client, http.MethodPost, base+"/events/create", map[string]interface{}{
		"name":     "Coleta Mensal",
		"type":     "collective",
		"date":     eventDate,
		"location": "Salão",
		"clientId": createdClient.ID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create event: status %d body %s", resp.StatusCode, body)
	}
	var createdEvent idResponse
	decode(t, body, &createdEvent)

	eventURL := base + "/events/" + itoa(createdEvent.ID)

	resp, body = requestJSON(t, client, http.MethodPost, base+"/events/participants", map[string]interface{}{
		"eventId": createdEvent.ID,
		"name":    "Ana",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add participant: status %d body %s", resp.StatusCode, body)
	}
	var ana participantResponse
	decode(t, body, &ana)

	resp, body = requestJSON(t, client, http.MethodPut, eventURL+"/collections", map[string]interface{}{
		"participantId":  ana.ID,
		"referenceMonth": "2026-11",
		"amount":         150.0,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upsert collection: status %d body %s", resp.StatusCode, body)
	}

	resp, body = requestJSON(t, client, http.MethodGet, eventURL+"/collections", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list collections: status %d body %s", resp.StatusCode, body)
	}
	var entries []collectionEntry
	decode(t, body, &entries)
	if len(entries) != 1 || entries[0].ParticipantID != ana.ID || entries[0].ReferenceMonth != "2026-11" || entries[0].Amount != 150 {
		t.Fatalf("collections = %+v", entries)
	}

	resp, body = requestJSON(t, client, http.MethodGet, base+"/financial/"+itoa(createdEvent.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list financial: status %d body %s", resp.StatusCode, body)
	}
	var transactions []transactionResponse
	decode(t, body, &transactions)
	if len(transactions) != 1 {
		t.Fatalf("expected 1 mirrored transaction, got %d", len(transactions))
	}
	mirror := transactions[0]
	if mirror.Description != "Coleta - Ana (2026-11)" ||
		mirror.Type != "income" ||
		mirror.Status != "settled" ||
		mirror.Amount != 150 ||
		mirror.SourceType != "collection" {
		t.Fatalf("mirrored transaction = %+v", mirror)
	}

	// amount zero clears the key and the mirror together
	resp, body = requestJSON(t, client, http.MethodPut, eventURL+"/collections", map[string]interface{}{
		"participantId":  ana.ID,
		"referenceMonth": "2026-11",
		"amount":         0.0,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("clear collection: status %d body %s", resp.StatusCode, body)
	}

	resp, body = requestJSON(t, client, http.MethodGet, eventURL+"/collections", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list collections: status %d body %s", resp.StatusCode, body)
	}
	entries = nil
	decode(t, body, &entries)
	if len(entries) != 0 {
		t.Fatalf("expected no collections after clear, got %+v", entries)
	}

	resp, body = requestJSON(t, client, http.MethodGet, base+"/financial/"+itoa(createdEvent.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list financial: status %d body %s", resp.StatusCode, body)
	}
	transactions = nil
	decode(t, body, &transactions)
	if len(transactions) != 0 {
		t.Fatalf("expected no transactions after clear, got %+v", transactions)
	}
}

func TestPaymentMonthsAndCashflow(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := newClient(t)
	base := env.server.URL

	resp, body := requestJSON(t, client, http.MethodPost, base+"/clients/new", map[string]string{"name": "Acme"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create client: status %d body %s", resp.StatusCode, body)
	}
	var createdClient idResponse
	decode(t, body, &createdClient)

	eventDate := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	resp, body = requestJSON(t, client, http.MethodPost, base+"/events/create", map[string]interface{}{
		"name":     "Festa",
		"type":     "simple",
		"date":     eventDate,
		"location": "Sede",
		"clientId": createdClient.ID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create event: status %d body %s", resp.StatusCode, body)
	}
	var createdEvent idResponse
	decode(t, body, &createdEvent)

	eventURL := base + "/events/" + itoa(createdEvent.ID)

	resp, body = requestJSON(t, client, http.MethodPost, eventURL+"/event_payment_months", map[string]interface{}{
		"startMonth": "2026-11",
		"termMonths": 12,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create payment months: status %d body %s", resp.StatusCode, body)
	}
	var months []string
	decode(t, body, &months)
	if len(months) != 12 || months[0] != "2026-11" || months[11] != "2027-10" {
		t.Fatalf("months = %v", months)
	}

	resp, body = requestJSON(t, client, http.MethodPost, base+"/financial/"+itoa(createdEvent.ID), map[string]interface{}{
		"type":        "expense",
		"description": "Buffet",
		"amount":      40.0,
		"status":      "settled",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create transaction: status %d body %s", resp.StatusCode, body)
	}

	resp, body = requestJSON(t, client, http.MethodGet, base+"/financial/"+itoa(createdEvent.ID)+"/cashflow", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cashflow: status %d body %s", resp.StatusCode, body)
	}
	var points []struct {
		Date    string  `json:"date"`
		Income  float64 `json:"income"`
		Expense float64 `json:"expense"`
	}
	decode(t, body, &points)
	if len(points) != 1 || points[0].Expense != 40 || points[0].Income != 0 {
		t.Fatalf("cashflow points = %+v", points)
	}
}

func itoa(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

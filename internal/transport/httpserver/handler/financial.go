package handler

import (
	"errors"
	"net/http"
	"time"

	financialdomain "event-manager-go/internal/domain/financial"
)

type createTransactionRequest struct {
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paidAt"`
	CategoryID  *uint      `json:"categoryId"`
}

type transactionResponse struct {
	ID          uint                         `json:"id"`
	EventID     uint                         `json:"eventId"`
	Type        string                       `json:"type"`
	Description string                       `json:"description"`
	Amount      float64                      `json:"amount"`
	Status      string                       `json:"status"`
	PaidAt      *time.Time                   `json:"paidAt"`
	CategoryID  *uint                        `json:"categoryId"`
	SourceType  string                       `json:"sourceType"`
	SourceID    *uint                        `json:"sourceId"`
	CreatedAt   time.Time                    `json:"createdAt"`
	Category    *transactionCategoryResponse `json:"category"`
}

type transactionCategoryResponse struct {
	Name string `json:"name"`
}

func newTransactionResponse(transaction *financialdomain.Transaction, categoryName *string) transactionResponse {
	response := transactionResponse{
		ID:          transaction.ID,
		EventID:     transaction.EventID,
		Type:        transaction.Type,
		Description: transaction.Description,
		Amount:      transaction.Amount,
		Status:      transaction.Status,
		PaidAt:      transaction.PaidAt,
		CategoryID:  transaction.CategoryID,
		SourceType:  transaction.SourceType,
		SourceID:    transaction.SourceID,
		CreatedAt:   transaction.CreatedAt,
	}
	if categoryName != nil {
		response.Category = &transactionCategoryResponse{Name: *categoryName}
	}
	return response
}

func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	eventID, err := uintParam(r, "eventId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid event id")
		return
	}

	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Financial.Create(r.Context(), financialdomain.CreateTransactionInput{
		EventID:     eventID,
		Type:        req.Type,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      req.Status,
		PaidAt:      req.PaidAt,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		switch {
		case errors.Is(err, financialdomain.ErrEventNotFound):
			h.log.BusinessError("financial.create: event not found", err, "event_id", eventID)
			writeError(w, http.StatusBadRequest, "event_not_found", "event not found")
		case errors.Is(err, financialdomain.ErrDescriptionRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "description is required")
		case errors.Is(err, financialdomain.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, "invalid_request", "amount must be positive")
		case errors.Is(err, financialdomain.ErrInvalidType):
			writeError(w, http.StatusBadRequest, "invalid_request", "type must be income or expense")
		case errors.Is(err, financialdomain.ErrCategoryNotFound):
			h.log.BusinessError("financial.create: category not found", err, "event_id", eventID)
			writeError(w, http.StatusBadRequest, "category_not_found", "category not found")
		default:
			h.log.InternalError("financial.create: create failed", err, "event_id", eventID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, newTransactionResponse(created, nil))
}

func (h *Handlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	eventID, err := uintParam(r, "eventId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid event id")
		return
	}

	transactions, err := h.Financial.List(r.Context(), eventID)
	if err != nil {
		h.log.InternalError("financial.list: list failed", err, "event_id", eventID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]transactionResponse, 0, len(transactions))
	for i := range transactions {
		response = append(response, newTransactionResponse(&transactions[i].Transaction, transactions[i].CategoryName))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) Cashflow(w http.ResponseWriter, r *http.Request) {
	eventID, err := uintParam(r, "eventId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid event id")
		return
	}

	points, err := h.Financial.Cashflow(r.Context(), eventID)
	if err != nil {
		h.log.InternalError("financial.cashflow: aggregate failed", err, "event_id", eventID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, points)
}

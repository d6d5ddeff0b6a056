package handler

import (
	"errors"
	"net/http"
	"time"

	clientsdomain "event-manager-go/internal/domain/clients"
)

type createClientRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

type updateClientRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

type clientResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

func newClientResponse(client *clientsdomain.Client) clientResponse {
	return clientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Phone:     client.Phone,
		Notes:     client.Notes,
		CreatedAt: client.CreatedAt,
	}
}

func (h *Handlers) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Clients.Create(r.Context(), clientsdomain.CreateClientInput{
		Name:  req.Name,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		if errors.Is(err, clientsdomain.ErrNameRequired) {
			writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
			return
		}
		h.log.InternalError("clients.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, newClientResponse(created))
}

func (h *Handlers) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Clients.List(r.Context())
	if err != nil {
		h.log.InternalError("clients.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]clientResponse, 0, len(clients))
	for i := range clients {
		response = append(response, newClientResponse(&clients[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CountClients(w http.ResponseWriter, r *http.Request) {
	count, err := h.Clients.Count(r.Context())
	if err != nil {
		h.log.InternalError("clients.count: count failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *Handlers) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "clientId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid client id")
		return
	}

	client, err := h.Clients.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, clientsdomain.ErrClientNotFound) {
			h.log.BusinessError("clients.get: client not found", err, "client_id", id)
			writeError(w, http.StatusNotFound, "client_not_found", "client not found")
			return
		}
		h.log.InternalError("clients.get: get failed", err, "client_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, newClientResponse(client))
}

func (h *Handlers) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "clientId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid client id")
		return
	}

	var req updateClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	updated, err := h.Clients.Update(r.Context(), id, clientsdomain.UpdateClientInput{
		Name:  req.Name,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, clientsdomain.ErrClientNotFound):
			h.log.BusinessError("clients.update: client not found", err, "client_id", id)
			writeError(w, http.StatusNotFound, "client_not_found", "client not found")
		case errors.Is(err, clientsdomain.ErrNameRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		default:
			h.log.InternalError("clients.update: update failed", err, "client_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, newClientResponse(updated))
}

func (h *Handlers) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "clientId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid client id")
		return
	}

	if err := h.Clients.Delete(r.Context(), id); err != nil {
		if errors.Is(err, clientsdomain.ErrClientNotFound) {
			h.log.BusinessError("clients.delete: client not found", err, "client_id", id)
			writeError(w, http.StatusNotFound, "client_not_found", "client not found")
			return
		}
		h.log.InternalError("clients.delete: delete failed", err, "client_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

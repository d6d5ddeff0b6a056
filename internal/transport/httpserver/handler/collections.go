package handler

import (
	"errors"
	"net/http"

	collectionsdomain "event-manager-go/internal/domain/collections"
)

type upsertCollectionRequest struct {
	ParticipantID  uint    `json:"participantId"`
	ReferenceMonth string  `json:"referenceMonth"`
	Amount         float64 `json:"amount"`
}

type collectionResponse struct {
	ID             uint    `json:"id"`
	ParticipantID  uint    `json:"participantId"`
	ReferenceMonth string  `json:"referenceMonth"`
	Amount         float64 `json:"amount"`
}

func (h *Handlers) UpsertCollection(w http.ResponseWriter, r *http.Request) {
	eventID, err := uintParam(r, "eventId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid event id")
		return
	}

	var req upsertCollectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Collections.UpsertOrDelete(r.Context(), eventID, req.ParticipantID, req.ReferenceMonth, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, collectionsdomain.ErrInvalidReferenceMonth):
			writeError(w, http.StatusBadRequest, "invalid_request", "referenceMonth must be YYYY-MM")
		case errors.Is(err, collectionsdomain.ErrNegativeAmount):
			writeError(w, http.StatusBadRequest, "invalid_request", "amount cannot be negative")
		case errors.Is(err, collectionsdomain.ErrParticipantNotFound):
			h.log.BusinessError("collections.upsert: participant not found", err,
				"event_id", eventID, "participant_id", req.ParticipantID)
			writeError(w, http.StatusBadRequest, "participant_not_found", "participant not found in event")
		default:
			h.log.InternalError("collections.upsert: upsert failed", err,
				"event_id", eventID, "participant_id", req.ParticipantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	if result.Deleted {
		writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
		return
	}

	writeJSON(w, http.StatusOK, collectionResponse{
		ID:             result.Collection.ID,
		ParticipantID:  result.Collection.ParticipantID,
		ReferenceMonth: result.Collection.ReferenceMonth,
		Amount:         result.Collection.Amount,
	})
}

func (h *Handlers) ListCollections(w http.ResponseWriter, r *http.Request) {
	eventID, err := uintParam(r, "eventId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid event id")
		return
	}

	entries, err := h.Collections.List(r.Context(), eventID)
	if err != nil {
		h.log.InternalError("collections.list: list failed", err, "event_id", eventID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

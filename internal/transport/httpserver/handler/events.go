package handler

import (
	"errors"
	"net/http"
	"time"

	eventsdomain "event-manager-go/internal/domain/events"
)

type createEventRequest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Date     string  `json:"date"`
	Location string  `json:"location"`
	Notes    *string `json:"notes"`
	ClientID uint    `json:"clientId"`
}

type eventResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Date      string    `json:"date"`
	Location  string    `json:"location"`
	Notes     *string   `json:"notes"`
	ClientID  uint      `json:"clientId"`
	CreatedAt time.Time `json:"createdAt"`
}

type eventDetailResponse struct {
	eventResponse
	Client eventClientResponse `json:"client"`
}

type eventClientResponse struct {
	Name string `json:"name"`
}

type addParticipantRequest struct {
	EventID uint   `json:"eventId"`
	Name    string `json:"name"`
}

type participantResponse struct {
	ID      uint   `json:"id"`
	EventID uint   `json:"eventId"`
	Name    string `json:"name"`
}

type createPaymentMonthsRequest struct {
	StartMonth string `json:"startMonth"`
	TermMonths int    `json:"termMonths"`
}

type checklistItemRequest struct {
	Text string  `json:"text"`
	Date *string `json:"date"`
}

type checklistItemResponse struct {
	ID        uint      `json:"id"`
	EventID   uint      `json:"eventId"`
	Text      string    `json:"text"`
	Date      *string   `json:"date"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

type groupItemRequest struct {
	Text string `json:"text"`
}

type groupItemResponse struct {
	ID        uint      `json:"id"`
	EventID   uint      `json:"eventId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func newEventResponse(event *eventsdomain.Event) eventResponse {
	return eventResponse{
		ID:        event.ID,
		Name:      event.Name,
		Type:      event.Type,
		Date:      formatDate(event.Date),
		Location:  event.Location,
		Notes:     event.Notes,
		ClientID:  event.ClientID,
		CreatedAt: event.CreatedAt,
	}
}

func newChecklistItemResponse(item *eventsdomain.ChecklistItem) checklistItemResponse {
	return checklistItemResponse{
		ID:        item.ID,
		EventID:   item.EventID,
		Text:      item.Text,
		Date:      formatDatePtr(item.Date),
		Done:      item.Done,
		CreatedAt: item.CreatedAt,
	}
}

func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	created, err := h.Events.Create(r.Context(), eventsdomain.CreateEventInput{
		Name:     req.Name,
		Type:     req.Type,
		Date:     date,
		Location: req.Location,
		Notes:    req.Notes,
		ClientID: req.ClientID,
	})
	if err != nil {
		switch {
		case errors.Is(err, eventsdomain.ErrMissingFields):
			writeError(w, http.StatusBadRequest, "invalid_request", "name, type, date, location and clientId are required")
		case errors.Is(err, eventsdomain.ErrInvalidEventType):
			writeError(w, http.StatusBadRequest, "invalid_request", "type must be simple or collective")
		case errors.Is(err, eventsdomain.ErrPastEventDate):
			writeError(w, http.StatusBadRequest, "invalid_request", "date cannot be in the past")
		case errors.Is(err, eventsdomain.ErrClientNotFound):
			h.log.BusinessError("events.create: client not found", err, "client_id", req.ClientID)
			writeError(w, http.StatusBadRequest, "client_not_found", "client not found")
		default:
			h.log.InternalError("events.create: create failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, newEventResponse(created))
}

func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Events.GetAll(r.Context())
	if err != nil {
		h.log.InternalError("events.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]eventResponse, 0, len(events))
	for i := range events {
		response = append(response, newEventResponse(&events[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "eventId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid event id")
		return
	}

	event, err := h.Events.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, eventsdomain.ErrEventNotFound) {
			h.log.BusinessError("events.get: event not found", err, "event_id", id)
			writeError(w, http.StatusNotFound, "event_not_found", "event not found")
			return
		}
		h.log.InternalError("events.get: get failed", err, "event_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, eventDetailResponse{
		eventResponse: newEventResponse(&event.Event),
		Client:        eventClientResponse{Name: event.ClientName},
	})
}

func (h *Handlers) AddParticipant(w http.ResponseWriter, r *http.Request) {
	var req addParticipantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Events.AddParticipant(r.Context(), req.EventID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, eventsdomain.ErrEventNotFound):
			h.log.BusinessError("events.participants.add: event not found", err, "event_id", req.EventID)
			writeError(w, http.StatusBadRequest, "event_not_found", "event not found")
		case errors.Is(err, eventsdomain.ErrNameRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		default:
			h.log.InternalError("events.participants.add: add failed", err, "event_id", req.EventID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, participantResponse{
		ID:      created.ID,
		EventID: created.EventID,
		Name:    created.Name,
	})
}

func (h *Handlers) ListParticipants(w http.ResponseWriter, r *http.Request) {
	eventID, err := uintParam(r, "eventId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid event id")
		return
	}

	participants, err := h.Events.GetParticipants(r.Context(), eventID)
	if err != nil {
		h.log.InternalError("events.participants.list: list failed", err, "event_id", eventID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]participantResponse, 0, len(participants))
	for _, participant := range participants {
		response = append(response, participantResponse{
			ID:      participant.ID,
			EventID: participant.EventID,
			Name:    participant.Name,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreatePaymentMonths(w http.ResponseWriter, r *http.Request) {
	eventID, err := uintParam(r, "eventId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid event id")
		return
	}

	var req createPaymentMonthsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	months, err := h.Events.CreatePaymentMonths(r.Context(), eventID, req.StartMonth, req.TermMonths)
	if err != nil {
		switch {
		case errors.Is(err, eventsdomain.ErrInvalidStartMonth):
			writeError(w, http.StatusBadRequest, "invalid_request", "startMonth must be YYYY-MM")
		case errors.Is(err, eventsdomain.ErrInvalidTermMonths):
			writeError(w, http.StatusBadRequest, "invalid_request", "termMonths must be 12, 24 or 36")
		case errors.Is(err, eventsdomain.ErrEventNotFound):
			h.log.BusinessError("events.payment_months.create: event not found", err, "event_id", eventID)
			writeError(w, http.StatusBadRequest, "event_not_found", "event not found")
		default:
			h.log.InternalError("events.payment_months.create: create failed", err, "event_id", eventID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, months)
}

func (h *Handlers) ListPaymentMonths(w http.ResponseWriter, r *http.Request) {
	eventID, err := uintParam(r, "eventId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid event id")
		return
	}

	months, err := h.Events.GetPaymentMonths(r.Context(), eventID)
	if err != nil {
		h.log.InternalError("events.payment_months.list: list failed", err, "event_id", eventID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, months)
}

func (h *Handlers) CreateChecklistItem(w http.ResponseWriter, r *http.Request) {
	eventID, err := uintParam(r, "eventId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid event id")
		return
	}

	var req checklistItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	date, err := parseDateOptional(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	created, err := h.Events.CreateChecklistItem(r.Context(), eventID, req.Text, date)
	if err != nil {
		if errors.Is(err, eventsdomain.ErrTextRequired) {
			writeError(w, http.StatusBadRequest, "invalid_request", "text is required")
			return
		}
		h.log.InternalError("events.checklist.create: create failed", err, "event_id", eventID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, newChecklistItemResponse(created))
}

func (h *Handlers) ListChecklist(w http.ResponseWriter, r *http.Request) {
	eventID, err := uintParam(r, "eventId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid event id")
		return
	}

	items, err := h.Events.ListChecklist(r.Context(), eventID)
	if err != nil {
		h.log.InternalError("events.checklist.list: list failed", err, "event_id", eventID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]checklistItemResponse, 0, len(items))
	for i := range items {
		response = append(response, newChecklistItemResponse(&items[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) ToggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uintParam(r, "itemId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid item id")
		return
	}

	item, err := h.Events.ToggleChecklistItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, eventsdomain.ErrChecklistItemNotFound) {
			h.log.BusinessError("events.checklist.toggle: item not found", err, "item_id", itemID)
			writeError(w, http.StatusBadRequest, "item_not_found", "checklist item not found")
			return
		}
		h.log.InternalError("events.checklist.toggle: toggle failed", err, "item_id", itemID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, newChecklistItemResponse(item))
}

func (h *Handlers) DeleteChecklistItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uintParam(r, "itemId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid item id")
		return
	}

	if err := h.Events.DeleteChecklistItem(r.Context(), itemID); err != nil {
		if errors.Is(err, eventsdomain.ErrChecklistItemNotFound) {
			h.log.BusinessError("events.checklist.delete: item not found", err, "item_id", itemID)
			writeError(w, http.StatusBadRequest, "item_not_found", "checklist item not found")
			return
		}
		h.log.InternalError("events.checklist.delete: delete failed", err, "item_id", itemID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) CreateGroupItem(w http.ResponseWriter, r *http.Request) {
	eventID, err := uintParam(r, "eventId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid event id")
		return
	}

	var req groupItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Events.CreateGroupItem(r.Context(), eventID, req.Text)
	if err != nil {
		if errors.Is(err, eventsdomain.ErrTextRequired) {
			writeError(w, http.StatusBadRequest, "invalid_request", "text is required")
			return
		}
		h.log.InternalError("events.group.create: create failed", err, "event_id", eventID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, groupItemResponse{
		ID:        created.ID,
		EventID:   created.EventID,
		Text:      created.Text,
		CreatedAt: created.CreatedAt,
	})
}

func (h *Handlers) ListGroupItems(w http.ResponseWriter, r *http.Request) {
	eventID, err := uintParam(r, "eventId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid event id")
		return
	}

	items, err := h.Events.ListGroupItems(r.Context(), eventID)
	if err != nil {
		h.log.InternalError("events.group.list: list failed", err, "event_id", eventID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]groupItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, groupItemResponse{
			ID:        item.ID,
			EventID:   item.EventID,
			Text:      item.Text,
			CreatedAt: item.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) DeleteGroupItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uintParam(r, "itemId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid item id")
		return
	}

	if err := h.Events.DeleteGroupItem(r.Context(), itemID); err != nil {
		if errors.Is(err, eventsdomain.ErrGroupItemNotFound) {
			h.log.BusinessError("events.group.delete: item not found", err, "item_id", itemID)
			writeError(w, http.StatusBadRequest, "item_not_found", "group item not found")
			return
		}
		h.log.InternalError("events.group.delete: delete failed", err, "item_id", itemID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

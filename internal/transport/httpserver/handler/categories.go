package handler

import (
	"errors"
	"net/http"
	"time"

	categoriesdomain "event-manager-go/internal/domain/categories"
)

type categoryRequest struct {
	Name string `json:"name"`
}

type categoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func newCategoryResponse(category *categoriesdomain.Category) categoryResponse {
	return categoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Categories.Create(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, categoriesdomain.ErrNameRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		case errors.Is(err, categoriesdomain.ErrNameTaken):
			h.log.BusinessError("categories.create: name taken", err)
			writeError(w, http.StatusConflict, "name_taken", "category name already exists")
		default:
			h.log.InternalError("categories.create: create failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, newCategoryResponse(created))
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.List(r.Context())
	if err != nil {
		h.log.InternalError("categories.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		response = append(response, newCategoryResponse(&categories[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CountCategories(w http.ResponseWriter, r *http.Request) {
	count, err := h.Categories.Count(r.Context())
	if err != nil {
		h.log.InternalError("categories.count: count failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *Handlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "categoryId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid category id")
		return
	}

	category, err := h.Categories.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, categoriesdomain.ErrCategoryNotFound) {
			h.log.BusinessError("categories.get: category not found", err, "category_id", id)
			writeError(w, http.StatusNotFound, "category_not_found", "category not found")
			return
		}
		h.log.InternalError("categories.get: get failed", err, "category_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, newCategoryResponse(category))
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "categoryId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid category id")
		return
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	updated, err := h.Categories.Update(r.Context(), id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, categoriesdomain.ErrCategoryNotFound):
			h.log.BusinessError("categories.update: category not found", err, "category_id", id)
			writeError(w, http.StatusNotFound, "category_not_found", "category not found")
		case errors.Is(err, categoriesdomain.ErrNameRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		case errors.Is(err, categoriesdomain.ErrNameTaken):
			h.log.BusinessError("categories.update: name taken", err, "category_id", id)
			writeError(w, http.StatusConflict, "name_taken", "category name already exists")
		default:
			h.log.InternalError("categories.update: update failed", err, "category_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, newCategoryResponse(updated))
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "categoryId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid category id")
		return
	}

	if err := h.Categories.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, categoriesdomain.ErrCategoryNotFound):
			h.log.BusinessError("categories.delete: category not found", err, "category_id", id)
			writeError(w, http.StatusNotFound, "category_not_found", "category not found")
		case errors.Is(err, categoriesdomain.ErrCategoryInUse):
			h.log.BusinessError("categories.delete: category in use", err, "category_id", id)
			writeError(w, http.StatusBadRequest, "category_in_use", "cannot remove a category that has transactions")
		default:
			h.log.InternalError("categories.delete: delete failed", err, "category_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

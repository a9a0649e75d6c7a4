package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/internal/service"
	"github.com/MKhiriev/mission-planner/internal/utils"
	"github.com/MKhiriev/mission-planner/models"
)

// entityHandler serves the five CRUD routes of one entity kind.
type entityHandler[T any, P models.EntityPtr[T]] struct {
	service service.EntityService[P]
}

// mountEntity registers the CRUD routes of P under its resource segment.
func mountEntity[T any, P models.EntityPtr[T]](r chi.Router, svc service.EntityService[P]) {
	h := &entityHandler[T, P]{service: svc}

	r.Route("/"+models.NewEntity[T, P]().Resource(), func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *entityHandler[T, P]) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []P{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *entityHandler[T, P]) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *entityHandler[T, P]) create(w http.ResponseWriter, r *http.Request) {
	entity, err := decodeEntity[T, P](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), entity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *entityHandler[T, P]) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entity, err := decodeEntity[T, P](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.service.Update(r.Context(), id, entity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *entityHandler[T, P]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

func decodeEntity[T any, P models.EntityPtr[T]](r *http.Request) (P, error) {
	entity := models.NewEntity[T, P]()
	if err := json.NewDecoder(r.Body).Decode(entity); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return entity, nil
}

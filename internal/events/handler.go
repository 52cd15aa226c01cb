package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/djbookingcom/internal/telemetry/metrics"
	"github.com/2beens/djbookingcom/internal/telemetry/tracing"
	"github.com/2beens/djbookingcom/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type Handler struct {
	repo    Api
	metrics *metrics.Manager
	now     func() time.Time
}

func NewHandler(repo Api, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/events", handler.handleList).
		Methods("GET", "OPTIONS").Name("list-events")
	router.HandleFunc("/events", handler.handleAdd).
		Methods("POST", "OPTIONS").Name("add-event")
	router.HandleFunc("/events/{id}", handler.handleDelete).
		Methods("DELETE", "OPTIONS").Name("delete-event")
}

func (handler *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "eventsHandler.add")
	defer span.End()

	var event Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Errorf("add event, unmarshal json params: %s", err)
		span.SetStatus(codes.Error, "bad-request")
		pkg.WriteJSONResponse(w, `{"message":"Missing required event details"}`, http.StatusBadRequest)
		return
	}

	if !event.HasRequiredFields() {
		span.SetStatus(codes.Error, "missing-details")
		pkg.WriteJSONResponse(w, `{"message":"Missing required event details"}`, http.StatusBadRequest)
		return
	}

	event.ID = uuid.NewString()
	event.CreatedAt = handler.now()

	added, err := handler.repo.Add(ctx, &event)
	if err != nil {
		log.Errorf("add event [%s]: %s", event.Title, err)
		span.SetStatus(codes.Error, "internal")
		span.RecordError(err)
		pkg.WriteJSONResponse(w, `{"message":"Failed to add event"}`, http.StatusInternalServerError)
		return
	}

	eventJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("add event, marshal added event: %s", err)
		pkg.WriteJSONResponse(w, `{"message":"Failed to add event"}`, http.StatusInternalServerError)
		return
	}

	log.Tracef("event [%s] added on %s", added.Title, added.Date)
	handler.metrics.CounterEventsAdded.Inc()
	span.SetStatus(codes.Ok, "ok")
	pkg.WriteJSONResponse(w, fmt.Sprintf(`{"message":"Event added successfully","event":%s}`, eventJson), http.StatusCreated)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "eventsHandler.delete")
	defer span.End()

	id := mux.Vars(r)["id"]

	switch err := handler.repo.Delete(ctx, id); {
	case err == nil:
		log.Tracef("event %s deleted", id)
		span.SetStatus(codes.Ok, "ok")
		pkg.WriteJSONResponseOK(w, `{"message":"Event deleted successfully"}`)
	case errors.Is(err, ErrEventNotFound):
		span.SetStatus(codes.Error, "not-found")
		pkg.WriteJSONResponse(w, `{"message":"Event not found"}`, http.StatusNotFound)
	default:
		log.Errorf("delete event %s: %s", id, err)
		span.SetStatus(codes.Error, "internal")
		span.RecordError(err)
		pkg.WriteJSONResponse(w, `{"message":"Failed to delete event"}`, http.StatusInternalServerError)
	}
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "eventsHandler.list")
	defer span.End()

	events, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list events: %s", err)
		span.SetStatus(codes.Error, "internal")
		span.RecordError(err)
		pkg.WriteJSONResponse(w, `{"message":"Failed to fetch events"}`, http.StatusInternalServerError)
		return
	}

	if events == nil {
		// clients expect an array, not null
		events = []Event{}
	}

	eventsJson, err := json.Marshal(events)
	if err != nil {
		log.Errorf("list events, marshal: %s", err)
		pkg.WriteJSONResponse(w, `{"message":"Failed to fetch events"}`, http.StatusInternalServerError)
		return
	}

	span.SetStatus(codes.Ok, "ok")
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, eventsJson, http.StatusOK)
}

package djs

import (
	"encoding/json"
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
	router.HandleFunc("/dj", handler.handleList).
		Methods("GET", "OPTIONS").Name("list-djs")
	router.HandleFunc("/dj", handler.handleAdd).
		Methods("POST", "OPTIONS").Name("add-dj")
	router.HandleFunc("/dj/{id}", handler.handleDelete).
		Methods("DELETE", "OPTIONS").Name("delete-dj")
}

func (handler *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "djsHandler.add")
	defer span.End()

	var dj DJ
	if err := json.NewDecoder(r.Body).Decode(&dj); err != nil {
		log.Errorf("add dj, unmarshal json params: %s", err)
		span.SetStatus(codes.Error, "bad-request")
		pkg.WriteJSONResponse(w, `{"message":"Invalid DJ details"}`, http.StatusBadRequest)
		return
	}

	dj.ID = uuid.NewString()
	dj.CreatedAt = handler.now()

	added, err := handler.repo.Add(ctx, &dj)
	if err != nil {
		log.Errorf("add dj [%s]: %s", dj.Name, err)
		span.SetStatus(codes.Error, "internal")
		span.RecordError(err)
		pkg.WriteJSONResponse(w, `{"message":"Failed to add DJ"}`, http.StatusInternalServerError)
		return
	}

	djJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("add dj, marshal added dj: %s", err)
		pkg.WriteJSONResponse(w, `{"message":"Failed to add DJ"}`, http.StatusInternalServerError)
		return
	}

	log.Tracef("dj [%s] added", added.Name)
	handler.metrics.CounterDJsAdded.Inc()
	span.SetStatus(codes.Ok, "ok")
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, djJson, http.StatusCreated)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "djsHandler.delete")
	defer span.End()

	id := mux.Vars(r)["id"]

	if err := handler.repo.Delete(ctx, id); err != nil {
		log.Errorf("delete dj %s: %s", id, err)
		span.SetStatus(codes.Error, "internal")
		span.RecordError(err)
		pkg.WriteJSONResponse(w, `{"message":"Failed to delete DJ"}`, http.StatusInternalServerError)
		return
	}

	log.Tracef("dj %s deleted", id)
	span.SetStatus(codes.Ok, "ok")
	pkg.WriteJSONResponseOK(w, `{"message":"DJ deleted"}`)
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "djsHandler.list")
	defer span.End()

	djs, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list djs: %s", err)
		span.SetStatus(codes.Error, "internal")
		span.RecordError(err)
		pkg.WriteJSONResponse(w, `{"message":"Failed to fetch DJs"}`, http.StatusInternalServerError)
		return
	}

	if djs == nil {
		djs = []DJ{}
	}

	djsJson, err := json.Marshal(djs)
	if err != nil {
		log.Errorf("list djs, marshal: %s", err)
		pkg.WriteJSONResponse(w, `{"message":"Failed to fetch DJs"}`, http.StatusInternalServerError)
		return
	}

	span.SetStatus(codes.Ok, "ok")
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, djsJson, http.StatusOK)
}

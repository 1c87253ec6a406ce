package performance

import (
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/gymlog/query"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

type Handler struct {
	resolver *Resolver
}

func NewHandler(resolver *Resolver) *Handler {
	return &Handler{
		resolver: resolver,
	}
}

func (handler *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.latest")
	defer span.End()

	exerciseID, ok := pkg.UUIDVar(w, r, "id")
	if !ok {
		return
	}

	workoutID := uuid.Nil
	if raw := r.URL.Query().Get("workoutId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "error, invalid workoutId", http.StatusBadRequest)
			return
		}
		workoutID = parsed
	}

	latest, err := handler.resolver.Latest(ctx, exerciseID, workoutID, auth.RequesterFrom(ctx))
	if err != nil {
		log.Errorf("latest performance of %s: %s", exerciseID, err)
		http.Error(w, apperr.PublicMessage(err, "get latest performance failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, LatestResponse{Latest: latest}, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.history")
	defer span.End()

	exerciseID, ok := pkg.UUIDVar(w, r, "id")
	if !ok {
		return
	}

	req, err := query.ParseRequest(r.URL.Query())
	if err != nil {
		http.Error(w, apperr.PublicMessage(err, "invalid paging request"), apperr.HTTPStatus(err))
		return
	}

	page, err := handler.resolver.History(ctx, exerciseID, req, auth.RequesterFrom(ctx))
	if err != nil {
		log.Errorf("exercise history of %s: %s", exerciseID, err)
		http.Error(w, apperr.PublicMessage(err, "get exercise history failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, page, http.StatusOK)
}

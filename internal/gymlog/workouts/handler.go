package workouts

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

type DeleteResponse struct {
	DeletedID uuid.UUID `json:"deletedId"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	req, err := query.ParseRequest(r.URL.Query())
	if err != nil {
		http.Error(w, apperr.PublicMessage(err, "invalid paging request"), apperr.HTTPStatus(err))
		return
	}

	page, err := handler.service.List(ctx, req, auth.RequesterFrom(ctx))
	if err != nil {
		log.Errorf("list workouts: %s", err)
		http.Error(w, apperr.PublicMessage(err, "list workouts failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, page, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id, ok := pkg.UUIDVar(w, r, "id")
	if !ok {
		return
	}

	detail, err := handler.service.Get(ctx, auth.RequesterFrom(ctx), id)
	if err != nil {
		log.Errorf("get workout %s: %s", id, err)
		http.Error(w, apperr.PublicMessage(err, "get workout failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	var in WorkoutInput
	if !pkg.DecodeJSONBody(w, r, &in) {
		return
	}

	workout, err := handler.service.Add(ctx, auth.RequesterFrom(ctx), in)
	if err != nil {
		log.Errorf("add workout [%s]: %s", in.Name, err)
		http.Error(w, apperr.PublicMessage(err, "add workout failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	id, ok := pkg.UUIDVar(w, r, "id")
	if !ok {
		return
	}

	var in WorkoutInput
	if !pkg.DecodeJSONBody(w, r, &in) {
		return
	}

	workout, err := handler.service.Update(ctx, auth.RequesterFrom(ctx), id, in)
	if err != nil {
		log.Errorf("update workout %s: %s", id, err)
		http.Error(w, apperr.PublicMessage(err, "update workout failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id, ok := pkg.UUIDVar(w, r, "id")
	if !ok {
		return
	}

	if err := handler.service.Delete(ctx, auth.RequesterFrom(ctx), id); err != nil {
		log.Errorf("delete workout %s: %s", id, err)
		http.Error(w, apperr.PublicMessage(err, "delete workout failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleLogExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.log_exercise")
	defer span.End()

	workoutID, ok := pkg.UUIDVar(w, r, "id")
	if !ok {
		return
	}

	var in LogExerciseInput
	if !pkg.DecodeJSONBody(w, r, &in) {
		return
	}

	ew, err := handler.service.LogExercise(ctx, auth.RequesterFrom(ctx), workoutID, in)
	if err != nil {
		log.Errorf("log exercise %s in workout %s: %s", in.ExerciseID, workoutID, err)
		http.Error(w, apperr.PublicMessage(err, "log exercise failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, ew, http.StatusCreated)
}

func (handler *Handler) HandleReplaceSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.replace_sets")
	defer span.End()

	workoutID, ok := pkg.UUIDVar(w, r, "id")
	if !ok {
		return
	}
	ewID, ok := pkg.UUIDVar(w, r, "ewid")
	if !ok {
		return
	}

	var in []SetInput
	if !pkg.DecodeJSONBody(w, r, &in) {
		return
	}

	ew, err := handler.service.ReplaceSets(ctx, auth.RequesterFrom(ctx), workoutID, ewID, in)
	if err != nil {
		log.Errorf("replace sets of %s: %s", ewID, err)
		http.Error(w, apperr.PublicMessage(err, "replace sets failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, ew, http.StatusOK)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.remove_exercise")
	defer span.End()

	workoutID, ok := pkg.UUIDVar(w, r, "id")
	if !ok {
		return
	}
	ewID, ok := pkg.UUIDVar(w, r, "ewid")
	if !ok {
		return
	}

	if err := handler.service.RemoveExercise(ctx, auth.RequesterFrom(ctx), workoutID, ewID); err != nil {
		log.Errorf("remove exercise workout %s: %s", ewID, err)
		http.Error(w, apperr.PublicMessage(err, "remove exercise failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: ewID}, http.StatusOK)
}

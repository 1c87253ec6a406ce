package exercises

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
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	req, err := query.ParseRequest(r.URL.Query())
	if err != nil {
		http.Error(w, apperr.PublicMessage(err, "invalid paging request"), apperr.HTTPStatus(err))
		return
	}

	page, err := handler.service.List(ctx, req, auth.RequesterFrom(ctx))
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, apperr.PublicMessage(err, "list exercises failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, page, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id, ok := pkg.UUIDVar(w, r, "id")
	if !ok {
		return
	}

	ex, err := handler.service.Get(ctx, id, auth.RequesterFrom(ctx))
	if err != nil {
		log.Errorf("get exercise %s: %s", id, err)
		http.Error(w, apperr.PublicMessage(err, "get exercise failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, ex, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	var in ExerciseInput
	if !pkg.DecodeJSONBody(w, r, &in) {
		return
	}

	ex, err := handler.service.Add(ctx, auth.RequesterFrom(ctx), in)
	if err != nil {
		log.Errorf("add exercise [%s]: %s", in.Name, err)
		http.Error(w, apperr.PublicMessage(err, "add exercise failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, ex, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	id, ok := pkg.UUIDVar(w, r, "id")
	if !ok {
		return
	}

	var in ExerciseInput
	if !pkg.DecodeJSONBody(w, r, &in) {
		return
	}

	ex, err := handler.service.Update(ctx, auth.RequesterFrom(ctx), id, in)
	if err != nil {
		log.Errorf("update exercise %s: %s", id, err)
		http.Error(w, apperr.PublicMessage(err, "update exercise failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, ex, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	id, ok := pkg.UUIDVar(w, r, "id")
	if !ok {
		return
	}

	if err := handler.service.Delete(ctx, auth.RequesterFrom(ctx), id); err != nil {
		log.Errorf("delete exercise %s: %s", id, err)
		http.Error(w, apperr.PublicMessage(err, "delete exercise failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.muscle_groups.list")
	defer span.End()

	groups, err := handler.service.MuscleGroups(ctx)
	if err != nil {
		log.Errorf("list muscle groups: %s", err)
		http.Error(w, apperr.PublicMessage(err, "list muscle groups failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, groups, http.StatusOK)
}

func (handler *Handler) HandleAddMuscleGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.muscle_groups.add")
	defer span.End()

	var in MuscleGroupInput
	if !pkg.DecodeJSONBody(w, r, &in) {
		return
	}

	mg, err := handler.service.AddMuscleGroup(ctx, auth.RequesterFrom(ctx), in)
	if err != nil {
		log.Errorf("add muscle group [%s]: %s", in.Name, err)
		http.Error(w, apperr.PublicMessage(err, "add muscle group failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, mg, http.StatusCreated)
}

func (handler *Handler) HandleDeleteMuscleGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.muscle_groups.delete")
	defer span.End()

	id, ok := pkg.UUIDVar(w, r, "id")
	if !ok {
		return
	}

	if err := handler.service.DeleteMuscleGroup(ctx, auth.RequesterFrom(ctx), id); err != nil {
		log.Errorf("delete muscle group %s: %s", id, err)
		http.Error(w, apperr.PublicMessage(err, "delete muscle group failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

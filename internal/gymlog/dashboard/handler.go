package dashboard

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

type Handler struct {
	aggregator *Aggregator
}

func NewHandler(aggregator *Aggregator) *Handler {
	return &Handler{
		aggregator: aggregator,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.get")
	defer span.End()

	requesterID := auth.RequesterFrom(ctx)
	snapshot, err := handler.aggregator.Snapshot(ctx, requesterID)
	if err != nil {
		log.Errorf("get dashboard %s: %s", requesterID, err)
		http.Error(w, apperr.PublicMessage(err, "get dashboard failed"), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, snapshot, http.StatusOK)
}

package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=dashboard_test

type dashboardRepo interface {
	WorkoutsCount(ctx context.Context, ownerID uuid.UUID) (int, error)
	WindowStats(ctx context.Context, ownerID uuid.UUID, window Window) (WindowStats, error)
	LastWorkout(ctx context.Context, ownerID uuid.UUID) (*LastWorkout, error)
}

type Aggregator struct {
	repo           dashboardRepo
	clock          pkg.Clock
	metricsManager *metrics.Manager
}

func NewAggregator(repo dashboardRepo, clock pkg.Clock, metricsManager *metrics.Manager) *Aggregator {
	return &Aggregator{
		repo:           repo,
		clock:          clock,
		metricsManager: metricsManager,
	}
}

// Snapshot computes the requester's dashboard. The week, month and year
// windows are the calendar ones containing the clock's now, in UTC.
func (a *Aggregator) Snapshot(ctx context.Context, requesterID uuid.UUID) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.snapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if requesterID == uuid.Nil {
		return nil, apperr.Unauthorized("dashboard requires a user")
	}

	start := time.Now()
	defer a.observeCompute(start)

	now := a.clock.Now()
	var (
		snapshot          Snapshot
		week, month, year WindowStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := a.repo.WorkoutsCount(gctx, requesterID)
		if err != nil {
			return err
		}
		snapshot.WorkoutsCount = count
		return nil
	})
	g.Go(func() error {
		stats, err := a.repo.WindowStats(gctx, requesterID, WeekOf(now))
		week = stats
		return err
	})
	g.Go(func() error {
		stats, err := a.repo.WindowStats(gctx, requesterID, MonthOf(now))
		month = stats
		return err
	})
	g.Go(func() error {
		stats, err := a.repo.WindowStats(gctx, requesterID, YearOf(now))
		year = stats
		return err
	})
	g.Go(func() error {
		last, err := a.repo.LastWorkout(gctx, requesterID)
		if err != nil {
			return err
		}
		snapshot.LastWorkout = last
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Errorf("dashboard for %s: %s", requesterID, err)
		return nil, apperr.Unavailable("dashboard", err)
	}

	snapshot.WorkoutsThisWeek, snapshot.SeriesThisWeek, snapshot.WeightThisWeek = week.Workouts, week.Series, week.Weight
	snapshot.WorkoutsThisMonth, snapshot.SeriesThisMonth, snapshot.WeightThisMonth = month.Workouts, month.Series, month.Weight
	snapshot.WorkoutsThisYear, snapshot.SeriesThisYear, snapshot.WeightThisYear = year.Workouts, year.Series, year.Weight

	return &snapshot, nil
}

func (a *Aggregator) observeCompute(start time.Time) {
	if a.metricsManager != nil {
		a.metricsManager.HistogramDashboardCompute.Observe(time.Since(start).Seconds())
	}
}

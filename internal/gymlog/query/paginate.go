package query

import (
	"context"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

// Source is the store side of a paginated listing.
type Source[T any] interface {
	Count(ctx context.Context, filter Filter) (int, error)
	List(ctx context.Context, filter Filter, sort Sort, window Window) ([]T, error)
}

// Paginate runs one count query and, when the window is not past the end,
// one windowed list query over the same filter.
func Paginate[T any](
	ctx context.Context,
	src Source[T],
	req Request,
	filter Filter,
	sort Sort,
) (_ *Page[T], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "query.paginate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	total, err := src.Count(ctx, filter)
	if err != nil {
		return nil, apperr.Unavailable("count", err)
	}

	window := req.Window()
	if window.Skip >= total {
		return NewPage[T](nil, req, sort, total), nil
	}

	items, err := src.List(ctx, filter, sort, window)
	if err != nil {
		return nil, apperr.Unavailable("list", err)
	}
	if len(items) > window.Take {
		items = items[:window.Take]
	}

	return NewPage(items, req, sort, total), nil
}

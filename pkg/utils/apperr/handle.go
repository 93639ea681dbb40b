package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs an error that was contained instead of returned. Variables
// attached via goerr ride along as structured attributes.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)

	args := []any{"error", err}
	if goErr := goerr.Unwrap(err); goErr != nil {
		for key, value := range goErr.Values() {
			args = append(args, key, value)
		}
	}

	logger.Error("application error", args...)
}

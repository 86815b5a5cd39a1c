package graphql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-market/internal/api/shared/errors"
	"github.com/feral-file/ff-market/internal/logger"
)

// ErrorPresenter formats a resolver error the way the REST API reports it.
// Server errors are logged and hidden behind a generic message.
func ErrorPresenter(ctx context.Context, err error) *gqlerror.Error {
	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		return gqlErr
	}

	apiErr := apierrors.FromError(err)
	if apiErr.Status >= http.StatusInternalServerError {
		return handleInternalError(ctx, err)
	}

	gqlErr = &gqlerror.Error{
		Message: apiErr.Message,
		Extensions: map[string]interface{}{
			"code":    string(apiErr.Code),
			"message": apiErr.Message,
		},
	}
	if apiErr.Details != "" {
		gqlErr.Extensions["details"] = apiErr.Details
	}
	return gqlErr
}

// handleInternalError logs err and returns the generic internal error
func handleInternalError(ctx context.Context, err error) *gqlerror.Error {
	logger.ErrorCtx(ctx, err, zap.String("error", "Unhandled GraphQL error"))
	return &gqlerror.Error{
		Message: "Internal server error",
		Extensions: map[string]interface{}{
			"code":    string(apierrors.ErrCodeInternalError),
			"message": "Internal server error",
		},
	}
}

// RecoverFunc turns a resolver panic into an internal error
func RecoverFunc(ctx context.Context, err interface{}) error {
	logger.ErrorCtx(ctx, fmt.Errorf("panic: %v", err), zap.Any("panic", err))
	return apierrors.NewInternalError("Internal server error")
}

// fieldError presents err at the position of the root field answered under key
func fieldError(ctx context.Context, field *ast.Field, key string, err error) *gqlerror.Error {
	gqlErr := ErrorPresenter(ctx, err)
	gqlErr.Path = ast.Path{ast.PathName(key)}
	if field.Position != nil {
		gqlErr.Locations = []gqlerror.Location{{Line: field.Position.Line, Column: field.Position.Column}}
	}
	return gqlErr
}

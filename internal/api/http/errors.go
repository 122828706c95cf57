package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus/roomfinder/internal/domain"
)

// respondError maps the domain error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is an internal failure.
func respondError(ctx *gin.Context, err error) {
	var (
		formatErr     *domain.FormatError
		validationErr *domain.ValidationError
		conflictErr   *domain.ConflictError
		notFoundErr   *domain.NotFoundError
	)

	switch {
	case errors.As(err, &formatErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": formatErr.Reason})
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason, "rule": validationErr.Rule})
	case errors.As(err, &conflictErr):
		ctx.JSON(http.StatusConflict, gin.H{"error": conflictErr.Reason})
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Reason})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

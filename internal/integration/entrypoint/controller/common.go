package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/entrypoint/dto"
	"github.com/cashease/backend/internal/integration/entrypoint/middleware"
)

// currentUser returns the authenticated user, writing a 401 when absent.
func currentUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return userID, ok
}

// pathID parses a UUID path parameter, writing a 400 with code when malformed.
func pathID(ctx *gin.Context, name, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name,
			Code:  code,
		})
		return uuid.Nil, false
	}
	return id, true
}

// ownedTarget resolves the caller and the :id path parameter for handlers that
// act on one of the caller's resources.
func ownedTarget(ctx *gin.Context, code string) (userID, id uuid.UUID, ok bool) {
	if userID, ok = currentUser(ctx); !ok {
		return
	}
	id, ok = pathID(ctx, "id", code)
	return
}

// bindJSON decodes the body into req. On failure it answers 400 with the
// validator message in Details.
func bindJSON(ctx *gin.Context, req any, code string) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Code: code, Details: err.Error()})
		return false
	}
	return true
}

func badRequest(ctx *gin.Context, message, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message, Code: code})
}

// respondCoded writes err as an ErrorResponse when it carries a code of type C
// and reports whether it did.
func respondCoded[C ~string](ctx *gin.Context, err error, status func(C) int) bool {
	var coded *domainerror.Coded[C]
	if !errors.As(err, &coded) {
		return false
	}
	ctx.JSON(status(coded.Code), dto.ErrorResponse{Error: coded.Message, Code: string(coded.Code)})
	return true
}

// handleUnmappedError covers errors that any session-backed use case may
// return regardless of its own domain.
func handleUnmappedError(ctx *gin.Context, err error) {
	internal := func(domainerror.SessionErrorCode) int { return http.StatusInternalServerError }
	if respondCoded(ctx, err, internal) {
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An internal error occurred"})
}

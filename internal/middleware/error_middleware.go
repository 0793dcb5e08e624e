package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models/dto"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
)

// userMessage prefers the wrapped message so that remote rejections and
// validation failures reach the client verbatim.
func userMessage(err error, fallback string) string {
	var ce *apperrors.CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}

// HandleAPIError maps application errors onto HTTP responses. All
// controllers funnel their errors through here so status codes stay
// consistent.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, userMessage(err, "Validation failed"))))

	case errors.Is(err, apperrors.ErrParseFailure):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeParseFailure, userMessage(err, "Malformed time value"))))

	case errors.Is(err, apperrors.ErrLookupMiss):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeLookupMiss, userMessage(err, "No matching course record"))))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, userMessage(err, "Resource not found"))))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodePermissionDenied, userMessage(err, "Permission denied"))))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	case errors.Is(err, apperrors.ErrRemoteRejection):
		// The upstream error payload is shown to the user verbatim.
		c.JSON(502, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeRemoteRejection, userMessage(err, "Upstream service rejected the request"))))

	case errors.Is(err, apperrors.ErrTimeout):
		c.JSON(504, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeTimeout, userMessage(err, "Upstream service timed out"))))

	case errors.Is(err, apperrors.ErrNetwork):
		c.JSON(502, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNetworkError, userMessage(err, "Upstream service unreachable"))))

	default:
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/nova-checkout/internal"
)

// Respond converts a Go value to JSON and sends it to the client with the corresponded status code.
func Respond(ctx *gin.Context, data interface{}, statusCode int) error {
	v, ok := internal.DataFromContext(ctx)
	if ok {
		v.StatusCode = statusCode
	}

	// If there is nothing to marshal then set status code and return.
	if data == nil || statusCode == http.StatusNoContent {
		ctx.Status(statusCode)
		return nil
	}

	ctx.JSON(statusCode, data)

	return nil
}

// RespondError sends an error response back to the client.
func RespondError(ctx *gin.Context, err error) error {
	var webErr *Error
	if errors.As(err, &webErr) {
		if v, ok := internal.DataFromContext(ctx); ok {
			v.ErrorCode = webErr.Code
		}

		return Respond(ctx, ErrorResponse{
			Code:    webErr.Code,
			Message: webErr.Err.Error(),
		}, webErr.Status)
	}

	return Respond(ctx, ErrorResponse{
		Code:    codeFromStatus(http.StatusInternalServerError),
		Message: http.StatusText(http.StatusInternalServerError),
	}, http.StatusInternalServerError)
}

package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var errInvalidBody = errors.New("Invalid request: malformed JSON body")

// bindFields fills v from a JSON body, then fills every field still unset
// from the form body or the query string.
func bindFields(ctx *gin.Context, v interface{}, fields map[string]*interface{}) error {
	if ctx.ContentType() == binding.MIMEJSON && ctx.Request.Body != nil {
		if err := ctx.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
			return errInvalidBody
		}
	}

	for key, field := range fields {
		if *field != nil {
			continue
		}

		if value, ok := ctx.GetPostForm(key); ok {
			*field = value
			continue
		}

		if value, ok := ctx.GetQuery(key); ok {
			*field = value
		}
	}

	return nil
}

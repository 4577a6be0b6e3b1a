package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/nova-checkout/framework/web"
	"github.com/doitintl/hello/nova-checkout/stripe/domain"
	"github.com/doitintl/hello/nova-checkout/stripe/service"
)

func (h *Stripe) CreatePortalSession(ctx *gin.Context) error {
	var input domain.PortalInput

	if err := bindFields(ctx, &input, map[string]*interface{}{
		"country":    &input.Country,
		"session_id": &input.SessionID,
	}); err != nil {
		return web.NewCodedRequestError(err, http.StatusBadRequest, service.CodeInvalidRequest)
	}

	session, err := h.service.CreatePortalSession(ctx, input)
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, session, http.StatusOK)
}

package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/nova-checkout/framework/web"
	"github.com/doitintl/hello/nova-checkout/stripe/consts"
	"github.com/doitintl/hello/nova-checkout/stripe/domain"
	"github.com/doitintl/hello/nova-checkout/stripe/service"
)

const maxWebhookBodyBytes = 1 << 20

// WebhookHandler handles events from stripe
func (h *Stripe) WebhookHandler(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			l.Warningf("webhook body exceeds %d bytes", maxBytesErr.Limit)
			return requestError(service.ErrPayloadTooLarge)
		}

		return requestError(service.ErrInvalidPayload)
	}

	signature := ctx.Request.Header.Get(consts.HeaderStripeSignature)
	apiVersion := ctx.Query(consts.QueryAPIVersion)

	if apiVersion != "" {
		l.SetLabel("apiVersion", apiVersion)
	}

	if err := h.webhookService.HandleEvent(ctx, body, signature, apiVersion); err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, domain.WebhookAck{Received: true}, http.StatusOK)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/nova-checkout/framework/web"
	"github.com/doitintl/hello/nova-checkout/stripe/domain"
	"github.com/doitintl/hello/nova-checkout/stripe/service"
)

// CreateCheckoutSession creates a subscription checkout session and returns
// the url the customer should be redirected to.
func (h *Stripe) CreateCheckoutSession(ctx *gin.Context) error {
	var input domain.CheckoutInput

	if err := bindFields(ctx, &input, map[string]*interface{}{
		"country": &input.Country,
		"plan":    &input.Plan,
		"support": &input.Support,
		"billing": &input.Billing,
		"users":   &input.Users,
	}); err != nil {
		return web.NewCodedRequestError(err, http.StatusBadRequest, service.CodeInvalidRequest)
	}

	session, err := h.service.CreateCheckoutSession(ctx, input)
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, session, http.StatusOK)
}

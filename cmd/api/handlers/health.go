package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/nova-checkout/framework/web"
	"github.com/doitintl/hello/nova-checkout/stripe/domain"
)

func Health(ctx *gin.Context) error {
	return web.Respond(ctx, domain.HealthStatus{Status: "ok"}, http.StatusOK)
}

package mid

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/nova-checkout/framework/web"
	"github.com/doitintl/hello/nova-checkout/internal"
	"github.com/doitintl/hello/nova-checkout/logger"
)

const (
	healthCheckExcludePath = "/health"
)

// Logger writes some information about the request to the logs in the
// format: TraceID : (200) POST /checkout -> IP ADDR (latency)
func Logger() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if ctx.Request.URL.Path == healthCheckExcludePath {
				return before(ctx)
			}

			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			log := logger.FromContext(ctx)

			log.Printf("%s: started : %s %s -> %s",
				v.TraceID,
				ctx.Request.Method, ctx.Request.URL.Path, ctx.ClientIP(),
			)

			err := before(ctx)

			if v.ErrorCode != "" {
				log.SetLabel("errorCode", v.ErrorCode)
			}

			log.Printf("%s: completed : %s %s -> %s (%d) (%s)",
				v.TraceID,
				ctx.Request.Method, ctx.Request.URL.Path, ctx.ClientIP(),
				v.StatusCode, time.Since(v.Now),
			)

			return err
		}

		return h
	}

	return f
}

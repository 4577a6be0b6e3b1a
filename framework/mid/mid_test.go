package mid

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/doitintl/hello/nova-checkout/framework/web"
)

func newTestApp() *web.App {
	app := web.NewTestApp(Logger(), Errors(), Panics(), Sentry())

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, map[string]string{"status": "ok"}, http.StatusOK)
	})
	app.Post("/coded", func(ctx *gin.Context) error {
		return web.NewCodedRequestError(errors.New("Invalid country. Must be AU or NZ."), http.StatusBadRequest, "invalid_country")
	})
	app.Post("/plain", func(ctx *gin.Context) error {
		return errors.New("database password leaked in message")
	})
	app.Post("/panic", func(ctx *gin.Context) error {
		panic("unexpected")
	})

	return app
}

func TestMiddlewares(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "health",
			method:     http.MethodGet,
			path:       "/health",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
		{
			name:       "coded request error",
			method:     http.MethodPost,
			path:       "/coded",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":"invalid_country","message":"Invalid country. Must be AU or NZ."}`,
		},
		{
			name:       "unexpected error",
			method:     http.MethodPost,
			path:       "/plain",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"internal_server_error","message":"Internal Server Error"}`,
		},
		{
			name:       "recovered panic",
			method:     http.MethodPost,
			path:       "/panic",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"internal_server_error","message":"Internal Server Error"}`,
		},
	}

	app := newTestApp()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			app.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

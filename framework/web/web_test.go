package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/doitintl/hello/nova-checkout/internal"
)

func TestApp_HandleSetsRequestData(t *testing.T) {
	app := NewTestApp()

	var data *internal.Data

	app.Get("/data", func(ctx *gin.Context) error {
		data, _ = internal.DataFromContext(ctx)
		return Respond(ctx, map[string]string{"ok": "true"}, http.StatusAccepted)
	})

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
	if assert.NotNil(t, data) {
		assert.Equal(t, http.StatusAccepted, data.StatusCode)
		assert.NotEmpty(t, data.TraceID)
		assert.False(t, data.Now.IsZero())
	}
}

func TestApp_MiddlewareOrder(t *testing.T) {
	var calls []string

	record := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx *gin.Context) error {
				calls = append(calls, name)
				return next(ctx)
			}
		}
	}

	app := NewTestApp(record("app"))
	group := NewGroup(app, "/v1", record("group"))
	sub := group.NewSubgroup("/sub", record("subgroup"))

	sub.Post("/x", func(ctx *gin.Context) error {
		calls = append(calls, "handler")
		return Respond(ctx, nil, http.StatusNoContent)
	}, record("route"))

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/sub/x", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"app", "group", "subgroup", "route", "handler"}, calls)
}

func TestApp_ShutdownOnUnhandledError(t *testing.T) {
	app := NewTestApp()
	app.Get("/fail", func(ctx *gin.Context) error {
		return errors.New("boom")
	})

	w := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	})
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "coded error",
			err:        NewCodedRequestError(errors.New("Invalid plan."), http.StatusBadRequest, "invalid_plan"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":"invalid_plan","message":"Invalid plan."}`,
		},
		{
			name:       "status derived code",
			err:        NewRequestError(ErrNotFound, http.StatusNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"code":"not_found","message":"not found"}`,
		},
		{
			name:       "plain errors are hidden",
			err:        errors.New("secret detail"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"internal_server_error","message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			data := &internal.Data{}
			internal.ContextWithData(ctx, data)

			assert.NoError(t, RespondError(ctx, tt.err))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Equal(t, tt.wantStatus, data.StatusCode)
		})
	}
}

func TestIsShutdown(t *testing.T) {
	assert.True(t, IsShutdown(NewShutdownError("stop")))
	assert.False(t, IsShutdown(errors.New("stop")))
	assert.False(t, IsShutdown(NewRequestError(ErrBadRequest, http.StatusBadRequest)))
}

package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	testTools "github.com/doitintl/hello/nova-checkout/common/test_tools"
	"github.com/doitintl/hello/nova-checkout/stripe/domain"
	"github.com/doitintl/hello/nova-checkout/stripe/service"
)

func TestStripe_CreatePortalSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, s, _ := newTestStripe(t)
		s.On("CreatePortalSession", mock.AnythingOfType("*gin.Context"), domain.PortalInput{Country: "AU", SessionID: "cs_test_1"}).
			Return(&domain.PortalSession{URL: "https://billing.stripe.com/p/session/test"}, nil).Once()

		ctx, recorder := testTools.GenerateCtxWithJSON(t, map[string]interface{}{"country": "AU", "session_id": "cs_test_1"})

		require.NoError(t, h.CreatePortalSession(ctx))
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"url":"https://billing.stripe.com/p/session/test"}`, recorder.Body.String())
	})

	t.Run("disabled", func(t *testing.T) {
		h, s, _ := newTestStripe(t)
		s.On("CreatePortalSession", mock.Anything, mock.Anything).Return(nil, service.ErrPortalDisabled).Once()

		ctx, _ := testTools.GenerateCtxWithJSON(t, map[string]interface{}{"country": "AU", "session_id": "cs_test_1"})

		assertWebError(t, h.CreatePortalSession(ctx), http.StatusNotFound, "portal_disabled")
	})
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/petshop-pix/internal/middleware"
	"github.com/anyulbade/petshop-pix/internal/model"
	"github.com/anyulbade/petshop-pix/internal/service"
	"github.com/anyulbade/petshop-pix/internal/testutil"
)

type testEnv struct {
	router   *gin.Engine
	charges  *testutil.ChargeStore
	settings *testutil.SettingsStore
}

func setupRouter(t *testing.T, settings *model.MerchantSettings) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	chargeStore := testutil.NewChargeStore()
	settingsStore := testutil.NewSettingsStore(settings)

	payloadService := service.NewPayloadService(nil, 4)
	settingsService := service.NewSettingsService(settingsStore)
	chargeService := service.NewChargeService(chargeStore, settingsService, payloadService)

	pixHandler := NewPixHandler(payloadService)
	settingsHandler := NewSettingsHandler(settingsService)
	chargeHandler := NewChargeHandler(chargeService)

	router := gin.New()
	router.Use(middleware.ErrorHandler())

	api := router.Group("/api/v1")
	api.POST("/pix/payload", pixHandler.Encode)
	api.POST("/pix/payload/batch", pixHandler.EncodeBatch)
	api.POST("/pix/decode", pixHandler.Decode)
	api.GET("/settings/pix", settingsHandler.Get)
	api.PUT("/settings/pix", settingsHandler.Update)
	api.POST("/charges", chargeHandler.Create)
	api.GET("/charges", chargeHandler.List)
	api.GET("/charges/:id", chargeHandler.Get)
	api.PATCH("/charges/:id/status", chargeHandler.UpdateStatus)

	return &testEnv{router: router, charges: chargeStore, settings: settingsStore}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	switch b := body.(type) {
	case nil:
		buf = &bytes.Buffer{}
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		buf = bytes.NewBuffer(raw)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	e.router.ServeHTTP(w, req)
	return w
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(_ context.Context) error {
	return p.err
}

var errDown = errors.New("connection refused")

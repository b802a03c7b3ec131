package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"floodaware.app/internal/adapters/database"
	"floodaware.app/internal/adapters/external"
	"floodaware.app/internal/adapters/infrastructure"
	"floodaware.app/internal/core/subscription"
	mocks "floodaware.app/internal/mocks"
	"floodaware.app/internal/ports"
)

type backendFixture struct {
	db     *gorm.DB
	router *gin.Engine
}

func newBackendFixture(t *testing.T) *backendFixture {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	repo := database.NewSubscriptionRepositoryAdapter(db)
	require.NoError(t, repo.Migrate(context.Background()))

	logger := mocks.NewLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	registry, err := subscription.NewRegistry(subscription.RegistryDependencies{
		Repository: repo,
		Logger:     logger,
		Clock:      clockwork.NewFakeClockAt(time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Registry: registry,
		Health:   infrastructure.NewDatabaseHealthChecker(db),
		Logger:   logger,
	})
	require.NoError(t, err)

	return &backendFixture{db: db, router: server.GetRouter()}
}

func (f *backendFixture) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestBackend_SubscribeLifecycle(t *testing.T) {
	f := newBackendFixture(t)
	lagos := gin.H{"email": "ada@example.com", "latitude": 6.5244, "longitude": 3.3792}

	w := f.do(http.MethodPost, "/subscribe", lagos)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Subscribed to flood alerts successfully"}`, w.Body.String())

	w = f.do(http.MethodPost, "/subscribe", lagos)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Email already subscribed"}`, w.Body.String())

	w = f.do(http.MethodPost, "/check-subscription", gin.H{"email": "ADA@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = f.do(http.MethodDelete, "/unsubscribe", gin.H{"email": "ada@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)

	// repeating the unsubscribe is a no-op
	w = f.do(http.MethodDelete, "/unsubscribe", gin.H{"email": "ada@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPost, "/check-subscription", gin.H{"email": "ada@example.com"})
	assert.JSONEq(t, `{"success":false}`, w.Body.String())
}

func TestBackend_SubscribeRejections(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{"MissingEmail", gin.H{"latitude": 6.5, "longitude": 3.3}},
		{"InvalidEmail", gin.H{"email": "nope", "latitude": 6.5, "longitude": 3.3}},
		{"MissingLocation", gin.H{"email": "ada@example.com"}},
		{"LatitudeOutOfRange", gin.H{"email": "ada@example.com", "latitude": -91.0, "longitude": 3.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBackendFixture(t)

			w := f.do(http.MethodPost, "/subscribe", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var result subscription.Result
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
			assert.False(t, result.Success)
			assert.NotEmpty(t, result.Error)
		})
	}
}

func TestBackend_Health(t *testing.T) {
	f := newBackendFixture(t)
	f.do(http.MethodPost, "/subscribe", gin.H{"email": "ada@example.com", "latitude": 6.5, "longitude": 3.3})

	w := f.do(http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, ports.HealthStatusHealthy, response["status"])
	assert.Equal(t, float64(1), response["active_subscriptions"])
}

func TestBackend_StorageFailureIsGeneric(t *testing.T) {
	f := newBackendFixture(t)
	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := f.do(http.MethodPost, "/subscribe", gin.H{"email": "ada@example.com", "latitude": 6.5, "longitude": 3.3})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Subscription failed. Please try again."}`, w.Body.String())

	w = f.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestBackend_ServesEngineClient(t *testing.T) {
	f := newBackendFixture(t)
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	logger := mocks.NewLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	client, err := external.NewSubscriptionBackendClientAdapter(external.SubscriptionBackendClientParams{
		BaseURL: srv.URL,
		Logger:  logger,
	})
	require.NoError(t, err)

	ctx := context.Background()
	res, err := client.Subscribe(ctx, ports.SubscribeRequest{Email: "ada@example.com", Latitude: 6.5, Longitude: 3.3})
	require.NoError(t, err)
	assert.True(t, res.Success)

	res, err = client.Subscribe(ctx, ports.SubscribeRequest{Email: "ada@example.com", Latitude: 6.5, Longitude: 3.3})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, subscription.ErrorAlreadySubscribed, res.Error)

	res, err = client.CheckSubscription(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, res.Success)

	res, err = client.Unsubscribe(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, res.Success)
}

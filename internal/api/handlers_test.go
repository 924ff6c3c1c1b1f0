package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardscout/server/config"
	"boardscout/server/internal/auth"
	"boardscout/server/internal/catalog"
	"boardscout/server/internal/database"
	"boardscout/server/internal/models"
	"boardscout/server/internal/queue"
	"boardscout/server/internal/resolver"
	"boardscout/server/internal/storage"
)

type testEnv struct {
	router *gin.Engine
	db     *database.Database
	queue  *queue.BillboardQueue
	issuer *auth.TokenIssuer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Storage.MaxImages = 5
	cfg.Storage.MaxImageSizeMB = 5
	cfg.BatchImport.MaxBatchSize = 100

	synth := resolver.NewSeededSynth(1)
	completer := resolver.NewCompleter(synth, true)
	res := resolver.New(db, catalog.NewStatic(), completer, logger, 5*time.Second)

	importQueue := queue.NewBillboardQueue(10, logger)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	limiter := auth.NewLoginLimiter("", 10, time.Minute, logger)

	handler := NewHandler(db, cfg, res, completer, synth, storage.LocalNoop{}, importQueue, nil, logger)
	authHandler := NewAuthHandler(db, issuer, limiter, 4, logger)

	router := gin.New()
	SetupRoutes(router, handler, authHandler, issuer)

	return &testEnv{router: router, db: db, queue: importQueue, issuer: issuer}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seedBillboard(t *testing.T, b *models.Billboard) int64 {
	t.Helper()
	id, err := e.db.InsertBillboard(context.Background(), b)
	require.NoError(t, err)
	return id
}

func (e *testEnv) token(t *testing.T) string {
	t.Helper()
	token, _, err := e.issuer.Issue(1, "owner@example.com")
	require.NoError(t, err)
	return token
}

func TestGetBillboards_EmptyStore(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/billboards", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No billboards found", resp["message"])
}

func TestGetBillboards_Search(t *testing.T) {
	env := newTestEnv(t)
	env.seedBillboard(t, &models.Billboard{
		Location: "Andheri West, Mumbai", Price: 50000,
		Size: models.Size{Height: 20, Width: 40},
	})
	env.seedBillboard(t, &models.Billboard{
		Location: "FC Road, Pune", Price: 30000,
		Description: "Premium location near university",
		Size:        models.Size{Height: 15, Width: 30},
	})

	// Matches the location column
	w := env.request(t, http.MethodGet, "/api/billboards?search=pune", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var list []models.Billboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "FC Road, Pune", list[0].Location)

	// Matches the description column
	w = env.request(t, http.MethodGet, "/api/billboards?search=university", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	// No match returns the message form, not an empty array
	w = env.request(t, http.MethodGet, "/api/billboards?search=delhi", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No billboards found", resp["message"])
}

func TestGetBillboardDetail_ByID(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedBillboard(t, &models.Billboard{
		Location: "Andheri West, Mumbai", Price: 50000,
		Size: models.Size{Height: 20, Width: 40},
	})

	w := env.request(t, http.MethodGet, "/api/billboards/1", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBillboard(t, w)
	assert.Equal(t, id, resp.ID)
	// Completion fills owner contact and features for display
	assert.Equal(t, "Billboard Media Ltd", resp.Owner.Name)
	assert.Len(t, resp.Features, 5)
}

func decodeBillboard(t *testing.T, w *httptest.ResponseRecorder) models.Billboard {
	t.Helper()
	var resp struct {
		Success   bool             `json:"success"`
		Billboard models.Billboard `json:"billboard"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Billboard
}

func TestGetBillboardDetail_LocationFragment(t *testing.T) {
	env := newTestEnv(t)
	env.seedBillboard(t, &models.Billboard{
		Location: "Koregaon Park, Pune", Price: 40000,
		Size: models.Size{Height: 20, Width: 40},
	})

	w := env.request(t, http.MethodGet, "/api/billboards/koregaon", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Koregaon Park, Pune", decodeBillboard(t, w).Location)
}

func TestGetBillboardDetail_CatalogFallbackOnEmptyStore(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/billboards/pune", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeBillboard(t, w).Address, "Pune")
}

func TestGetBillboardDetail_LastResortScan(t *testing.T) {
	env := newTestEnv(t)
	env.seedBillboard(t, &models.Billboard{
		Location: "MG Road, Mumbai", Price: 60000,
		Size: models.Size{Height: 20, Width: 40},
	})

	// No strategy matches the text but the store has a record
	w := env.request(t, http.MethodGet, "/api/billboards/xyzzy", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MG Road, Mumbai", decodeBillboard(t, w).Location)
}

func TestGetBillboardDetail_NotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/billboards/xyzzy", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Billboard not found", resp["message"])
}

func TestAddBillboard_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/billboards", map[string]interface{}{
		"location": "Test", "latitude": 19.0, "longitude": 72.8,
		"price": 1000, "height": 20, "width": 40,
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddBillboard_CreatesWithDefaults(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/billboards", map[string]interface{}{
		"location":  "Baner Road, Pune",
		"latitude":  18.5590,
		"longitude": 73.7868,
		"price":     25000,
		"height":    20,
		"width":     40,
	}, env.token(t))

	assert.Equal(t, http.StatusCreated, w.Code)
	created := decodeBillboard(t, w)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Static", created.Type)
	assert.Equal(t, "week", created.PriceUnit)
	assert.Equal(t, "South", created.FacingDirection)
	assert.Equal(t, 7, created.MinBookingDays)
	assert.NotEmpty(t, created.Views)
	assert.NotZero(t, created.DailyImpressions)

	// Stored traffic values must be stable across reads
	first := decodeBillboard(t, env.request(t, http.MethodGet, "/api/billboards/1", nil, ""))
	second := decodeBillboard(t, env.request(t, http.MethodGet, "/api/billboards/1", nil, ""))
	assert.Equal(t, first.Views, second.Views)
	assert.Equal(t, first.DailyImpressions, second.DailyImpressions)
}

func TestAddBillboard_RejectsBadType(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/billboards", map[string]interface{}{
		"location": "Test", "latitude": 19.0, "longitude": 72.8,
		"price": 1000, "height": 20, "width": 40,
		"type": "Hologram",
	}, env.token(t))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportBillboards_Queued(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/billboards/import", map[string]interface{}{
		"billboards": []map[string]interface{}{
			{"id": 101, "location": "Station Road, Nagar", "price": 5000},
			{"id": 102, "location": "Market Yard, Nagar", "price": 4000},
		},
	}, env.token(t))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, env.queue.Len())
}

func TestImportBillboards_RejectsEmpty(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/billboards/import", map[string]interface{}{
		"billboards": []map[string]interface{}{},
	}, env.token(t))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMarkets(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/markets", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var markets []config.Market
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &markets))
	assert.Len(t, markets, len(config.SupportedMarkets))
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/health", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignupAndLogin(t *testing.T) {
	env := newTestEnv(t)

	// Signup
	w := env.request(t, http.MethodPost, "/api/auth/signup", map[string]string{
		"name": "Test Owner", "email": "owner@example.com", "password": "secret1",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	// Duplicate email
	w = env.request(t, http.MethodPost, "/api/auth/signup", map[string]string{
		"name": "Test Owner", "email": "owner@example.com", "password": "secret1",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login with the right password
	w = env.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "owner@example.com", "password": "secret1",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)

	// Wrong password
	w = env.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "owner@example.com", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetNearbyBillboards(t *testing.T) {
	env := newTestEnv(t)
	env.seedBillboard(t, &models.Billboard{
		Location: "CST, Mumbai", Latitude: 18.9398, Longitude: 72.8355, Price: 50000,
		Size: models.Size{Height: 20, Width: 40},
	})
	env.seedBillboard(t, &models.Billboard{
		Location: "Colaba, Mumbai", Latitude: 18.9220, Longitude: 72.8347, Price: 45000,
		Size: models.Size{Height: 20, Width: 40},
	})
	env.seedBillboard(t, &models.Billboard{
		Location: "FC Road, Pune", Latitude: 18.5204, Longitude: 73.8567, Price: 30000,
		Size: models.Size{Height: 20, Width: 40},
	})

	w := env.request(t, http.MethodGet, "/api/billboards/1/nearby?radius_km=10", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Data    []struct {
			models.Billboard
			DistanceKM float64 `json:"distanceKm"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Colaba, Mumbai", resp.Data[0].Location)
}

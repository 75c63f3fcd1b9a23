package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinylink/internal/mocks"
	"tinylink/internal/model"
	"tinylink/internal/service"
)

func setupLinkRouter(t *testing.T) (*gin.Engine, *mocks.MockShortenerInterface) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	shortener := mocks.NewMockShortenerInterface(ctrl)
	h := NewLinkHandler(shortener)

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.POST("/links", h.Create)
		v1.GET("/links/:shortCode/stats", h.Stats)
		v1.DELETE("/links/:shortCode", h.Deactivate)
	}
	return router, shortener
}

func TestLinkHandler_Create(t *testing.T) {
	t.Run("new link returns 201", func(t *testing.T) {
		router, shortener := setupLinkRouter(t)

		shortener.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&model.CreateResponse{
				ShortCode: "Abc12345",
				ShortURL:  "http://sho.rt/Abc12345",
				LongURL:   "https://example.com",
				Created:   true,
			}, nil)

		body := bytes.NewBufferString(`{"url":"https://example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/links", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Code)
		assert.Equal(t, "success", resp.Message)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "Abc12345", data["short_code"])
		assert.Equal(t, true, data["created"])
	})

	t.Run("existing link returns 200", func(t *testing.T) {
		router, shortener := setupLinkRouter(t)

		shortener.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&model.CreateResponse{
				ShortCode: "Abc12345",
				ShortURL:  "http://sho.rt/Abc12345",
				LongURL:   "https://example.com",
				Created:   false,
			}, nil)

		body := bytes.NewBufferString(`{"url":"https://example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/links", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("request body is forwarded to the service", func(t *testing.T) {
		router, shortener := setupLinkRouter(t)

		shortener.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req *model.CreateRequest) (*model.CreateResponse, error) {
				assert.Equal(t, "https://example.com", req.URL)
				assert.Equal(t, "my-link", req.CustomAlias)
				assert.Equal(t, 7, req.TTLDays)
				return &model.CreateResponse{ShortCode: "my-link", Created: true}, nil
			})

		body := bytes.NewBufferString(`{"url":"https://example.com","custom_alias":"my-link","ttl_days":7}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/links", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing url field returns 400", func(t *testing.T) {
		router, _ := setupLinkRouter(t)

		body := bytes.NewBufferString(`{"custom_alias":"my-link"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/links", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed json returns 400", func(t *testing.T) {
		router, _ := setupLinkRouter(t)

		body := bytes.NewBufferString(`{not json`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/links", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service errors map to statuses", func(t *testing.T) {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{"invalid url", service.ErrInvalidURL, http.StatusBadRequest},
			{"blocked url", service.ErrBlockedURL, http.StatusBadRequest},
			{"invalid alias", service.ErrInvalidAlias, http.StatusBadRequest},
			{"alias taken", service.ErrAliasTaken, http.StatusConflict},
			{"store unavailable", service.ErrStoreUnavailable, http.StatusServiceUnavailable},
			{"code space exhausted", service.ErrCodeSpaceExhausted, http.StatusInternalServerError},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				router, shortener := setupLinkRouter(t)
				shortener.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				body := bytes.NewBufferString(`{"url":"https://example.com"}`)
				req := httptest.NewRequest(http.MethodPost, "/api/v1/links", body)
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				assert.Equal(t, tc.status, w.Code)

				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tc.status, resp.Code)
			})
		}
	})
}

func TestLinkHandler_Stats(t *testing.T) {
	t.Run("stats for existing link", func(t *testing.T) {
		router, shortener := setupLinkRouter(t)

		expires := time.Now().Add(time.Hour).UTC()
		shortener.EXPECT().Stats(gomock.Any(), "Abc12345").
			Return(&model.StatsResponse{
				ShortCode: "Abc12345",
				LongURL:   "https://example.com",
				Clicks:    42,
				ExpiresAt: &expires,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/links/Abc12345/stats", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(42), data["clicks"])
	})

	t.Run("unknown code returns 404", func(t *testing.T) {
		router, shortener := setupLinkRouter(t)

		shortener.EXPECT().Stats(gomock.Any(), "NoSuch00").Return(nil, service.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/links/NoSuch00/stats", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLinkHandler_Deactivate(t *testing.T) {
	t.Run("deactivate existing link", func(t *testing.T) {
		router, shortener := setupLinkRouter(t)

		shortener.EXPECT().Deactivate(gomock.Any(), "Abc12345").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/links/Abc12345", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown code returns 404", func(t *testing.T) {
		router, shortener := setupLinkRouter(t)

		shortener.EXPECT().Deactivate(gomock.Any(), "NoSuch00").Return(service.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/links/NoSuch00", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

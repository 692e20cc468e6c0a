package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/application/usecase/usage"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/cache"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTokenService struct {
	adapter.TokenService
	claims *adapter.TokenClaims
}

func (s *stubTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token != "good" {
		return nil, errors.New("invalid token")
	}
	return s.claims, nil
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	auth := NewAuthMiddleware(&stubTokenService{claims: &adapter.TokenClaims{UserID: userID, Email: "maya@example.com"}})

	engine := gin.New()
	engine.GET("/me", auth.Authenticate(), func(c *gin.Context) {
		id, _ := GetUserIDFromContext(c)
		email, _ := GetUserEmailFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "email": email})
	})

	tests := []struct {
		name   string
		header string
		status int
		code   domainerror.AuthErrorCode
	}{
		{"missing header", "", http.StatusUnauthorized, domainerror.ErrCodeMissingToken},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, domainerror.ErrCodeInvalidToken},
		{"empty bearer", "Bearer   ", http.StatusUnauthorized, domainerror.ErrCodeMissingToken},
		{"rejected token", "Bearer bad", http.StatusUnauthorized, domainerror.ErrCodeInvalidToken},
		{"valid token", "Bearer good", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, string(tt.code), decodeError(t, rec).Code)
				return
			}
			assert.Contains(t, rec.Body.String(), userID.String())
			assert.Contains(t, rec.Body.String(), "maya@example.com")
		})
	}
}

func TestRateLimiter_FixedWindow(t *testing.T) {
	now := time.Date(2026, time.May, 2, 9, 0, 0, 0, time.UTC)
	limiter := NewRateLimiterWithConfig(2, time.Minute)
	limiter.now = func() time.Time { return now }

	engine := gin.New()
	engine.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.7:4242"
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, send().Code)
	assert.Equal(t, http.StatusNoContent, send().Code)

	blocked := send()
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, string(domainerror.ErrCodeRateLimited), decodeError(t, blocked).Code)

	now = now.Add(time.Minute + time.Second)
	assert.Equal(t, http.StatusNoContent, send().Code)

	limiter.Reset()
	assert.Equal(t, http.StatusNoContent, send().Code)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2026, time.May, 2, 9, 0, 0, 0, time.UTC)
	limiter := NewRateLimiterWithConfig(1, time.Minute)
	limiter.now = func() time.Time { return now }

	require.True(t, limiter.allow("a"))
	require.True(t, limiter.allow("b"))

	now = now.Add(2 * time.Minute)
	limiter.Cleanup()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Empty(t, limiter.entries)
}

func newQuotaEngine(t *testing.T, client redis.Cmdable, userID uuid.UUID, handlerStatus int) *gin.Engine {
	t.Helper()

	tracker := cache.NewUsageTracker(client, 2, 10)
	quota := NewUsageQuotaMiddleware(usage.NewReserveUsageUseCase(tracker))

	engine := gin.New()
	engine.POST("/uploads",
		func(c *gin.Context) {
			if userID != uuid.Nil {
				c.Set(string(UserIDKey), userID)
			}
			c.Next()
		},
		quota.Enforce(),
		func(c *gin.Context) { c.Status(handlerStatus) },
	)
	return engine
}

func postUpload(engine *gin.Engine) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/uploads", nil))
	return rec
}

func TestUsageQuotaMiddleware_Enforce(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	t.Run("counts successful calls until the daily limit", func(t *testing.T) {
		engine := newQuotaEngine(t, client, uuid.New(), http.StatusCreated)

		assert.Equal(t, http.StatusCreated, postUpload(engine).Code)
		assert.Equal(t, http.StatusCreated, postUpload(engine).Code)

		rec := postUpload(engine)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, string(domainerror.ErrCodeQuotaExceeded), body.Code)
		assert.Equal(t, "Daily limit reached", body.Details)
	})

	t.Run("failed handlers do not consume quota", func(t *testing.T) {
		engine := newQuotaEngine(t, client, uuid.New(), http.StatusBadRequest)

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusBadRequest, postUpload(engine).Code)
		}
	})

	t.Run("parallel requests cannot overshoot the limit", func(t *testing.T) {
		engine := newQuotaEngine(t, client, uuid.New(), http.StatusCreated)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			created int
		)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if postUpload(engine).Code == http.StatusCreated {
					mu.Lock()
					created++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 2, created)
	})

	t.Run("missing user is unauthorized", func(t *testing.T) {
		rec := postUpload(newQuotaEngine(t, client, uuid.Nil, http.StatusCreated))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUsageQuotaMiddleware_StoreUnavailable(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	server.Close()

	rec := postUpload(newQuotaEngine(t, client, uuid.New(), http.StatusCreated))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, string(domainerror.ErrCodeQuotaUnavailable), decodeError(t, rec).Code)
}

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"

	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// CacheMiddleware serves hot storefront reads from the in-memory cache.
// Responses are cached verbatim for the store's TTL; mutations do not
// invalidate, so readers may see data up to one TTL old.
type CacheMiddleware struct {
	store service.CacheStore
}

// NewCacheMiddleware is the constructor for CacheMiddleware.
func NewCacheMiddleware(store service.CacheStore) *CacheMiddleware {
	return &CacheMiddleware{store: store}
}

// Cache returns the cached body for a repeated GET and records fresh 200
// responses. Anything but a 200 JSON response passes through uncached.
func (m *CacheMiddleware) Cache(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Method != http.MethodGet {
			return next(c)
		}

		key := m.store.Key(c.Request().URL.Path, c.QueryParams())
		if cached, ok := m.store.Get(key); ok {
			return c.JSONBlob(http.StatusOK, cached)
		}

		recorder := &bodyRecorder{ResponseWriter: c.Response().Writer}
		c.Response().Writer = recorder

		if err := next(c); err != nil {
			return err
		}

		if c.Response().Status == http.StatusOK && recorder.body.Len() > 0 {
			m.store.Set(key, json.RawMessage(bytes.Clone(recorder.body.Bytes())))
		}

		return nil
	}
}

// bodyRecorder tees the response body so a successful payload can be cached
// after it is written to the client.
type bodyRecorder struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)

	return r.ResponseWriter.Write(b)
}

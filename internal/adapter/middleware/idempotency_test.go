package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const testReqID = "3f9a6a1b3d544fbe8b3a6b3e8d6b2c88"

func newRedis(t *testing.T) *redis.Client {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func doReq(t *testing.T, rdb *redis.Client, next echo.HandlerFunc, method, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/api/v1/flow/personal-data", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderUserID, "user-1")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/flow/personal-data")

	h := RequireUser()(Idempotency(rdb, 5*time.Minute)(next))
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func stdHeaders() map[string]string {
	return map[string]string{
		"X-Request-Id": testReqID,
		"X-Request-At": fmt.Sprintf("%d", time.Now().Unix()),
	}
}

func TestIdempotency_MissingRequestID(t *testing.T) {
	rdb := newRedis(t)
	rec := doReq(t, rdb, func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	}, http.MethodPost, `{}`, map[string]string{"X-Request-At": fmt.Sprintf("%d", time.Now().Unix())})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestIdempotency_SkewedRequestAt(t *testing.T) {
	rdb := newRedis(t)
	rec := doReq(t, rdb, func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	}, http.MethodPost, `{}`, map[string]string{
		"X-Request-Id": testReqID,
		"X-Request-At": fmt.Sprintf("%d", time.Now().Add(-time.Hour).Unix()),
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestIdempotency_GetPassesThrough(t *testing.T) {
	rdb := newRedis(t)
	called := false
	rec := doReq(t, rdb, func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}, http.MethodGet, "", nil) // no idempotency headers at all
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("called=%v code=%d", called, rec.Code)
	}
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	rdb := newRedis(t)
	calls := 0
	next := func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusCreated, map[string]string{"application_id": "aaaa"})
	}
	headers := stdHeaders()

	first := doReq(t, rdb, next, http.MethodPost, `{"name":"Maria"}`, headers)
	if first.Code != http.StatusCreated {
		t.Fatalf("first code=%d", first.Code)
	}

	second := doReq(t, rdb, next, http.MethodPost, `{"name":"Maria"}`, headers)
	if second.Code != http.StatusCreated {
		t.Fatalf("second code=%d", second.Code)
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replayed body differs: %q vs %q", first.Body.String(), second.Body.String())
	}
}

func TestIdempotency_DifferentBodyConflicts(t *testing.T) {
	rdb := newRedis(t)
	next := func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]string{"application_id": "aaaa"})
	}
	headers := stdHeaders()

	if rec := doReq(t, rdb, next, http.MethodPost, `{"name":"Maria"}`, headers); rec.Code != http.StatusCreated {
		t.Fatalf("first code=%d", rec.Code)
	}
	rec := doReq(t, rdb, next, http.MethodPost, `{"name":"Joana"}`, headers)
	if rec.Code != http.StatusConflict {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
}

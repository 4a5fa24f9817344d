package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/voyago/tourism-service/internal/domain"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

type stubStatusSource struct {
	status domain.AccountStatus
	err    error
	calls  atomic.Int64
}

func (s *stubStatusSource) AccountStatus(_ context.Context, _ domain.Role, _ string) (domain.AccountStatus, error) {
	s.calls.Add(1)
	return s.status, s.err
}

func newRevalidatedApp(t *testing.T, r *Revalidator, principal Principal) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"code": de.Code})
		},
	})
	app.Get("/sensitive",
		func(c *fiber.Ctx) error {
			c.Locals(principalKey, &principal)
			return c.Next()
		},
		r.Handle,
		func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) },
	)
	return app
}

func revalidatorFixture(t *testing.T, source StatusSource, ttl time.Duration) *Revalidator {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRevalidator(client, source, ttl, zap.NewNop())
}

func TestRevalidatorAdmitsActivePrincipal(t *testing.T) {
	source := &stubStatusSource{status: domain.AccountStatusActive}
	r := revalidatorFixture(t, source, time.Minute)
	app := newRevalidatedApp(t, r, Principal{ID: "t1", Role: domain.RoleTourist})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/sensitive", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
}

func TestRevalidatorBlocksInactivePrincipal(t *testing.T) {
	source := &stubStatusSource{status: domain.AccountStatusInactive}
	r := revalidatorFixture(t, source, time.Minute)
	app := newRevalidatedApp(t, r, Principal{ID: "t1", Role: domain.RoleTourist})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/sensitive", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", res.StatusCode)
	}
}

func TestRevalidatorCachesStatus(t *testing.T) {
	source := &stubStatusSource{status: domain.AccountStatusActive}
	r := revalidatorFixture(t, source, time.Minute)
	app := newRevalidatedApp(t, r, Principal{ID: "t1", Role: domain.RoleTourist})

	for i := 0; i < 3; i++ {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/sensitive", nil))
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if res.StatusCode != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, res.StatusCode)
		}
	}
	if got := source.calls.Load(); got != 1 {
		t.Fatalf("expected a single store lookup, got %d", got)
	}
}

func TestRevalidatorSurvivesCacheOutage(t *testing.T) {
	source := &stubStatusSource{status: domain.AccountStatusActive}
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRevalidator(client, source, time.Minute, zap.NewNop())
	app := newRevalidatedApp(t, r, Principal{ID: "t1", Role: domain.RoleTourist})

	mr.Close()

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/sensitive", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("cache outage must fall through to the store, got %d", res.StatusCode)
	}
}

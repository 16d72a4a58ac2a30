package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"localdir/internal/platform/authtoken"
	"localdir/pkg/platform/middleware/request"
	"localdir/pkg/requestcontext"
	"localdir/pkg/testutil"
)

type whoami struct{}

func (whoami) Register(r chi.Router) {
	r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(requestcontext.ActorID(r.Context())))
	})
}

type RouterSuite struct {
	suite.Suite
	tokens  *authtoken.Service
	handler http.Handler
	redisUp bool
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.tokens = authtoken.New("test-signing-key-0123456789abcdef", "localdir")
	s.redisUp = true

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "localdir_test_total", Help: "test"}))

	s.handler = NewRouter(Config{
		Logger:    slog.New(slog.DiscardHandler),
		Validator: s.tokens,
		AdminRole: "admin",
		Gatherer:  reg,
		Health: map[string]HealthCheck{
			"redis": func(context.Context) error {
				if !s.redisUp {
					return errors.New("connection refused")
				}
				return nil
			},
		},
		Admin: []Registrar{whoami{}},
	})
}

func (s *RouterSuite) get(path, token string) *http.Request {
	req := testutil.NewJSONRequest(s.T(), http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func (s *RouterSuite) token(role string) string {
	tok, err := s.tokens.Issue("admin-42", role, time.Hour)
	s.Require().NoError(err)
	return tok
}

func (s *RouterSuite) TestAdminGate() {
	s.Run("missing token", func() {
		rr := testutil.Serve(s.handler, s.get("/admin/whoami", ""))
		s.Equal(http.StatusUnauthorized, rr.Code)
	})

	s.Run("wrong role", func() {
		rr := testutil.Serve(s.handler, s.get("/admin/whoami", s.token("member")))
		s.Equal(http.StatusForbidden, rr.Code)
	})

	s.Run("admin", func() {
		rr := testutil.Serve(s.handler, s.get("/admin/whoami", s.token("admin")))
		s.Equal(http.StatusOK, rr.Code)
		s.Equal("admin-42", rr.Body.String())
		s.NotEmpty(rr.Header().Get(request.HeaderRequestID))
	})
}

func (s *RouterSuite) TestHealth() {
	rr := testutil.Serve(s.handler, s.get("/healthz", ""))
	s.Equal(http.StatusOK, rr.Code)

	s.redisUp = false
	rr = testutil.Serve(s.handler, s.get("/healthz", ""))
	s.Equal(http.StatusServiceUnavailable, rr.Code)
	s.Contains(rr.Body.String(), "connection refused")
}

func (s *RouterSuite) TestMetrics() {
	rr := testutil.Serve(s.handler, s.get("/metrics", ""))
	s.Equal(http.StatusOK, rr.Code)
	s.True(strings.Contains(rr.Body.String(), "localdir_test_total"))
}

package httpapp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/grigory222/llm-chat-backend/internal/config"
	"github.com/grigory222/llm-chat-backend/internal/domain/models"
	"github.com/grigory222/llm-chat-backend/internal/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type stubUsers struct {
	users []models.User
	err   error
}

func (s *stubUsers) List(context.Context) ([]models.User, error) { return s.users, s.err }

func testLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

type HTTPAppTestSuite struct {
	suite.Suite
	users *stubUsers
	app   *App
}

func TestHTTPAppTestSuite(t *testing.T) {
	suite.Run(t, new(HTTPAppTestSuite))
}

func (s *HTTPAppTestSuite) SetupTest() {
	s.users = &stubUsers{users: []models.User{}}
	s.app = New(testLogger(), envTest, config.HTTP{Port: 0}, s.users)
}

func (s *HTTPAppTestSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.app.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (s *HTTPAppTestSuite) TestRoot() {
	w := s.get("/")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"message": "Hello world"}`, w.Body.String())
	s.NotEmpty(w.Header().Get(middleware.RequestIDHeader))
}

func (s *HTTPAppTestSuite) TestRootIgnoresDatabaseState() {
	s.users.err = errors.New("db down")

	w := s.get("/")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"message": "Hello world"}`, w.Body.String())
}

func (s *HTTPAppTestSuite) TestGetUsers() {
	w := s.get("/get-users")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())

	s.users.users = []models.User{{ID: 1, Name: "Test User", Username: "tester"}}
	w = s.get("/get-users")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"name":"Test User"`)
}

func (s *HTTPAppTestSuite) TestUnknownRoute() {
	w := s.get("/users")
	s.Equal(http.StatusNotFound, w.Code)
}

func TestRunAndStop(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := lis.Addr().(*net.TCPAddr).Port
	require.NoError(t, lis.Close())

	app := New(testLogger(), envTest, config.HTTP{Port: port}, &stubUsers{})

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", lis.Addr().String())
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 2*time.Second, 20*time.Millisecond)

	app.Stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

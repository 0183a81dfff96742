package setup_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victormf2/serviceprovider"
	"github.com/victormf2/serviceprovider/internal/examples/gin/handlers"
	"github.com/victormf2/serviceprovider/internal/examples/gin/mocks"
	"github.com/victormf2/serviceprovider/internal/examples/gin/setup"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c := serviceprovider.NewContainer()
	mocks.RegisterTestServices(c)
	setup.RegisterHttpServer(c)

	router, err := serviceprovider.Get[*gin.Engine](c)
	require.NoError(t, err)
	return router
}

func serve(router *gin.Engine, method string, path string, body any) *httptest.ResponseRecorder {
	var reader bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&reader).Encode(body)
	}
	request := httptest.NewRequest(method, path, &reader)
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHttpServer(t *testing.T) {
	t.Run("should serve the users crud", func(t *testing.T) {
		router := newRouter(t)

		response := serve(router, http.MethodPost, "/users", handlers.CreateUserInput{Name: "John Doe", Email: "john.doe@example.com"})
		require.Equal(t, http.StatusOK, response.Code)
		assert.NotEmpty(t, response.Header().Get("X-Request-ID"))

		var created handlers.CreateUserOutput
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &created))
		require.Equal(t, int64(1), created.ID)

		response = serve(router, http.MethodPut, "/users", handlers.UpdateUserInput{ID: 1, Name: "Jane Doe", Email: "jane.doe@example.com"})
		require.Equal(t, http.StatusOK, response.Code)

		response = serve(router, http.MethodGet, "/users/1", nil)
		require.Equal(t, http.StatusOK, response.Code)
		var found handlers.GetUserByIDOutput
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &found))
		assert.Equal(t, handlers.GetUserByIDOutput{ID: 1, Name: "Jane Doe", Email: "jane.doe@example.com"}, found)

		response = serve(router, http.MethodDelete, "/users/1", nil)
		require.Equal(t, http.StatusOK, response.Code)

		response = serve(router, http.MethodGet, "/users/1", nil)
		require.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("should validate the input", func(t *testing.T) {
		router := newRouter(t)

		response := serve(router, http.MethodPost, "/users", handlers.CreateUserInput{Name: "John Doe", Email: "not an email"})
		require.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("should expose metrics", func(t *testing.T) {
		router := newRouter(t)

		serve(router, http.MethodGet, "/users/42", nil)

		response := serve(router, http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), `example_http_requests_total{method="GET",path="/users/:id",status="404"} 1`)
	})

	t.Run("should build the server from the config", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		c := serviceprovider.NewContainer()
		mocks.RegisterTestServices(c)
		setup.RegisterHttpServer(c)

		server, err := serviceprovider.Get[*http.Server](c)
		require.NoError(t, err)
		router, err := serviceprovider.Get[*gin.Engine](c)
		require.NoError(t, err)

		assert.Equal(t, ":8080", server.Addr)
		assert.Same(t, router, server.Handler)
	})
}

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func textHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := body
		if id := httprouter.ParamsFromContext(r.Context()).ByName("id"); id != "" {
			response += ":" + id
		}
		_, _ = w.Write([]byte(response))
	})
}

func header(name, value string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add(name, value)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter(t *testing.T) {
	rt := New(
		WithRoutes(
			Route{Path: "/v1/people/:id", Method: http.MethodGet, Handler: textHandler("person")},
			Route{
				Path:        "/v1/companies",
				Method:      http.MethodGet,
				Handler:     textHandler("companies"),
				Middlewares: []func(http.Handler) http.Handler{header("X-Trace", "first"), header("X-Trace", "second")},
			},
		),
		WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})),
		WithMethodNotAllowed(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = w.Write([]byte("custom"))
		})),
	)

	tests := []struct {
		name   string
		method string
		target string
		status int
		body   string
	}{
		{name: "parâmetro de caminho", method: http.MethodGet, target: "/v1/people/7", status: http.StatusOK, body: "person:7"},
		{name: "rota com middlewares", method: http.MethodGet, target: "/v1/companies", status: http.StatusOK, body: "companies"},
		{name: "caminho inexistente", method: http.MethodGet, target: "/v1/nope", status: http.StatusTeapot},
		{name: "método não suportado", method: http.MethodPost, target: "/v1/companies", status: http.StatusMethodNotAllowed, body: "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}

	t.Run("middlewares na ordem declarada", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/companies", nil))

		assert.Equal(t, []string{"first", "second"}, rec.Header().Values("X-Trace"))
	})

	t.Run("allow preenchido no 405", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/companies", nil))

		assert.Contains(t, rec.Header().Get("Allow"), http.MethodGet)
	})
}

func TestRouter_Describe(t *testing.T) {
	rt := New(WithRoutes(
		Route{Path: "/v1/reports/spending-movement", Method: http.MethodGet, Handler: textHandler("r")},
		Route{Path: "/healthcheck", Method: http.MethodGet, Handler: textHandler("h")},
		Route{Path: "/v1/cron/:type/run", Method: http.MethodPost, Handler: textHandler("c")},
	))

	assert.Equal(t, []string{
		"GET /healthcheck",
		"POST /v1/cron/:type/run",
		"GET /v1/reports/spending-movement",
	}, rt.Describe())
}

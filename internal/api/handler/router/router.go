package router

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
)

// Route associa método e caminho a um handler, com middlewares próprios opcionais
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	router *httprouter.Router
	routes []Route
}

type ConfigRouter func(router *Router)

func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// WithNotFound define a resposta para caminhos sem rota
func WithNotFound(handler http.Handler) ConfigRouter {
	return func(router *Router) {
		router.router.NotFound = handler
	}
}

// WithMethodNotAllowed define a resposta para caminho existente com método não suportado.
// O cabeçalho Allow já vem preenchido pelo httprouter.
func WithMethodNotAllowed(handler http.Handler) ConfigRouter {
	return func(router *Router) {
		router.router.MethodNotAllowed = handler
	}
}

func New(configs ...ConfigRouter) *Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas; os middlewares da rota são aplicados na ordem declarada
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
		r.routes = append(r.routes, route)
	}
}

// Describe lista "MÉTODO caminho" de cada rota registrada, ordenado por caminho
func (r *Router) Describe() []string {
	routes := make([]Route, len(r.routes))
	copy(routes, r.routes)
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})

	described := make([]string, 0, len(routes))
	for _, route := range routes {
		described = append(described, route.Method+" "+route.Path)
	}
	return described
}

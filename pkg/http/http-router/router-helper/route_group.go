package router_helper

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup mounts handlers under a shared path prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{
		router: router,
		prefix: strings.TrimSuffix(prefix, "/"),
	}
}

func (g *RouteGroup) GET(path string, handle httprouter.Handle) {
	g.router.GET(g.prefix+path, handle)
}

func (g *RouteGroup) POST(path string, handle httprouter.Handle) {
	g.router.POST(g.prefix+path, handle)
}

// SetNotFound installs handler for every unmatched request, including a
// known path requested with another method.
func (g *RouteGroup) SetNotFound(handler http.Handler) {
	g.router.NotFound = handler
	g.router.HandleMethodNotAllowed = false
}

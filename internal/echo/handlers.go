package echo

import (
	"net/http"

	"github.com/dmitrymomot/ipecho/handler"
	"github.com/dmitrymomot/ipecho/pkg/clientip"
)

// IPResponse is the body of GET /ip.
type IPResponse struct {
	IP string `json:"ip"`
}

// RootResponse is the body of GET /. Field order is part of the wire format.
type RootResponse struct {
	Message string `json:"message"`
	IP      string `json:"ip"`
}

// IP reports the resolved client address.
func IP(r *http.Request) handler.Response {
	return handler.JSON(IPResponse{IP: clientip.FromRequest(r)})
}

// Root reports service status together with the resolved client address.
func Root(r *http.Request) handler.Response {
	return handler.JSON(RootResponse{
		Message: "ok",
		IP:      clientip.FromRequest(r),
	})
}

func notFound(*http.Request) handler.Response {
	return handler.Error(http.StatusNotFound)
}

func methodNotAllowed(*http.Request) handler.Response {
	return handler.Error(http.StatusMethodNotAllowed)
}

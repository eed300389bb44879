package middleware

import (
	"net"
	"net/http"

	"github.com/tomasen/realip"
)

// ClientIP returns the address of the caller. Forwarding headers such as
// X-Forwarded-For are client controlled, so they are read only when
// trustProxy is set, i.e. when a proxy that overwrites them sits in front.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		return realip.FromRequest(r)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

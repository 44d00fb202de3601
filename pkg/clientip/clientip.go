// Package clientip resolves the address of the client behind a request.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers in the order they are trusted.
var forwardHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// FromRequest returns the normalized client IP, or "" when none of the proxy
// headers nor RemoteAddr hold a valid address. For X-Forwarded-For the first
// valid entry wins.
func FromRequest(r *http.Request) string {
	for _, h := range forwardHeaders {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for part := range strings.SplitSeq(v, ",") {
			if ip := normalize(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}

package pkg

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ReadUserIP returns the client IP, preferring proxy headers over the connection address.
func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		// first entry is the original client
		ipAddr, _, _ = strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
		ipAddr = strings.TrimSpace(ipAddr)
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		ipAddr = host
	}

	if net.ParseIP(ipAddr) == nil {
		return "", fmt.Errorf("ip addr %s is invalid", ipAddr)
	}
	return ipAddr, nil
}

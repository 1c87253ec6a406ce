package middleware

import (
	"io"
	"net/http"
)

// maxDrainBytes bounds how much of an unread body is consumed after the
// handler returns. Set payloads are a few KB; anything past this is closed
// without reading and the connection is not reused.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest drains what the handler left unread in the request body, up to maxDrainBytes,
// and closes it.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil {
				return
			}
			_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, maxDrainBytes))
			_ = r.Body.Close()
		})
	}
}

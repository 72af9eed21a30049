package httpx

import (
	"net/http"
	"strconv"
)

// PageParams reads the standard pagination query parameters: pageSize
// (falling back to defaultSize when absent or invalid) and continuationToken
// (passed through verbatim — the token is owned by the store and opaque here).
func PageParams(r *http.Request, defaultSize int32) (int32, string) {
	size := defaultSize
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 32); err == nil && n > 0 {
			size = int32(n)
		}
	}
	return size, r.URL.Query().Get("continuationToken")
}

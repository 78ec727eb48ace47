package session

import "net/http"

const (
	HeaderSessionID = "X-Session-ID"
	CookieSessionID = "sid"
)

// IDFromRequest mengambil session id dari header X-Session-ID, atau fallback
// ke cookie sid. Kosong berarti anonymous.
func IDFromRequest(r *http.Request) string {
	if id := r.Header.Get(HeaderSessionID); id != "" {
		return id
	}
	if cookie, err := r.Cookie(CookieSessionID); err == nil {
		return cookie.Value
	}
	return ""
}

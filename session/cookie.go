package session

import (
	"net/http"

	"github.com/admediate/admediate-server/config"
	"github.com/gofrs/uuid"
)

// ParseSessionID reads the session ID from the request's session cookie,
// minting a fresh one when the cookie is absent or blank. isNew tells the
// caller whether the cookie still needs to be written onto the response.
func ParseSessionID(r *http.Request, cfg *config.Session) (sid string, isNew bool, err error) {
	if cookie, cerr := r.Cookie(cfg.CookieName); cerr == nil && cookie.Value != "" {
		return cookie.Value, false, nil
	}
	id, err := uuid.NewV4()
	if err != nil {
		return "", false, err
	}
	return id.String(), true, nil
}

// WriteSessionID sets the session cookie on the response. No Expires is set
// on purpose: the cookie lives for the browsing session only, matching the
// lifetime of the server-side state.
func WriteSessionID(w http.ResponseWriter, cfg *config.Session, sid string) {
	http.SetCookie(w, &http.Cookie{
		Name:   cfg.CookieName,
		Value:  sid,
		Domain: cfg.Domain,
		Path:   "/",
	})
}

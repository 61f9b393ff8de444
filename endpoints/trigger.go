package endpoints

import (
	"net/http"

	"github.com/admediate/admediate-server/config"
	"github.com/admediate/admediate-server/session"
	"github.com/golang/glog"
	"github.com/julienschmidt/httprouter"
)

// AdMediator is the part of the bridge the HTTP surface drives.
type AdMediator interface {
	// TriggerAd evaluates one ad opportunity for the session. It never fails.
	TriggerAd(sid string)
	// SendSignal forwards an already-chosen URL to the native bridges,
	// bypassing cooldown and selection. It never fails.
	SendSignal(url string)
}

// NewTriggerEndpoint implements POST /ad/trigger, the orchestrator entry
// point. The session is resolved from the session cookie; a fresh cookie is
// minted for first-time callers.
func NewTriggerEndpoint(mediator AdMediator, cfg *config.Session) httprouter.Handle {
	return httprouter.Handle(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		sid, isNew, err := session.ParseSessionID(r, cfg)
		if err != nil {
			glog.Errorf("Failed to mint a session ID: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if isNew {
			session.WriteSessionID(w, cfg, sid)
		}
		mediator.TriggerAd(sid)
		w.WriteHeader(http.StatusNoContent)
	})
}

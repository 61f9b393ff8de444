package endpoints

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// NewSignalEndpoint implements POST /ad/signal, the dispatcher entry point
// for callers that have already chosen a URL. The "url" parameter is
// accepted as a query or form value and is passed through opaque, not
// validated.
func NewSignalEndpoint(mediator AdMediator) httprouter.Handle {
	return httprouter.Handle(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		url := r.FormValue("url")
		if url == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`the "url" parameter is required`))
			return
		}
		mediator.SendSignal(url)
		w.WriteHeader(http.StatusNoContent)
	})
}

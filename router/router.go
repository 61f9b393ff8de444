package router

import (
	"net/http"

	"github.com/admediate/admediate-server/admetrics"
	"github.com/admediate/admediate-server/bridge"
	"github.com/admediate/admediate-server/config"
	"github.com/admediate/admediate-server/endpoints"
	"github.com/admediate/admediate-server/hostapp"
	"github.com/admediate/admediate-server/session"
	"github.com/julienschmidt/httprouter"
	"github.com/rcrowley/go-metrics"
	"github.com/rs/cors"
)

type Router struct {
	*httprouter.Router
	MetricsEngine *admetrics.Metrics
}

// New assembles the mediator: session store, metrics, host app client, the
// bridge, and the HTTP routes that expose it.
func New(cfg *config.Configuration) (*Router, error) {
	me := admetrics.NewMetrics(metrics.NewPrefixedRegistry("admediate."))
	if cfg.Metrics.Host != "" {
		go me.Export(&cfg.Metrics)
	}

	store := session.NewCacheStore(cfg.Session.CacheSizeBytes, cfg.Session.TTLDuration())
	host := hostapp.New(&cfg.HostApp)
	b := bridge.New(cfg, store, bridge.WallClock(), host, me)

	r := &Router{
		Router:        httprouter.New(),
		MetricsEngine: me,
	}
	r.POST("/ad/trigger", endpoints.NewTriggerEndpoint(b, &cfg.Session))
	r.POST("/ad/signal", endpoints.NewSignalEndpoint(b))
	r.GET("/status", endpoints.NewStatusEndpoint(cfg.StatusResponse))
	return r, nil
}

// SupportCORS wraps the router with a permissive CORS policy. Credentialed
// requests are allowed because the session cookie rides along with the
// page's trigger calls.
func SupportCORS(handler http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowCredentials: true,
		AllowOriginFunc: func(string) bool {
			return true
		},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Origin", "X-Requested-With", "Content-Type", "Accept"},
	})
	return c.Handler(handler)
}

// NoCache forbids intermediaries from caching mediator responses.
type NoCache struct {
	Handler http.Handler
}

func (m NoCache) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	m.Handler.ServeHTTP(w, r)
}

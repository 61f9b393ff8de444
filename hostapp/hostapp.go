package hostapp

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/admediate/admediate-server/config"
	"github.com/admediate/admediate-server/transport"
)

// App is the production transport.Host. It forwards bridge invocations to the
// callback endpoints the native application registered at startup. A bridge
// variant is present only when its endpoint is configured, which keeps the
// dispatcher's probing meaningful.
type App struct {
	android *callbackClient
	ios     *callbackClient
}

func New(cfg *config.HostApp) *App {
	client := newHTTPClient(defaultHTTPConfig, cfg.Timeout())
	app := &App{}
	if cfg.Android.Endpoint != "" {
		app.android = &callbackClient{endpoint: cfg.Android.Endpoint, client: client}
	}
	if cfg.IOS.Endpoint != "" {
		app.ios = &callbackClient{endpoint: cfg.IOS.Endpoint, client: client}
	}
	return app
}

func (a *App) Android() (transport.InjectedObject, bool) {
	if a.android == nil {
		return nil, false
	}
	return a.android, true
}

func (a *App) MessageHandler(name string) (transport.MessageHandler, bool) {
	if a.ios == nil || name != transport.ShowAdHandler {
		return nil, false
	}
	return a.ios, true
}

// httpClientConfig groups options which control how HTTP requests are made to
// the host app's callbacks.
type httpClientConfig struct {
	IdleConnTimeout time.Duration
	MaxConns        int
	MaxConnsPerHost int
}

var defaultHTTPConfig = httpClientConfig{
	MaxConns:        50,
	MaxConnsPerHost: 10,
	IdleConnTimeout: 60 * time.Second,
}

func newHTTPClient(c httpClientConfig, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        c.MaxConns,
			MaxIdleConnsPerHost: c.MaxConnsPerHost,
			IdleConnTimeout:     c.IdleConnTimeout,
		},
	}
}

// callbackClient delivers the destination URL to one native callback. It
// serves as both the injected Android object and the iOS message handler;
// the payload shape is the same for both.
type callbackClient struct {
	endpoint string
	client   *http.Client
}

func (c *callbackClient) ShowAd(url string) error {
	return c.post(url)
}

func (c *callbackClient) PostMessage(body string) error {
	return c.post(body)
}

func (c *callbackClient) post(body string) error {
	resp, err := c.client.Post(c.endpoint, "text/plain", strings.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(ioutil.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("host app callback %s responded with %d", c.endpoint, resp.StatusCode)
	}
	return nil
}

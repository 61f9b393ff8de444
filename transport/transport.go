package transport

// Transports connect the mediator to the native side of the embedding
// application. Each variant corresponds to one bridge shape a host app may
// expose to its web view; presence is discovered at dispatch time by probing
// the Host value.

// Host is whatever surface the embedding application hands the mediator.
// Probes inspect it for the bridge variants they know how to drive, so a
// host participates in a variant by implementing that variant's interface.
type Host interface{}

// InjectedObject is the Android-style interface a host app injects into its
// web view.
type InjectedObject interface {
	ShowAd(url string) error
}

// AndroidHost is implemented by hosts that may carry the injected Android
// object. The bool result is the presence test: a host can implement the
// interface and still not expose the object.
type AndroidHost interface {
	Android() (InjectedObject, bool)
}

// MessageHandler is a WebKit script-message handler.
type MessageHandler interface {
	PostMessage(body string) error
}

// WebKitHost is implemented by hosts that may expose script-message handlers
// under webkit.messageHandlers.
type WebKitHost interface {
	MessageHandler(name string) (MessageHandler, bool)
}

// ShowAdHandler is the well-known message handler name the iOS side registers.
const ShowAdHandler = "showAd"

// Transport is one bridge found present on the host, ready to be invoked.
type Transport interface {
	// Name uniquely identifies the bridge variant.
	Name() string
	// Send forwards the ad destination to the native side. Fire-and-forget:
	// a nil error only means the handoff itself succeeded.
	Send(url string) error
}

// A Probe checks the host for one bridge variant.
type Probe func(host Host) (Transport, bool)

// CoreProbes returns the known bridge probes in detection order.
func CoreProbes() []Probe {
	return []Probe{
		ProbeAndroid,
		ProbeIOS,
	}
}

package transport

type iosTransport struct {
	handler MessageHandler
}

func (iosTransport) Name() string {
	return "ios"
}

func (t iosTransport) Send(url string) error {
	return t.handler.PostMessage(url)
}

// ProbeIOS detects the WebKit message-handler bridge.
func ProbeIOS(host Host) (Transport, bool) {
	h, ok := host.(WebKitHost)
	if !ok {
		return nil, false
	}
	handler, ok := h.MessageHandler(ShowAdHandler)
	if !ok || handler == nil {
		return nil, false
	}
	return iosTransport{handler: handler}, true
}

package transport

type androidTransport struct {
	obj InjectedObject
}

func (androidTransport) Name() string {
	return "android"
}

func (t androidTransport) Send(url string) error {
	return t.obj.ShowAd(url)
}

// ProbeAndroid detects the injected-object bridge.
func ProbeAndroid(host Host) (Transport, bool) {
	h, ok := host.(AndroidHost)
	if !ok {
		return nil, false
	}
	obj, ok := h.Android()
	if !ok || obj == nil {
		return nil, false
	}
	return androidTransport{obj: obj}, true
}

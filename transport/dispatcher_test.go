package transport

import (
	"errors"
	"testing"

	"github.com/admediate/admediate-server/admetrics"
	"github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
)

// fakeHost records bridge invocations. Capabilities it does not carry report
// themselves absent, mirroring a host app that never injected them.
type fakeHost struct {
	hasAndroid bool
	hasIOS     bool

	androidErr error
	iosErr     error

	androidCalls []string
	iosCalls     []string
}

func (h *fakeHost) Android() (InjectedObject, bool) {
	if !h.hasAndroid {
		return nil, false
	}
	return h, true
}

func (h *fakeHost) ShowAd(url string) error {
	h.androidCalls = append(h.androidCalls, url)
	return h.androidErr
}

func (h *fakeHost) MessageHandler(name string) (MessageHandler, bool) {
	if !h.hasIOS || name != ShowAdHandler {
		return nil, false
	}
	return h, true
}

func (h *fakeHost) PostMessage(body string) error {
	h.iosCalls = append(h.iosCalls, body)
	return h.iosErr
}

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(CoreProbes(), admetrics.NewMetrics(metrics.NewRegistry()))
}

func TestDispatchFansOutToAllPresentBridges(t *testing.T) {
	host := &fakeHost{hasAndroid: true, hasIOS: true}

	err := newTestDispatcher().Dispatch(host, "https://otieu.com/4/10250311")
	assert.NoError(t, err)
	assert.Equal(t, []string{"https://otieu.com/4/10250311"}, host.androidCalls)
	assert.Equal(t, []string{"https://otieu.com/4/10250311"}, host.iosCalls)
}

func TestDispatchSingleBridge(t *testing.T) {
	host := &fakeHost{hasIOS: true}

	err := newTestDispatcher().Dispatch(host, "https://otieu.com/4/9515888")
	assert.NoError(t, err)
	assert.Empty(t, host.androidCalls)
	assert.Equal(t, []string{"https://otieu.com/4/9515888"}, host.iosCalls)
}

func TestDispatchNoBridgeIsNotAnError(t *testing.T) {
	host := &fakeHost{}

	err := newTestDispatcher().Dispatch(host, "https://otieu.com/4/10205357")
	assert.NoError(t, err, "a missing bridge is a debug fallback, not a failure")
	assert.Empty(t, host.androidCalls)
	assert.Empty(t, host.iosCalls)
}

func TestDispatchBareHost(t *testing.T) {
	err := newTestDispatcher().Dispatch(struct{}{}, "https://otieu.com/4/10205357")
	assert.NoError(t, err, "a host implementing no bridge interfaces must probe as absent")
}

func TestDispatchErrorDoesNotShortCircuit(t *testing.T) {
	host := &fakeHost{
		hasAndroid: true,
		hasIOS:     true,
		androidErr: errors.New("webview detached"),
	}

	err := newTestDispatcher().Dispatch(host, "https://otieu.com/4/10250311")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "android bridge: webview detached")
	}
	assert.Len(t, host.iosCalls, 1, "the iOS bridge must still be invoked after an Android failure")
}

func TestDispatchCombinesErrors(t *testing.T) {
	host := &fakeHost{
		hasAndroid: true,
		hasIOS:     true,
		androidErr: errors.New("android down"),
		iosErr:     errors.New("ios down"),
	}

	err := newTestDispatcher().Dispatch(host, "https://otieu.com/4/10250311")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "android down")
		assert.Contains(t, err.Error(), "ios down")
	}
}

func TestProbeOrder(t *testing.T) {
	probes := CoreProbes()
	if assert.Len(t, probes, 2) {
		host := &fakeHost{hasAndroid: true, hasIOS: true}
		first, _ := probes[0](host)
		second, _ := probes[1](host)
		assert.Equal(t, "android", first.Name())
		assert.Equal(t, "ios", second.Name())
	}
}

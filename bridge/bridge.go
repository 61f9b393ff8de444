package bridge

import (
	"runtime/debug"
	"time"

	"github.com/admediate/admediate-server/admetrics"
	"github.com/admediate/admediate-server/config"
	"github.com/admediate/admediate-server/session"
	"github.com/admediate/admediate-server/transport"
	"github.com/golang/glog"
)

// Bridge mediates ad triggers from the page to the host application's native
// bridges: it gates them on the per-session cooldown, picks one destination
// from the pool, and hands it to the dispatcher.
type Bridge struct {
	gate       *Gate
	pool       []string
	picker     picker
	dispatcher *transport.Dispatcher
	host       transport.Host
	me         *admetrics.Metrics
}

func New(cfg *config.Configuration, store session.Store, clock Clock, host transport.Host, me *admetrics.Metrics) *Bridge {
	return &Bridge{
		gate:       NewGate(store, clock, cfg.CooldownDuration()),
		pool:       cfg.AdPool.URLs,
		picker:     randomPicker{},
		dispatcher: transport.NewDispatcher(transport.CoreProbes(), me),
		host:       host,
		me:         me,
	}
}

// TriggerAd evaluates one ad opportunity for the session. All failures are
// contained here: storage errors, dispatch errors, and panics are logged and
// swallowed, so the caller's control flow is never affected. The last-fire
// timestamp is written only after a dispatch that returned no error, so a
// failed dispatch does not advance the cooldown.
func (b *Bridge) TriggerAd(sid string) {
	defer b.recoverSafely()

	if !b.gate.Admit(sid) {
		b.me.SuppressionMeter.Mark(1)
		glog.Infof("Ad suppressed (cooldown active) for session %s", sid)
		return
	}

	start := time.Now()
	url := b.pool[b.picker.pick(len(b.pool))]
	if err := b.dispatcher.Dispatch(b.host, url); err != nil {
		b.me.ErrorMeter.Mark(1)
		glog.Errorf("Ad dispatch failed for session %s: %v", sid, err)
		return
	}
	if err := b.gate.mark(sid); err != nil {
		b.me.ErrorMeter.Mark(1)
		glog.Errorf("Failed to record ad trigger time for session %s: %v", sid, err)
		return
	}
	b.me.TriggerMeter.Mark(1)
	b.me.TriggerTimer.UpdateSince(start)
}

// SendSignal forwards url to the native bridges directly, bypassing the
// cooldown gate and the selector. It shares TriggerAd's containment boundary.
func (b *Bridge) SendSignal(url string) {
	defer b.recoverSafely()

	b.me.SignalMeter.Mark(1)
	if err := b.dispatcher.Dispatch(b.host, url); err != nil {
		b.me.ErrorMeter.Mark(1)
		glog.Errorf("Signal dispatch failed: %v", err)
	}
}

func (b *Bridge) recoverSafely() {
	if r := recover(); r != nil {
		b.me.ErrorMeter.Mark(1)
		glog.Errorf("Ad trigger recovered panic: %v. Stack trace is: %v", r, string(debug.Stack()))
	}
}

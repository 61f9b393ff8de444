package transport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/admediate/admediate-server/admetrics"
	"github.com/golang/glog"
)

// Dispatcher fans an ad destination out to every bridge currently present on
// the host.
type Dispatcher struct {
	probes []Probe
	me     *admetrics.Metrics
}

func NewDispatcher(probes []Probe, me *admetrics.Metrics) *Dispatcher {
	return &Dispatcher{
		probes: probes,
		me:     me,
	}
}

// Dispatch probes the host for each bridge variant in order and forwards url
// to every one found present. All present bridges are invoked; an error from
// one does not short-circuit the rest. When no bridge is present at all the
// dispatch is a no-op apart from a single debug log line. It never opens a
// browser window or otherwise substitutes for the native handler.
func (d *Dispatcher) Dispatch(host Host, url string) error {
	var sent int
	var errs []error
	for _, probe := range d.probes {
		bridge, present := probe(host)
		if !present {
			continue
		}
		if err := bridge.Send(url); err != nil {
			errs = append(errs, fmt.Errorf("%s bridge: %v", bridge.Name(), err))
			continue
		}
		sent++
		d.me.TransportMeter(bridge.Name()).Mark(1)
		glog.Infof("Forwarded ad destination to %s bridge: %s", bridge.Name(), url)
	}

	if sent == 0 && len(errs) == 0 {
		d.me.FallbackMeter.Mark(1)
		glog.Infof("No native ad bridge present. Ad destination was: %s", url)
	}
	return combineErrors(errs)
}

func combineErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return errors.New(strings.Join(msgs, "; "))
}

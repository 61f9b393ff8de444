package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/admediate/admediate-server/config"
	"github.com/golang/glog"
)

// Listen blocks forever, serving mediator requests on the configured port,
// until the process is told to shut down.
func Listen(cfg *config.Configuration, handler http.Handler) {
	stopSignals := make(chan os.Signal, 1)
	signal.Notify(stopSignals, syscall.SIGTERM, syscall.SIGINT)

	stopMain := make(chan os.Signal)
	done := make(chan struct{})

	mainServer := newMainServer(cfg, handler)
	go shutdownAfterSignals(mainServer, stopMain, done)

	mainListener, err := newListener(mainServer.Addr)
	if err != nil {
		glog.Errorf("Error listening for TCP connections on %s: %v", mainServer.Addr, err)
		return
	}
	go runServer(mainServer, "Main", mainListener)

	wait(stopSignals, done, stopMain)
}

func newMainServer(cfg *config.Configuration, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Handler:      gziphandler.GzipHandler(handler),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}

func newListener(address string) (net.Listener, error) {
	return net.Listen("tcp", address)
}

func runServer(server *http.Server, name string, listener net.Listener) {
	glog.Infof("%s server starting on: %s", name, server.Addr)
	if err := server.Serve(listener); err != nil {
		glog.Errorf("%s server quit with error: %v", name, err)
	}
}

func shutdownAfterSignals(server *http.Server, stopper <-chan os.Signal, done chan<- struct{}) {
	sig := <-stopper

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	glog.Infof("Stopping %s because of signal: %s", server.Addr, sig.String())
	if err := server.Shutdown(ctx); err != nil {
		glog.Errorf("Failed to shutdown %s: %v", server.Addr, err)
	}
	done <- struct{}{}
}

func wait(inbound <-chan os.Signal, done <-chan struct{}, outbound ...chan<- os.Signal) {
	sig := <-inbound

	for _, ch := range outbound {
		go sendSignal(ch, sig)
	}
	for i := 0; i < len(outbound); i++ {
		<-done
	}
}

func sendSignal(to chan<- os.Signal, sig os.Signal) {
	to <- sig
}

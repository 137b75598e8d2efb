// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package bridge

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kmotiko/gofc"
	reuse "github.com/libp2p/go-reuseport"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/atriumos/ofdpa-bridge/bridge/metrics"
)

// App bundles the OpenFlow controller, the provisioning pipeline and the
// HTTP sidecar (health + prometheus) into one runnable unit.
type App struct {
	conf Conf
}

func NewApp(conf Conf) *App {
	return &App{conf: conf}
}

// Run blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	svc, err := metrics.NewPrometheusService()
	if err != nil {
		return err
	}

	ctl := newOFController(a.conf, svc)
	gofc.GetAppManager().RegistApplication(ctl)

	go gofc.ServerLoop(a.conf.OpenFlow.ListenPort)

	log.Infoln("OpenFlow controller listening on port", a.conf.OpenFlow.ListenPort)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	httpListener, err := reuse.Listen("tcp", ":"+a.conf.HTTPPort)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{Handler: mux}

	go func() {
		if err := httpSrv.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalln("http server failed", err)
		}

		log.Infoln("http server closed")
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	signal.Notify(sig, syscall.SIGTERM)
	<-sig

	if err := httpSrv.Shutdown(context.Background()); err != nil {
		log.Errorln("Failed to shutdown http:", err)
	}

	return svc.Stop()
}

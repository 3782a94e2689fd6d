package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"tokenbox/internal/issuer"
	"tokenbox/internal/logger"
)

func main() {
	cfgFile := flag.String("f", "tokensrv.toml", "Path to the server config file.")
	genOnly := flag.Bool("g", false, "Print a config with fresh keys and exit.")
	flag.Parse()

	if *genOnly {
		cfg, err := issuer.Generate()
		if err == nil {
			var b []byte
			if b, err = cfg.Encode(); err == nil {
				_, err = os.Stdout.Write(b)
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(-1)
		}
		return
	}

	cfg, err := issuer.LoadFile(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config file '%v': %v\n", *cfgFile, err)
		os.Exit(-1)
	}
	if err := logger.Init(cfg.Logging.Level); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(-1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	iss, err := issuer.New(cfg, reg)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"error": err,
		}).Error("main: Issuer init error")
		os.Exit(-1)
	}

	gin.SetMode(gin.ReleaseMode)
	router := issuer.NewHandler(iss, cfg.Server.ReplyDelay(), reg).Engine()

	server := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 30 * time.Second,
		WriteTimeout:      30*time.Second + cfg.Server.ReplyDelay(),
		IdleTimeout:       30 * time.Second,
	}

	haltCh := make(chan os.Signal, 1)
	signal.Notify(haltCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-haltCh
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logrus.WithFields(logrus.Fields{
				"error": err,
			}).Error("main: Shutdown error")
		}
	}()

	logrus.WithFields(logrus.Fields{
		"listen":   cfg.Server.Listen,
		"issuer":   iss.Name(),
		"protocol": "http",
	}).Info("main: Starting token server")

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithFields(logrus.Fields{
			"error": err,
		}).Error("main: Server error")
		os.Exit(-1)
	}
}

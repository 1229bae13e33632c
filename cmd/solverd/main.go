package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/sweepkit/sweepkit/internal/solver"
)

var (
	log = logrus.New()

	addr    string
	logPath string
)

func init() {
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVar(&logPath, "log-file", "",
		"rotating log file path (file logging disabled when empty)")
}

func development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logPath != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logPath,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to create file log hook: ", err)
		}
		log.AddHook(hook)
	}

	solver.Log = log
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	setupLogging()

	app := newApplication(log)

	server := &http.Server{
		Addr:    addr,
		Handler: app.handler(),
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	log.Infof("ready to serve @ %s", addr)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(server.ListenAndServe)
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}

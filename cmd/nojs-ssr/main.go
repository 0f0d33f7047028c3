package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vcrobe/nojs-ssr/appcomponents"
	"github.com/vcrobe/nojs-ssr/config"
	"github.com/vcrobe/nojs-ssr/hydrate"
	"github.com/vcrobe/nojs-ssr/render"
	"github.com/vcrobe/nojs-ssr/runtime"
	"github.com/vcrobe/nojs-ssr/server"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file.")
	dump := flag.Bool("dump", false, "Print the component declaration, recovered handlers and document, then exit.")
	flag.Parse()

	cfg, err := config.Load(*configPath, os.Getenv)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	// Fail fast on an unknown component instead of on the first request.
	if _, err := appcomponents.Lookup(cfg.Component); err != nil {
		logger.Error("component", "error", err)
		os.Exit(1)
	}
	newComponent := func() runtime.Component {
		c, _ := appcomponents.Lookup(cfg.Component)
		return c
	}

	renderer := render.New(cfg.RenderOptions(), hydrate.NewIDCounter(cfg.Hydrate.IDPrefix), logger)

	if *dump {
		dumpComponent(os.Stdout, renderer, newComponent())
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(renderer, newComponent, logger)
	if err := srv.ListenAndServe(ctx, cfg.Addr); err != nil {
		logger.Error("server", "error", err)
		os.Exit(1)
	}
}

func dumpComponent(w io.Writer, renderer *render.Renderer, c runtime.Component) {
	res := renderer.RenderResult(c)

	fmt.Fprintln(w, "Component declaration:")
	fmt.Fprintln(w, res.Declaration)
	fmt.Fprintf(w, "\nRecovered handlers (%d):\n", len(res.Records))
	for _, rec := range res.Records {
		fmt.Fprintf(w, "  %s  %-10s %s\n", rec.ElementID, rec.EventType, rec.HandlerSource)
	}
	fmt.Fprintln(w, "\nDocument:")
	fmt.Fprintln(w, res.Document)
}

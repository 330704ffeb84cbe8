package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"SketchBoard/internal/config"
	boardnet "SketchBoard/internal/net"
	"SketchBoard/internal/render"
	"SketchBoard/internal/tool"
	"SketchBoard/internal/ui"
)

const windowTitle = "Sketch Board"

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	mirrorAddr := flag.String("mirror", "", "serve a live websocket mirror on this address (e.g. :8888)")
	advertise := flag.Bool("advertise", false, "announce the mirror over mDNS")
	discover := flag.Bool("discover", false, "list mirrors on the local network and exit")
	production := flag.Bool("production", false, "JSON logs at info level")
	flag.Parse()

	logger, err := newLogger(*production)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if *discover {
		runDiscover(logger)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}
	if *mirrorAddr != "" {
		cfg.Mirror.Addr = *mirrorAddr
	}
	if *advertise {
		cfg.Mirror.Advertise = true
	}
	runBoard(cfg, logger)
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func runDiscover(logger *zap.Logger) {
	found := 0
	err := boardnet.Browse(2*time.Second, func(url string) {
		found++
		fmt.Println(url)
	})
	if err != nil {
		logger.Fatal("discovering mirrors", zap.Error(err))
	}
	if found == 0 {
		fmt.Fprintln(os.Stderr, "no mirrors found")
	}
}

func runBoard(cfg config.Config, logger *zap.Logger) {
	toolCfg, err := cfg.ToolConfig()
	if err != nil {
		logger.Fatal("tool config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	raster := render.NewRaster(cfg.Width, cfg.Height, cfg.LineWidth)
	surfaces := render.Tee{raster}
	shareURL := ""

	if cfg.Mirror.Addr != "" {
		hub := boardnet.NewHub(logger.Named("mirror"))
		ln, err := net.Listen("tcp", cfg.Mirror.Addr)
		if err != nil {
			logger.Fatal("mirror listen", zap.String("addr", cfg.Mirror.Addr), zap.Error(err))
		}
		port := ln.Addr().(*net.TCPAddr).Port
		go hub.Run(ctx)
		go func() {
			if err := hub.Serve(ctx, ln); err != nil {
				logger.Error("mirror stopped", zap.Error(err))
			}
		}()
		surfaces = append(surfaces, hub)
		shareURL = fmt.Sprintf("ws://%s:%d%s", boardnet.OutgoingIP(logger), port, boardnet.OpsPath)

		if cfg.Mirror.Advertise {
			server, err := boardnet.Advertise(port, logger.Named("mdns"))
			if err != nil {
				logger.Error("mDNS advertise", zap.Error(err))
			} else {
				defer server.Shutdown()
			}
		}
	}

	controller := tool.NewController(surfaces, toolCfg, logger.Named("tool"))
	board := ui.NewBoardWidget(controller, raster.Image())
	if shareURL != "" {
		logger.Info("mirroring board", zap.String("url", shareURL))
		board.StatusBar().Text = "Mirroring at " + shareURL
	}
	ui.RunApp(windowTitle, board, cfg.Width, cfg.Height)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/banshee-data/sceneview/internal/api"
	"github.com/banshee-data/sceneview/internal/config"
	"github.com/banshee-data/sceneview/internal/console"
	"github.com/banshee-data/sceneview/internal/monitoring"
	"github.com/banshee-data/sceneview/internal/timeutil"
	"github.com/banshee-data/sceneview/internal/units"
	"github.com/banshee-data/sceneview/internal/version"
)

var (
	configFile        = flag.String("config", "", "Path to JSON viewer config (optional)")
	listen            = flag.String("listen", "", "Listen address (overrides config; default :8090)")
	heartbeatInterval = flag.Duration("heartbeat-interval", 0, "Console heartbeat interval (overrides config; default 5s)")
	heartbeatText     = flag.String("heartbeat-text", "", "Console heartbeat text (overrides config)")
	noHeartbeat       = flag.Bool("no-heartbeat", false, "Disable the console heartbeat")
	timezone          = flag.String("timezone", "", "Timezone for console timestamps (overrides config; default UTC)")
	showVersion       = flag.Bool("version", false, "Print version and exit")
)

// settings is the effective configuration after flags are applied.
type settings struct {
	listen            string
	heartbeatEnabled  bool
	heartbeatInterval time.Duration
	heartbeatText     string
	mirrorLogs        bool
	location          *time.Location
	camera            *config.CameraDefaults
}

func resolveSettings(cfg *config.ViewerConfig) (settings, error) {
	s := settings{
		listen:            cfg.GetListen(),
		heartbeatEnabled:  cfg.GetHeartbeatEnabled(),
		heartbeatInterval: cfg.GetHeartbeatInterval(),
		heartbeatText:     cfg.GetHeartbeatText(),
		mirrorLogs:        cfg.GetMirrorLogs(),
		camera:            cfg.GetCamera(),
	}
	if *listen != "" {
		s.listen = *listen
	}
	if *heartbeatInterval > 0 {
		s.heartbeatInterval = *heartbeatInterval
	}
	if *heartbeatText != "" {
		s.heartbeatText = *heartbeatText
	}
	if *noHeartbeat {
		s.heartbeatEnabled = false
	}

	tz := cfg.GetConsoleTimezone()
	if *timezone != "" {
		tz = *timezone
	}
	loc, err := units.LoadDisplayLocation(tz)
	if err != nil {
		return settings{}, fmt.Errorf("console timezone: %w", err)
	}
	s.location = loc
	return s, nil
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println("sceneview", version.String())
		return
	}

	cfg := config.EmptyViewerConfig()
	if *configFile != "" {
		var err error
		cfg, err = config.LoadViewerConfig(*configFile)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		log.Printf("loaded config from %s", *configFile)
	}

	s, err := resolveSettings(cfg)
	if err != nil {
		log.Fatalf("invalid settings: %v", err)
	}

	buf := console.NewBuffer(console.DefaultCapacity, timeutil.RealClock{}, s.location)
	defer buf.Close()

	if s.mirrorLogs {
		restore := monitoring.Tee(func(line string) { buf.Append(line) })
		defer restore()
	}
	monitoring.Logf("sceneview %s starting", version.Version)

	var wg sync.WaitGroup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if s.heartbeatEnabled {
		hb := console.NewHeartbeat(buf, timeutil.RealClock{}, s.heartbeatInterval, s.heartbeatText)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := hb.Run(ctx); err != nil && err != context.Canceled {
				log.Printf("heartbeat error: %v", err)
			}
			log.Printf("heartbeat routine stopped")
		}()
	}

	// HTTP server goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()

		mux := api.NewServer(buf, s.camera).ServeMux()
		buf.AttachAdminRoutes(mux)

		server := &http.Server{
			Addr:              s.listen,
			Handler:           api.LoggingMiddleware(mux),
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			monitoring.Logf("listening on %s", s.listen)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("failed to start server: %v", err)
				stop()
			}
		}()

		<-ctx.Done()
		log.Println("shutting down HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
			// Force close the server if graceful shutdown fails
			if err := server.Close(); err != nil {
				log.Printf("HTTP server force close error: %v", err)
			}
		}

		log.Printf("HTTP server routine stopped")
	}()

	wg.Wait()
	log.Printf("Graceful shutdown complete")
}

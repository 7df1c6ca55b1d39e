// Command battleserver runs the HTTP+WebSocket façade over the battle
// engine (replaces the teacher's cmd/server, which drove the game loop and
// RTMP stream instead of a turn-based battle engine).
package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"creaturebattle/internal/api"
	"creaturebattle/internal/battle"
	"creaturebattle/internal/config"
	"creaturebattle/internal/data"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables only")
	}

	log.Println("================================")
	log.Println("  CREATURE BATTLE ENGINE")
	log.Println("================================")

	if _, err := data.LoadDefault(); err != nil {
		log.Fatalf("failed to load species/move data: %v", err)
	}

	cfg := config.Load()
	log.Printf("config: port=%d max_open_battles=%d rate_limit=%.1f/s",
		cfg.Server.Port, cfg.Server.MaxOpenBattles, cfg.RateLimit.RequestsPerSecond)

	manager := battle.NewManager(cfg.Server.MaxOpenBattles)
	srv := api.NewServer(manager, cfg.RateLimit)

	if os.Getenv("DISABLE_DEBUG_SERVER") != "true" {
		debugCfg := api.DefaultObservabilityConfig()
		if addr := cfg.Server.ObservabilityAddr; addr != "" {
			debugCfg.ListenAddr = addr
		}
		if err := api.StartDebugServer(debugCfg); err != nil {
			log.Printf("metrics server disabled: %v", err)
		}
	}

	addr := ":" + strconv.Itoa(cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-sigCh:
		log.Printf("received %s, shutting down", sig)
		srv.Stop()
	}
}

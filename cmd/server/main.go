package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/TianyuZhao6/Z-Game/internal/agent"
	"github.com/TianyuZhao6/Z-Game/internal/engine"
	"github.com/TianyuZhao6/Z-Game/internal/infrastructure/storage"
	"github.com/TianyuZhao6/Z-Game/internal/server"
	"github.com/TianyuZhao6/Z-Game/internal/version"
	"github.com/TianyuZhao6/Z-Game/pkg/level"
	"github.com/TianyuZhao6/Z-Game/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var replayPath string
	var levelsPath string
	var replayDir string
	var bots int
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.StringVar(&replayPath, "replay", "", "Path to .zgrp replay file to simulate")
	flag.StringVar(&levelsPath, "levels", "", "Path to YAML level table override")
	flag.StringVar(&replayDir, "replay-dir", "replays", "Directory for saved replays")
	flag.IntVar(&bots, "bots", 0, "Number of headless agents to spawn")
	flag.Parse()

	logger.Log.Info("Starting Z-Game...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit master seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random master seed: %d", cfg.Seed)
	}

	if levelsPath != "" {
		table, err := level.LoadTable(levelsPath)
		if err != nil {
			logger.Log.Fatal("Failed to load level table: ", err)
		}
		cfg.Table = table
		logger.Log.Infof("Level table loaded from %s", levelsPath)
	}

	replays := storage.NewReplayService(replayDir)
	gameService := engine.NewService(cfg, replays)

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		logger.Log.Info("💿 Mode: Replay Simulation")
		if err := gameService.RunPlayback(replayPath); err != nil {
			logger.Log.Fatal("Playback failed: ", err)
		}
		return
	}

	// 2. Боты (headless-агенты)
	for i := 0; i < bots; i++ {
		bot, err := agent.NewBot(botName(i), gameService)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to spawn bot")
			continue
		}
		go bot.Run()
	}

	port := os.Getenv("ZG_PORT")
	if port == "" {
		port = "8080"
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	logger.Log.Info("Done.")
}

func botName(i int) string {
	return "bot_" + string(rune('A'+i%26))
}

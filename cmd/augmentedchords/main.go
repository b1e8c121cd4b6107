package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/seancorc/AugmentedChords/internal/bot"
	"github.com/seancorc/AugmentedChords/internal/bot/client"
	"github.com/seancorc/AugmentedChords/internal/db"
	"github.com/seancorc/AugmentedChords/internal/logger"
	"github.com/seancorc/AugmentedChords/internal/lyrics"
	"github.com/seancorc/AugmentedChords/internal/redis"
	"github.com/seancorc/AugmentedChords/internal/state"
	"github.com/seancorc/AugmentedChords/internal/utils"
)

func main() {
	env, err := utils.LoadEnv([]string{"BOT_TOKEN"})
	if err != nil {
		log.Fatalf("failed to load env: %v", err)
	}

	if err := db.Init(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	cache := redis.NewDBManager()

	history := state.NewHistoryManager(cache)
	if err := history.Init(); err != nil {
		log.Printf("failed to load fetch history: %v", err)
	}

	b, err := bot.New("augmentedchords", env["BOT_TOKEN"])
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	if err := logger.Init(b); err != nil {
		log.Printf("log channel unavailable, falling back to stderr: %v", err)
	}

	service := lyrics.NewService(cache, db.SheetStore{})
	handlers := client.NewClientHandlers(service, history)

	go b.Start(handlers.GetCommandHandlers(), handlers.SongQueryHandler)
	logger.Info("augmentedchords bot started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	b.Stop()
	logger.Info("augmentedchords bot stopped")
}

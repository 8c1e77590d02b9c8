// replaydump - консольная утилита для осмотра .zgrp файлов.
//
// Использование:
//
//	replaydump <file.zgrp>          - заголовок и сводка
//	replaydump <file.zgrp> actions  - плюс полная лента действий
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/TianyuZhao6/Z-Game/internal/infrastructure/storage"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	path := os.Args[1]
	svc := storage.NewReplayService(filepath.Dir(path))

	session, err := svc.Load(path)
	if err != nil {
		fmt.Printf("Failed to load replay: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File:      %s\n", path)
	fmt.Printf("Level:     %d\n", session.LevelID)
	fmt.Printf("Seed:      %d\n", session.Seed)
	fmt.Printf("Recorded:  %s\n", time.Unix(session.Timestamp, 0).Format(time.RFC3339))
	fmt.Printf("Actions:   %d\n", len(session.Actions))

	if len(session.PlayerState) > 0 {
		fmt.Printf("Player:    %s\n", session.PlayerState)
	}

	if len(os.Args) > 2 && os.Args[2] == "actions" {
		fmt.Println()
		for i, act := range session.Actions {
			fmt.Printf("%4d  tick=%-6d %-8s %-24s %s\n",
				i, act.Tick, act.Action.String(), act.Token, act.Payload)
		}
	}
}

func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  replaydump <file.zgrp>          show header summary")
	fmt.Println("  replaydump <file.zgrp> actions  also dump the action tape")
}

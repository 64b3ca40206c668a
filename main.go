// main.go
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"raycast/config"
	"raycast/logger"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if config.IsHelp(err) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	g, err := NewGame(cfg, log)
	if err != nil {
		log.Fatal("initialising game", zap.Error(err))
	}

	if err := g.Run(); err != nil {
		log.Fatal("running game", zap.Error(err))
	}
}

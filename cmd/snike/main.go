package main

import (
	"flag"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/openMh/snike/internal/desktop"
	"github.com/openMh/snike/internal/game"
)

func main() {
	var (
		name    = flag.String("name", "", "player name (defaults to the OS username)")
		profile = flag.String("profile", "", "profile file path (defaults to ~/.snike.yaml)")
		debug   = flag.Bool("debug", false, "verbose logging")
	)
	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	store := game.NewFileStore(profilePath(*profile))
	g := game.NewGame(store, game.NewRealClock(), game.ArenaWidth, game.ArenaHeight)
	g.SetLogger(log)

	// Resolve the identity up front; the auth screen only remains for hosts
	// with no usable name at all.
	if *name != "" {
		g.SetPlayerName(*name)
	} else if g.PlayerName == "" {
		if u, err := user.Current(); err == nil {
			g.SetPlayerName(u.Username)
		}
	}

	if err := desktop.Run(g, log); err != nil {
		log.Error("run", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func profilePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".snike.yaml"
	}
	return filepath.Join(home, ".snike.yaml")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/boompa-hearts/internal/config"
	"github.com/palemoky/boompa-hearts/internal/engine"
	"github.com/palemoky/boompa-hearts/internal/identity"
	"github.com/palemoky/boompa-hearts/internal/logger"
	"github.com/palemoky/boompa-hearts/internal/protocol/codec"
	"github.com/palemoky/boompa-hearts/internal/sound"
	"github.com/palemoky/boompa-hearts/internal/transport"
	"github.com/palemoky/boompa-hearts/internal/ui"
	"github.com/palemoky/boompa-hearts/internal/ui/model"
)

func main() {
	configPath := flag.String("config", "", "path to a yaml config file")
	server := flag.String("server", "", "server websocket url, e.g. ws://localhost:1780/ws")
	game := flag.String("game", "", "game to join; a random name when empty")
	codecName := flag.String("codec", "", "wire format: json or protobuf")
	sounds := flag.Bool("sound", false, "play sound cues")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *server != "" {
		cfg.Server.URL = *server
	}
	if *game != "" {
		cfg.Server.Game = *game
	}
	if *codecName != "" {
		cfg.Server.Codec = *codecName
	}
	if *sounds {
		cfg.Client.Sound = true
	}
	if cfg.Server.Game == "" {
		cfg.Server.Game = RandomGameName()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "boompa-hearts: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := logger.Init(cfg.Client.LogDir); err != nil {
		return err
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	ctx := context.Background()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	profile, err := identity.Load(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to load identity: %w", err)
	}

	cd, err := codec.ForName(cfg.Server.Codec)
	if err != nil {
		return err
	}

	opts := []engine.Option{
		engine.WithMoonPoints(cfg.Game.MoonPoints),
		engine.WithGame(cfg.Server.Game),
	}
	var player model.SoundPlayer
	if cfg.Client.Sound {
		sm := sound.NewSoundManager(cfg.Client.SoundDir)
		opts = append(opts, engine.WithSounder(sm))
		player = sm
	}

	client := transport.NewClient(cfg.Server.URL,
		transport.WithCodec(cd),
		transport.WithReconnect(cfg.Server.ReconnectAttempts, cfg.Server.ReconnectIntervalDuration()),
		transport.WithHandshakeTimeout(cfg.Server.HandshakeTimeoutDuration()),
	)

	m := ui.NewOnlineModel(model.Options{
		Engine:    engine.New(opts...),
		Transport: client,
		Profile:   profile,
		Sound:     player,
	})
	ui.Bind(client, m)
	defer m.Close()

	logger.LogInfo("Joining game %q at %s", cfg.Server.Game, cfg.Server.URL)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func openStore(cfg *config.Config) (identity.Store, error) {
	switch cfg.Identity.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Identity.Redis.Addr,
			Password: cfg.Identity.Redis.Password,
			DB:       cfg.Identity.Redis.DB,
		})
		return identity.NewRedisStore(rdb, cfg.Identity.Redis.Prefix), nil
	case "file", "":
		path := cfg.Identity.Path
		if path == "" {
			dir := cfg.Client.LogDir
			if dir == "" {
				d, err := logger.DefaultDir()
				if err != nil {
					return nil, err
				}
				dir = d
			}
			path = filepath.Join(dir, "identity.yaml")
		}
		return identity.NewFileStore(path), nil
	default:
		return nil, fmt.Errorf("unknown identity backend %q", cfg.Identity.Backend)
	}
}

package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Identity IdentityConfig `yaml:"identity"`
	Client   ClientConfig   `yaml:"client"`
	Game     GameConfig     `yaml:"game"`
}

// ServerConfig locates the game server.
type ServerConfig struct {
	URL               string `yaml:"url"`
	Game              string `yaml:"game"`               // game name; random when empty
	Codec             string `yaml:"codec"`              // json or protobuf
	ReconnectAttempts int    `yaml:"reconnect_attempts"` // redial attempts after a drop
	ReconnectInterval int    `yaml:"reconnect_interval"` // first backoff (seconds)
	HandshakeTimeout  int    `yaml:"handshake_timeout"`  // seconds
}

// IdentityConfig picks where the player name and device id are stored.
type IdentityConfig struct {
	Backend string      `yaml:"backend"` // file or redis
	Path    string      `yaml:"path"`    // file backend
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig is the redis identity backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// ClientConfig holds local presentation settings.
type ClientConfig struct {
	LogDir   string `yaml:"log_dir"`
	Sound    bool   `yaml:"sound"`
	SoundDir string `yaml:"sound_dir"`
}

// GameConfig holds scoring display rules.
type GameConfig struct {
	MoonPoints int `yaml:"moon_points"` // score jump that marks shooting the moon
}

// ReconnectIntervalDuration returns the first reconnect backoff.
func (c *ServerConfig) ReconnectIntervalDuration() time.Duration {
	return time.Duration(c.ReconnectInterval) * time.Second
}

// HandshakeTimeoutDuration returns the websocket handshake timeout.
func (c *ServerConfig) HandshakeTimeoutDuration() time.Duration {
	return time.Duration(c.HandshakeTimeout) * time.Second
}

// Load reads a yaml file and fills in defaults for missing values.
// Sound stays off unless the file enables it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	d := Default()
	if cfg.Server.URL == "" {
		cfg.Server.URL = d.Server.URL
	}
	if cfg.Server.Codec == "" {
		cfg.Server.Codec = d.Server.Codec
	}
	if cfg.Server.ReconnectAttempts == 0 {
		cfg.Server.ReconnectAttempts = d.Server.ReconnectAttempts
	}
	if cfg.Server.ReconnectInterval == 0 {
		cfg.Server.ReconnectInterval = d.Server.ReconnectInterval
	}
	if cfg.Server.HandshakeTimeout == 0 {
		cfg.Server.HandshakeTimeout = d.Server.HandshakeTimeout
	}
	if cfg.Identity.Backend == "" {
		cfg.Identity.Backend = d.Identity.Backend
	}
	if cfg.Identity.Redis.Addr == "" {
		cfg.Identity.Redis.Addr = d.Identity.Redis.Addr
	}
	if cfg.Identity.Redis.Prefix == "" {
		cfg.Identity.Redis.Prefix = d.Identity.Redis.Prefix
	}
	if cfg.Client.SoundDir == "" {
		cfg.Client.SoundDir = d.Client.SoundDir
	}
	if cfg.Game.MoonPoints <= 0 {
		cfg.Game.MoonPoints = d.Game.MoonPoints
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:               "ws://localhost:1780/ws",
			Codec:             "json",
			ReconnectAttempts: 5,
			ReconnectInterval: 2,
			HandshakeTimeout:  10,
		},
		Identity: IdentityConfig{
			Backend: "file",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "boompa:identity:",
			},
		},
		Client: ClientConfig{
			SoundDir: "assets/sounds",
		},
		Game: GameConfig{
			MoonPoints: 26,
		},
	}
}

package server

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mergington/portal/internal/xtime"
	"github.com/mergington/portal/server/auth"
	"github.com/mergington/portal/server/database"
)

func LoadConfig(cfgPath string) (Config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	cfg := defaultConfig()
	if _, err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config file: %w", err)
	}

	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:     slog.LevelInfo,
			Format:    LogFormatText,
			AddSource: false,
		},
		Server: ServerConfig{
			Addr:      ":8085",
			PublicURL: "http://localhost:8085",
		},
		Database: database.Config{
			Host:     "localhost",
			Port:     5432,
			Username: "postgres",
			Password: "password",
			Database: "portal",
			SSLMode:  "disable",
		},
		Auth: auth.Config{
			SessionDuration: xtime.Duration(30 * 24 * time.Hour),
			LoginEvery:      xtime.Duration(2 * time.Second),
			LoginBurst:      5,
			Teachers: []auth.TeacherAccount{
				{Username: "mrodriguez", DisplayName: "Ms. Rodriguez", Role: "teacher", Password: "art123"},
				{Username: "mchen", DisplayName: "Mr. Chen", Role: "teacher", Password: "chen456"},
				{Username: "principal", DisplayName: "Principal Martinez", Role: "admin", Password: "admin789"},
			},
		},
		Announcements: AnnouncementsConfig{
			CleanupInterval: xtime.Duration(1 * time.Hour),
			RetainExpired:   xtime.Duration(30 * 24 * time.Hour),
		},
	}
}

type Config struct {
	Dev           bool                `toml:"dev"`
	Log           LogConfig           `toml:"log"`
	Server        ServerConfig        `toml:"server"`
	Database      database.Config     `toml:"database"`
	Auth          auth.Config         `toml:"auth"`
	Announcements AnnouncementsConfig `toml:"announcements"`
	Notifications NotificationsConfig `toml:"notifications"`
}

func (c Config) String() string {
	return fmt.Sprintf("Dev: %t\nLog: %s\nServer: %s\nDatabase: %s\nAuth: %s\nAnnouncements: %s\nNotifications: %s",
		c.Dev,
		c.Log,
		c.Server,
		c.Database,
		c.Auth,
		c.Announcements,
		c.Notifications,
	)
}

type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    LogFormat  `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

func (c LogConfig) String() string {
	return fmt.Sprintf("\n Level: %s\n Format: %s\n AddSource: %t",
		c.Level,
		c.Format,
		c.AddSource,
	)
}

type ServerConfig struct {
	Addr      string `toml:"addr"`
	PublicURL string `toml:"public_url"`
}

func (c ServerConfig) String() string {
	return fmt.Sprintf("\n Address: %s\n PublicURL: %s",
		c.Addr,
		c.PublicURL,
	)
}

type AnnouncementsConfig struct {
	CleanupInterval xtime.Duration `toml:"cleanup_interval"`
	RetainExpired   xtime.Duration `toml:"retain_expired"`
}

func (c AnnouncementsConfig) String() string {
	return fmt.Sprintf("\n CleanupInterval: %s\n RetainExpired: %s",
		c.CleanupInterval,
		c.RetainExpired,
	)
}

type NotificationsConfig struct {
	Enabled    bool   `toml:"enabled"`
	WebhookURL string `toml:"webhook_url"`
}

func (c NotificationsConfig) String() string {
	return fmt.Sprintf("\n Enabled: %t\n WebhookURL: %s",
		c.Enabled,
		c.WebhookURL,
	)
}

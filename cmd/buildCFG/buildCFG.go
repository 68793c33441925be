package buildCFG

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/config"
	"github.com/wb-go/wbf/dbpg"
)

const (
	StoreLocal  = "local"
	StoreRemote = "remote"
)

type ServerConfig struct {
	Port string
}

type RabbitConfig struct {
	Url      string
	Exchange string
}

// ContentConfig selects the backing store and the content-shaping knobs.
type ContentConfig struct {
	Store            string // local | remote
	LocalPath        string
	AnnouncementMode string // numeric | label
	ThumbnailWidth   int
	AdminPassword    string
}

func BuildServerConfig(cfg *config.Config, log *zerolog.Logger) ServerConfig {
	port := cfg.GetString("server.port")
	if port == "" {
		port = "8080"
		log.Warn().Msg("server.port not set, defaulting to 8080")
	}
	return ServerConfig{Port: port}
}

func BuildDBConfig(cfg *config.Config, log *zerolog.Logger) (string, []string, *dbpg.Options, error) {
	host := cfg.GetString("database.host")
	port := cfg.GetString("database.port")
	user := cfg.GetString("database.user")
	name := cfg.GetString("database.name")
	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		password = cfg.GetString("database.password")
	}
	if host == "" || user == "" || name == "" {
		return "", nil, nil, errors.New("database config is incomplete")
	}
	if port == "" {
		port = "5432"
	}

	masterDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, password, host, port, name)

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.GetInt("database.max_open_conns"),
		MaxIdleConns:    cfg.GetInt("database.max_idle_conns"),
		ConnMaxLifetime: time.Duration(cfg.GetInt("database.conn_max_lifetime_sec")) * time.Second,
	}
	log.Info().Str("host", host).Str("db", name).Msg("database config built")
	return masterDSN, nil, opts, nil
}

func BuildRabbitConfig(cfg *config.Config, log *zerolog.Logger) (RabbitConfig, error) {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		url = cfg.GetString("rabbitmq.url")
	}
	if url == "" {
		return RabbitConfig{}, errors.New("rabbitmq.url is not set")
	}
	exchange := cfg.GetString("rabbitmq.exchange")
	if exchange == "" {
		exchange = "content.changes"
	}
	log.Info().Str("exchange", exchange).Msg("rabbitmq config built")
	return RabbitConfig{Url: url, Exchange: exchange}, nil
}

func BuildContentConfig(cfg *config.Config, log *zerolog.Logger) (ContentConfig, error) {
	cc := ContentConfig{
		Store:            cfg.GetString("content.store"),
		LocalPath:        cfg.GetString("content.local_path"),
		AnnouncementMode: cfg.GetString("content.announcement_priority"),
		ThumbnailWidth:   cfg.GetInt("content.thumbnail_width"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
	}
	if cc.Store == "" {
		cc.Store = StoreLocal
	}
	if cc.Store != StoreLocal && cc.Store != StoreRemote {
		return ContentConfig{}, fmt.Errorf("unknown content.store %q", cc.Store)
	}
	if cc.LocalPath == "" {
		cc.LocalPath = "data/content.db"
	}
	if cc.AnnouncementMode == "" {
		cc.AnnouncementMode = "numeric"
	}
	if cc.AdminPassword == "" {
		cc.AdminPassword = cfg.GetString("content.admin_password")
	}
	if cc.AdminPassword == "" {
		log.Warn().Msg("admin password not configured, panel login is disabled")
	}
	log.Info().Str("store", cc.Store).Str("priority_mode", cc.AnnouncementMode).Msg("content config built")
	return cc, nil
}

package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/spf13/viper"
)

const (
	// ListenAddr is the fixed HTTP listen address.
	ListenAddr = ":8787"
	// PostgresPort is the fixed database port.
	PostgresPort = 5432
	// MaxConns caps the pgx pool.
	MaxConns = 5
)

type Config struct {
	ListenAddr  string
	Database    DatabaseConfig
	TemplateDir string
	AssetsDir   string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
}

// Load reads the process environment once. The returned value is never mutated.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PG_HOST", "localhost")
	v.SetDefault("PG_DB", "postgres")
	v.SetDefault("PG_USER", "postgres")
	v.SetDefault("PG_PASS", "password")
	v.SetDefault("TEMPLATE_DIR", "")
	v.SetDefault("ASSETS_DIR", "")

	return Config{
		ListenAddr: ListenAddr,
		Database: DatabaseConfig{
			Host:     v.GetString("PG_HOST"),
			Port:     PostgresPort,
			Name:     v.GetString("PG_DB"),
			User:     v.GetString("PG_USER"),
			Password: v.GetString("PG_PASS"),
		},
		TemplateDir: v.GetString("TEMPLATE_DIR"),
		AssetsDir:   v.GetString("ASSETS_DIR"),
	}
}

// DSN is the connection URL, credentials escaped.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	q := url.Values{}
	q.Set("pool_max_conns", strconv.Itoa(MaxConns))
	u.RawQuery = q.Encode()
	return u.String()
}

// SafeDSN omits the password and is what goes to the logs.
func (c DatabaseConfig) SafeDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s dbname=%s", c.Host, c.Port, c.User, c.Name)
}

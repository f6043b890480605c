// Package conf holds the configuration tree scanned from configs/*.yaml.
package conf

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bootstrap is the root of the configuration file.
type Bootstrap struct {
	Server *Server `json:"server"`
	Data   *Data   `json:"data"`
	Auth   *Auth   `json:"auth"`
}

type Server struct {
	Http *Server_HTTP `json:"http"`
}

type Server_HTTP struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

type Data struct {
	Database *Data_Database `json:"database"`
	Redis    *Data_Redis    `json:"redis"`
}

// Data_Database selects the SQL driver ("postgres", "mysql" or "sqlite")
// and its DSN.
type Data_Database struct {
	Driver          string    `json:"driver"`
	Source          string    `json:"source"`
	AutoMigrate     bool      `json:"auto_migrate"`
	MaxIdleConns    int       `json:"max_idle_conns"`
	MaxOpenConns    int       `json:"max_open_conns"`
	ConnMaxLifetime *Duration `json:"conn_max_lifetime"`
}

// Data_Redis is optional. Without an address the rating leaderboard is
// disabled.
type Data_Redis struct {
	Addr         string    `json:"addr"`
	Password     string    `json:"password"`
	Db           int       `json:"db"`
	ReadTimeout  *Duration `json:"read_timeout"`
	WriteTimeout *Duration `json:"write_timeout"`
	RankingKey   string    `json:"ranking_key"`
}

// Auth guards write operations with a static bearer token. An empty token
// disables the check.
type Auth struct {
	Token string `json:"token"`
}

// Duration reads "1.5s" style strings or a number of seconds.
type Duration struct {
	time.Duration
}

// AsDuration returns the wrapped duration, zero for a nil receiver.
func (d *Duration) AsDuration() time.Duration {
	if d == nil {
		return 0
	}
	return d.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value * float64(time.Second))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

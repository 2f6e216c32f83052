package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ra3zac/Siebenschraem/pkg/table"
)

type Config struct {
	ListenAddr string
	LogLevel   string
	LogFile    string

	TrickDelay      time.Duration
	NoticeDelay     time.Duration
	LossNoticeDelay time.Duration
	EndScreenDelay  time.Duration

	// Tables without activity for this long are removed by the server.
	IdleTimeout time.Duration
	// Announce the server on the LAN via SSDP.
	Advertise bool
}

const EnvPrefix = "SCHRAEM"

var DefaultConf = Config{
	ListenAddr:      ":8080",
	LogLevel:        "info",
	TrickDelay:      time.Second,
	NoticeDelay:     3 * time.Second,
	LossNoticeDelay: 2 * time.Second,
	EndScreenDelay:  500 * time.Millisecond,
	IdleTimeout:     time.Hour,
}

// ConfInit loads the defaults, then the optional file, then SCHRAEM_* environment variables.
func ConfInit(filename string, printConf bool) (*Config, error) {
	out := &Config{}
	defer func() {
		if printConf {
			if data, err := json.Marshal(out); err == nil {
				fmt.Println("the real config value is: ", string(data))
			} else {
				fmt.Println(err)
			}
		}
	}()

	c := viper.New()
	c.SetDefault("ListenAddr", DefaultConf.ListenAddr)
	c.SetDefault("LogLevel", DefaultConf.LogLevel)
	c.SetDefault("LogFile", DefaultConf.LogFile)
	c.SetDefault("TrickDelay", DefaultConf.TrickDelay)
	c.SetDefault("NoticeDelay", DefaultConf.NoticeDelay)
	c.SetDefault("LossNoticeDelay", DefaultConf.LossNoticeDelay)
	c.SetDefault("EndScreenDelay", DefaultConf.EndScreenDelay)
	c.SetDefault("IdleTimeout", DefaultConf.IdleTimeout)
	c.SetDefault("Advertise", DefaultConf.Advertise)

	c.SetEnvPrefix(EnvPrefix)
	c.AutomaticEnv()

	if filename != "" {
		c.SetConfigType(strings.TrimPrefix(filepath.Ext(filename), "."))
		c.SetConfigFile(filename)
		if err := c.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", filename, err)
		}
	}

	if err := c.Unmarshal(out); err != nil {
		return nil, err
	}
	return out, nil
}

// TableOptions carries the timing settings over to a new table.
func (c *Config) TableOptions() table.Options {
	return table.Options{
		TrickDelay:      c.TrickDelay,
		NoticeDelay:     c.NoticeDelay,
		LossNoticeDelay: c.LossNoticeDelay,
		EndScreenDelay:  c.EndScreenDelay,
	}
}

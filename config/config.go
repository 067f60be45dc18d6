package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Draft   DraftConfig   `mapstructure:"draft"`
	Archive ArchiveConfig `mapstructure:"archive"`
}

type ServerConfig struct {
	HTTPAddress    string `mapstructure:"http_address"`
	RPCAddress     string `mapstructure:"rpc_address"`
	MonitorAddress string `mapstructure:"monitor_address"`
}

type DraftConfig struct {
	// Preset 新会话使用的内置预设名
	Preset string `mapstructure:"preset"`
	// RevealDelay 自动回合（揭示）在前一动作被接受后的执行延迟
	RevealDelay time.Duration `mapstructure:"reveal_delay"`
}

type ArchiveConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

func LoadConfig(path string) (config *Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.http_address", ":3000")
	viper.SetDefault("server.rpc_address", ":3001")
	viper.SetDefault("server.monitor_address", ":3002")
	viper.SetDefault("draft.preset", "hidden")
	viper.SetDefault("draft.reveal_delay", 2*time.Second)
	viper.SetDefault("archive.enabled", false)

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		// 没有配置文件时按默认值运行
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	err = viper.Unmarshal(&config)
	return
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB         DBConfig
	Server     ServerConfig
	Redis      RedisConfig
	LLM        LLMConfig
	Generation GenerationConfig
	Logger     LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// LLMConfig selects and configures the completion backend.
// Provider is one of "ollama", "openai", "gemini".
type LLMConfig struct {
	Provider  string `yaml:"provider"`
	ServerURL string `yaml:"server_url"`
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key"`
	Timeout   time.Duration
}

// GenerationConfig tunes the generation pipeline. Engine is "llm" or "fast";
// the fast engine is rule-based and makes no external calls.
type GenerationConfig struct {
	Engine         string        `yaml:"engine"`
	DefaultCount   int           `yaml:"default_count"`
	InterCallDelay time.Duration `yaml:"inter_call_delay"`
	SessionTTL     time.Duration `yaml:"session_ttl"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.SetDefault("llm.provider", "ollama")
	viper.SetDefault("llm.timeout", 30)
	viper.SetDefault("generation.engine", "llm")
	viper.SetDefault("generation.default_count", 10)
	viper.SetDefault("generation.inter_call_delay", 2)
	viper.SetDefault("generation.session_ttl", 86400)
	viper.SetDefault("logger.level", "info")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Log the config file being used
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
		},
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			BodyLimit:    viper.GetInt("server.body_limit"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		LLM: LLMConfig{
			Provider:  viper.GetString("llm.provider"),
			ServerURL: viper.GetString("llm.server_url"),
			Model:     viper.GetString("llm.model"),
			APIKey:    viper.GetString("llm.api_key"),
			Timeout:   viper.GetDuration("llm.timeout") * time.Second,
		},
		Generation: GenerationConfig{
			Engine:         viper.GetString("generation.engine"),
			DefaultCount:   viper.GetInt("generation.default_count"),
			InterCallDelay: viper.GetDuration("generation.inter_call_delay") * time.Second,
			SessionTTL:     viper.GetDuration("generation.session_ttl") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = provider
	}
	if serverURL := os.Getenv("LLM_SERVER_URL"); serverURL != "" {
		config.LLM.ServerURL = serverURL
	}
	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		config.LLM.APIKey = apiKey
	}
	if engine := os.Getenv("GENERATION_ENGINE"); engine != "" {
		config.Generation.Engine = engine
	}

	return config, nil
}

func (c *Config) GetDSN() string {
	// Oracle DSN format: user/password@host:port/service
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}

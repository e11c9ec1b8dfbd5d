// config/config.go
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// --- Sub-sections, mirroring config.yaml ---

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
}

type DatasetConfig struct {
	Source string `mapstructure:"source"` // file | s3 | mongo
	Path   string `mapstructure:"path"`
}

type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Key             string `mapstructure:"key"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"accessKeyID"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
	Endpoint        string `mapstructure:"endpoint"`
}

type MongoConfig struct {
	URI        string `mapstructure:"uri"`
	DBName     string `mapstructure:"dbName"`
	Collection string `mapstructure:"collection"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

type ClientConfig struct {
	BaseURL string        `mapstructure:"baseURL"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Config groups every section.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	S3      S3Config      `mapstructure:"s3"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Log     LogConfig     `mapstructure:"log"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Client  ClientConfig  `mapstructure:"client"`
}

const (
	SourceFile  = "file"
	SourceS3    = "s3"
	SourceMongo = "mongo"
)

// LoadConfig reads config.yaml from path (if present) and overrides it with
// environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.readTimeout", 10*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("dataset.source", SourceFile)
	v.SetDefault("dataset.path", "sportsantecvl.json")
	v.SetDefault("mongo.dbName", "sportsante")
	v.SetDefault("mongo.collection", "centers")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cors.allowOrigins", []string{"*"})
	v.SetDefault("client.baseURL", "http://localhost:8000")
	v.SetDefault("client.timeout", 15*time.Second)

	v.AutomaticEnv()
	v.BindEnv("server.port", "SERVER_PORT", "PORT")
	v.BindEnv("server.mode", "GIN_MODE")
	v.BindEnv("dataset.source", "DATASET_SOURCE")
	v.BindEnv("dataset.path", "DATASET_PATH")
	v.BindEnv("s3.bucket", "S3_BUCKET")
	v.BindEnv("s3.key", "S3_KEY")
	v.BindEnv("s3.region", "S3_REGION")
	v.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	v.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	v.BindEnv("s3.endpoint", "S3_ENDPOINT")
	v.BindEnv("mongo.uri", "MONGO_URI")
	v.BindEnv("mongo.dbName", "MONGO_DBNAME")
	v.BindEnv("mongo.collection", "MONGO_COLLECTION")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("client.baseURL", "API_BASE")

	// A missing config.yaml is fine, env vars and defaults still apply.
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}

	return config, config.Validate()
}

// Validate checks the settings the API process cannot start without.
func (c Config) Validate() error {
	switch c.Dataset.Source {
	case SourceFile:
		if c.Dataset.Path == "" {
			return errors.New("dataset.path is required for the file source")
		}
	case SourceS3:
		if c.S3.Bucket == "" || c.S3.Key == "" {
			return errors.New("s3.bucket and s3.key are required for the s3 source")
		}
	case SourceMongo:
		if c.Mongo.URI == "" {
			return errors.New("mongo.uri is required for the mongo source")
		}
	default:
		return fmt.Errorf("unknown dataset.source %q", c.Dataset.Source)
	}
	return nil
}

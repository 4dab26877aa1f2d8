package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	WordListSourceFile     = "file"
	WordListSourceDatabase = "database"

	AdvanceOnCorrect = "correct"
	AdvanceAlways    = "always"
)

type Config struct {
	WordList  WordListConfig  `mapstructure:"wordlist"`
	Quiz      QuizConfig      `mapstructure:"quiz"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Worksheet WorksheetConfig `mapstructure:"worksheet"`
}

type WordListConfig struct {
	Source   string `mapstructure:"source" validate:"oneof=file database"`
	Path     string `mapstructure:"path" validate:"required_if=Source file"`
	Format   string `mapstructure:"format" validate:"wordlist_format"`
	ListName string `mapstructure:"list_name" validate:"required_if=Source database"`
}

type QuizConfig struct {
	// Seed makes letter draws reproducible. 0 draws a random seed.
	Seed                 uint64 `mapstructure:"seed"`
	Advance              string `mapstructure:"advance" validate:"oneof=correct always"`
	RequireMeaning       bool   `mapstructure:"require_meaning"`
	AllowEmptyLetterPool bool   `mapstructure:"allow_empty_letter_pool"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql pgx sqlite3"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"gte=0,lte=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
	ConnectAttempts uint              `mapstructure:"connect_attempts" validate:"gte=1"`
}

type WorksheetConfig struct {
	Template        string `mapstructure:"template" validate:"omitempty,file"`
	OutputDirectory string `mapstructure:"output_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
	envFile    string
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/letterquiz")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
		envFile:    ".env",
	}, nil
}

// Load is a shorthand for NewConfigLoader(configFile).Load()
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	// Variables already set in the environment win over the .env file
	if err := godotenv.Load(loader.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", loader.envFile, err)
	}

	v.SetDefault("wordlist.source", WordListSourceFile)
	v.SetDefault("wordlist.path", filepath.Join("assets", "exercise", "unit3.txt"))
	v.SetDefault("wordlist.format", "")
	v.SetDefault("wordlist.list_name", "")
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("quiz.advance", AdvanceOnCorrect)
	v.SetDefault("quiz.require_meaning", false)
	v.SetDefault("quiz.allow_empty_letter_pool", false)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "local")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.connect_attempts", 3)
	v.SetDefault("worksheet.template", "")
	v.SetDefault("worksheet.output_directory", filepath.Join("outputs", "worksheets"))

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct() > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

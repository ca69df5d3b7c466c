package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/itchan-dev/threadboard/shared/domain"
)

type Config struct {
	Public Public
}

type Public struct {
	Server             Server   `yaml:"server"`
	Log                Log      `yaml:"log"`
	Forum              Forum    `yaml:"forum"`
	Session            Session  `yaml:"session"`
	SecureCookies      bool     `yaml:"secure_cookies" env:"SECURE_COOKIES"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
}

type Server struct {
	Port            string        `yaml:"port" env:"PORT" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"required"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"required"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"required"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
	JSON  bool   `yaml:"json" env:"LOG_JSON"`
}

type Forum struct {
	PlaceholderAuthor    string       `yaml:"placeholder_author" validate:"required"`
	RecentPostsLimit     int          `yaml:"recent_posts_limit" validate:"gte=0"`
	Categories           []string     `yaml:"categories"`
	SeedThreads          []SeedThread `yaml:"seed_threads" validate:"dive"`
	SubmissionsPerMinute float64      `yaml:"submissions_per_minute" validate:"gt=0"` // per client IP
	SubmissionBurst      float64      `yaml:"submission_burst" validate:"gte=1"`
}

// SeedThread is a sample thread every new session starts with
type SeedThread struct {
	Title        string `yaml:"title" validate:"required"`
	Content      string `yaml:"content" validate:"required"`
	Author       string `yaml:"author" validate:"required"`
	CommentCount int    `yaml:"comment_count" validate:"gte=0"`
	ViewCount    int    `yaml:"view_count" validate:"gte=0"`
}

type Session struct {
	TTL           time.Duration `yaml:"ttl" env:"SESSION_TTL" validate:"required"`
	SweepInterval time.Duration `yaml:"sweep_interval" validate:"required"`
	MaxSessions   int           `yaml:"max_sessions" env:"SESSION_LIMIT" validate:"gte=0"` // 0 disables the cap
}

func (f Forum) Seed() []domain.Thread {
	threads := make([]domain.Thread, 0, len(f.SeedThreads))
	for _, s := range f.SeedThreads {
		threads = append(threads, domain.Thread{
			Title:        s.Title,
			Content:      s.Content,
			Author:       s.Author,
			CommentCount: s.CommentCount,
			ViewCount:    s.ViewCount,
		})
	}
	return threads
}

func loadPath(configPath string, output interface{}) error {
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

// Load reads public.yaml from configFolder, applies environment overrides
// and validates the result.
func Load(configFolder string) (*Config, error) {
	var public Public
	if err := loadPath(path.Join(configFolder, "public.yaml"), &public); err != nil {
		return nil, err
	}
	if err := cleanenv.ReadEnv(&public); err != nil {
		return nil, fmt.Errorf("can't apply env overrides: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(public); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Config{Public: public}, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

// LoadDotEnv populates the environment from a .env file if one exists.
// Variables already set are left alone.
func LoadDotEnv(filename string) error {
	if err := godotenv.Load(filename); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("can't load %s: %w", filename, err)
	}
	return nil
}

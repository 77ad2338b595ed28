package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Storage engines supported by the server.
const (
	EngineMemory  = "memory"
	EnginePGXPool = "pgxpool"
	EngineSQLDB   = "sqldb"
	EngineSQLX    = "sqlx"
)

var (
	ErrUnsupportedEngine    = errors.New("unsupported storage engine")
	ErrMissingPostgresDSN   = errors.New("a postgres dsn is required for this storage engine")
	ErrReplicaNeedsPostgres = errors.New("a replica dsn needs a postgres storage engine")
	ErrMalformedUserEntry   = errors.New("malformed user entry")
	ErrLoadingConfigFailed  = errors.New("loading config failed")
)

// Config holds everything the server and the migration tool need.
type Config struct {
	HTTPAddr           string        `env:"LIBRARY_HTTP_ADDR,default=:8080"`
	LogLevel           string        `env:"LIBRARY_LOG_LEVEL,default=info"`
	Engine             string        `env:"LIBRARY_ENGINE,default=memory"`
	PostgresDSN        string        `env:"LIBRARY_POSTGRES_DSN"`
	PostgresReplicaDSN string        `env:"LIBRARY_POSTGRES_REPLICA_DSN"`
	EventsTable        string        `env:"LIBRARY_EVENTS_TABLE,default=events"`
	Users              string        `env:"LIBRARY_USERS"`
	ShutdownTimeout    time.Duration `env:"LIBRARY_SHUTDOWN_TIMEOUT,default=10s"`
	TracerName         string        `env:"LIBRARY_TRACER_NAME,default=library-books"`
}

// User is one entry of the basic auth user list.
type User struct {
	Name         string
	PasswordHash string
	Groups       []string
}

// Load reads the given .env files (".env" if none are given), then decodes the environment.
// Missing .env files are not an error, malformed ones are.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Join(ErrLoadingConfigFailed, fmt.Errorf("%s: %w", file, err))
		}
	}

	return FromEnv()
}

// FromEnv decodes the configuration from the process environment and validates it.
func FromEnv() (Config, error) {
	var cfg Config

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, errors.Join(ErrLoadingConfigFailed, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the combination of engine and dsn.
func (c Config) Validate() error {
	switch c.Engine {
	case EngineMemory:
		if c.PostgresReplicaDSN != "" {
			return ErrReplicaNeedsPostgres
		}
		return nil
	case EnginePGXPool, EngineSQLDB, EngineSQLX:
		if c.PostgresDSN == "" {
			return fmt.Errorf("%w: %s", ErrMissingPostgresDSN, c.Engine)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedEngine, c.Engine)
	}
}

// ParsedUsers parses the Users setting.
func (c Config) ParsedUsers() ([]User, error) {
	return ParseUsers(c.Users)
}

// ParseUsers parses a comma separated list of "name:bcrypt-hash:group|group" entries.
func ParseUsers(raw string) ([]User, error) {
	users := make([]User, 0)

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedUserEntry, parts[0])
		}

		user := User{Name: parts[0], PasswordHash: parts[1]}
		for _, group := range strings.Split(parts[2], "|") {
			if group = strings.TrimSpace(group); group != "" {
				user.Groups = append(user.Groups, group)
			}
		}

		users = append(users, user)
	}

	return users, nil
}

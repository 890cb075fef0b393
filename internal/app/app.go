package app

import (
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"templehub/pkg/storage"
	"templehub/pkg/store"
)

// Config holds runtime configuration for the core application.
type Config struct {
	DatabaseURL string
	Store       store.Store

	StorageBackend   string
	MinioEndpoint    string
	MinioAccessKey   string
	MinioSecretKey   string
	MinioBucket      string
	MinioUseSSL      bool
	LocalStoragePath string
	Objects          storage.ObjectStore

	JWTSecret     string
	TokenTTL      time.Duration
	MaxAssetBytes int64
	CacheTTL      time.Duration
}

// App is the core application service wiring together storage and domain logic.
type App struct {
	store   store.Store
	objects storage.ObjectStore
	cache   *gocache.Cache

	// serializes full-table schedule replacement against row edits
	schedMu sync.Mutex

	jwtSecret     []byte
	tokenTTL      time.Duration
	maxAssetBytes int64
}

// New constructs the application with database-backed metadata storage
// and object storage for binary payloads.
func New(cfg Config) (*App, error) {
	dataStore := cfg.Store
	if dataStore == nil {
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("database URL required")
		}
		var err error
		dataStore, err = store.NewGormStore(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("init postgres store: %w", err)
		}
	}

	objects := cfg.Objects
	if objects == nil {
		var err error
		switch cfg.StorageBackend {
		case "", "minio":
			objects, err = storage.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		case "local":
			objects, err = storage.NewFileStore(cfg.LocalStoragePath)
		default:
			err = fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
		}
		if err != nil {
			return nil, fmt.Errorf("init object store: %w", err)
		}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret required")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	if cfg.MaxAssetBytes <= 0 {
		cfg.MaxAssetBytes = 15 << 20
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	return &App{
		store:         dataStore,
		objects:       objects,
		cache:         gocache.New(cacheTTL, 2*cacheTTL),
		jwtSecret:     []byte(cfg.JWTSecret),
		tokenTTL:      cfg.TokenTTL,
		maxAssetBytes: cfg.MaxAssetBytes,
	}, nil
}

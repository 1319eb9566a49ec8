package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"plan_appetit/internal/domain/entities"
	"plan_appetit/internal/usecase/interfaces"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ConfigurationsKey = "configurations"
	LastViewedKey     = "lastConfigViewed"
)

var (
	ErrInvalidConfigurationID = errors.New("invalid configuration uuid")
	ErrInvalidName            = errors.New("invalid configuration name")
)

// IConfigurationUseCase is the sole authority over durable planning configurations.
//
// Reads never fail because of bad stored data:
//   - absent, blank, empty or malformed documents fall back to one default configuration
//   - records without uuid are migrated and the collection is rewritten
//
// Errors are only returned when the backing medium itself fails.

type IConfigurationUseCase interface {
	CreateEmpty() entities.Configuration
	Create(ctx context.Context, name string) (entities.Configuration, error)
	FetchAll(ctx context.Context) ([]entities.Configuration, error)
	SaveAll(ctx context.Context, configs []entities.Configuration) error
	Add(ctx context.Context, configs []entities.Configuration, c entities.Configuration) ([]entities.Configuration, error)
	Update(ctx context.Context, configs []entities.Configuration, c entities.Configuration) ([]entities.Configuration, error)
	Delete(ctx context.Context, id string) error
	GetByUUID(ctx context.Context, id string) (entities.Configuration, error)
	GetLastViewed(ctx context.Context) (string, error)
	SetLastViewed(ctx context.Context, id string) error
	Rename(ctx context.Context, c entities.Configuration, newName string) (*entities.Configuration, error)
	Upsert(ctx context.Context, c entities.Configuration) ([]entities.Configuration, error)
}

type ConfigurationStore struct {
	kv     interfaces.IKeyValueStore
	logger *zap.Logger
	newID  func() string
}

var _ IConfigurationUseCase = (*ConfigurationStore)(nil)

func NewConfigurationStore(kv interfaces.IKeyValueStore, logger *zap.Logger) *ConfigurationStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigurationStore{kv: kv, logger: logger, newID: uuid.NewString}
}

// CreateEmpty builds the default skeleton with a fresh uuid. It does not persist.
func (s *ConfigurationStore) CreateEmpty() entities.Configuration {
	return entities.NewEmptyConfiguration(s.newID())
}

// Create builds a default configuration, names it and appends it to the
// persisted collection.
func (s *ConfigurationStore) Create(ctx context.Context, name string) (entities.Configuration, error) {
	c := s.CreateEmpty()
	if name = strings.TrimSpace(name); name != "" {
		c.Name = name
	}

	configs, err := s.load(ctx)
	if err != nil {
		return entities.Configuration{}, err
	}
	if _, err := s.Add(ctx, configs, c); err != nil {
		return entities.Configuration{}, err
	}

	s.logger.Info("configuration created", zap.String("uuid", c.UUID), zap.String("name", c.Name))
	return c, nil
}

// FetchAll returns the persisted collection, or a single unsaved default
// configuration when nothing usable is stored.
func (s *ConfigurationStore) FetchAll(ctx context.Context) ([]entities.Configuration, error) {
	configs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return []entities.Configuration{s.CreateEmpty()}, nil
	}
	return configs, nil
}

// SaveAll overwrites the whole persisted collection.
func (s *ConfigurationStore) SaveAll(ctx context.Context, configs []entities.Configuration) error {
	if configs == nil {
		configs = []entities.Configuration{}
	}

	raw, err := json.Marshal(configs)
	if err != nil {
		return fmt.Errorf("marshal configurations: %w", err)
	}
	if err := s.kv.Set(ctx, ConfigurationsKey, string(raw)); err != nil {
		return fmt.Errorf("write configurations: %w", err)
	}
	return nil
}

// Add appends c and persists. Duplicate uuids are not checked.
func (s *ConfigurationStore) Add(ctx context.Context, configs []entities.Configuration, c entities.Configuration) ([]entities.Configuration, error) {
	out := append(slices.Clone(configs), c)
	if err := s.SaveAll(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the record sharing c's uuid, or appends c when none does,
// then persists. The returned slice is the new source of truth; configs is
// left untouched.
func (s *ConfigurationStore) Update(ctx context.Context, configs []entities.Configuration, c entities.Configuration) ([]entities.Configuration, error) {
	out := slices.Clone(configs)

	idx := slices.IndexFunc(out, func(existing entities.Configuration) bool {
		return existing.UUID == c.UUID
	})
	if idx >= 0 {
		out[idx] = c
	} else {
		out = append(out, c)
		s.logger.Debug("update target not found, appending", zap.String("uuid", c.UUID))
	}

	if err := s.SaveAll(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes every persisted record with the given uuid. It works on a
// fresh read of the store, so an unsaved in-memory edit of the same record
// is lost.
func (s *ConfigurationStore) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidConfigurationID
	}

	configs, err := s.load(ctx)
	if err != nil {
		return err
	}

	before := len(configs)
	configs = slices.DeleteFunc(configs, func(c entities.Configuration) bool {
		return c.UUID == id
	})
	if err := s.SaveAll(ctx, configs); err != nil {
		return err
	}

	s.logger.Info("configuration deleted", zap.String("uuid", id), zap.Int("removed", before-len(configs)))
	return nil
}

// GetByUUID returns the matching configuration or, when there is none, the
// first one of FetchAll. Callers must expect an unrelated configuration back.
func (s *ConfigurationStore) GetByUUID(ctx context.Context, id string) (entities.Configuration, error) {
	configs, err := s.FetchAll(ctx)
	if err != nil {
		return entities.Configuration{}, err
	}

	if id = strings.TrimSpace(id); id != "" {
		for _, c := range configs {
			if c.UUID == id {
				return c, nil
			}
		}
	}

	s.logger.Debug("configuration not found, falling back to first", zap.String("uuid", id), zap.String("fallback", configs[0].UUID))
	return configs[0], nil
}

// GetLastViewed returns the uuid stored under LastViewedKey, "" when unset.
func (s *ConfigurationStore) GetLastViewed(ctx context.Context) (string, error) {
	raw, found, err := s.kv.Get(ctx, LastViewedKey)
	if err != nil {
		return "", fmt.Errorf("read last viewed: %w", err)
	}
	if !found || strings.TrimSpace(raw) == "" {
		return "", nil
	}

	var id string
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		s.logger.Warn("malformed last viewed value, ignoring", zap.String("raw", raw), zap.Error(err))
		return "", nil
	}
	return id, nil
}

func (s *ConfigurationStore) SetLastViewed(ctx context.Context, id string) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("marshal last viewed: %w", err)
	}
	if err := s.kv.Set(ctx, LastViewedKey, string(raw)); err != nil {
		return fmt.Errorf("write last viewed: %w", err)
	}
	return nil
}

// Rename sets a new name on the persisted record sharing c's uuid and
// persists it. A blank name or a uuid with no stored record returns nil and
// writes nothing.
func (s *ConfigurationStore) Rename(ctx context.Context, c entities.Configuration, newName string) (*entities.Configuration, error) {
	name := strings.TrimSpace(newName)
	if name == "" {
		return nil, nil
	}

	configs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(configs, func(existing entities.Configuration) bool {
		return existing.UUID == c.UUID
	})
	if idx < 0 {
		s.logger.Debug("rename target not found", zap.String("uuid", c.UUID))
		return nil, nil
	}

	renamed := configs[idx].Clone()
	renamed.Name = name
	if _, err := s.Update(ctx, configs, renamed); err != nil {
		return nil, err
	}
	return &renamed, nil
}

// Upsert replaces or appends c in the persisted collection. Unlike
// Update(FetchAll(), c) it never persists the unsaved default.
func (s *ConfigurationStore) Upsert(ctx context.Context, c entities.Configuration) ([]entities.Configuration, error) {
	configs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, configs, c)
}

// load reads the persisted collection and migrates records without uuid.
// It returns an empty slice for absent, blank or malformed documents.
func (s *ConfigurationStore) load(ctx context.Context) ([]entities.Configuration, error) {
	raw, found, err := s.kv.Get(ctx, ConfigurationsKey)
	if err != nil {
		return nil, fmt.Errorf("read configurations: %w", err)
	}
	if !found || strings.TrimSpace(raw) == "" {
		s.logger.Debug("no configurations stored")
		return nil, nil
	}

	var configs []entities.Configuration
	if err := json.Unmarshal([]byte(raw), &configs); err != nil {
		s.logger.Warn("malformed configurations document, ignoring", zap.Int("bytes", len(raw)), zap.Error(err))
		return nil, nil
	}

	migrated := 0
	for i := range configs {
		if strings.TrimSpace(configs[i].UUID) == "" {
			configs[i].UUID = s.newID()
			migrated++
		}
	}
	if migrated > 0 {
		if err := s.SaveAll(ctx, configs); err != nil {
			return nil, fmt.Errorf("migrate legacy configurations: %w", err)
		}
		s.logger.Info("assigned uuids to legacy configurations", zap.Int("count", migrated))
	}

	return configs, nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/andrewserrazina/friendly-paws-backend/internal/domain"
	"github.com/andrewserrazina/friendly-paws-backend/internal/events"
	"github.com/andrewserrazina/friendly-paws-backend/internal/persistence"
	"github.com/andrewserrazina/friendly-paws-backend/internal/repository"
	apperrors "github.com/andrewserrazina/friendly-paws-backend/pkg/util"
)

const clientCachePrefix = "client:"

// ClientService coordinates client record workflows with a Redis
// read-through cache in front of the repository.
type ClientService struct {
	clients    repository.ClientRepository
	cache      *persistence.Redis
	cacheTTL   time.Duration
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewClientService builds the service.
func NewClientService(clients repository.ClientRepository, cache *persistence.Redis, cacheTTL time.Duration, dispatcher events.Dispatcher, logger *zap.Logger) *ClientService {
	return &ClientService{
		clients:    clients,
		cache:      cache,
		cacheTTL:   cacheTTL,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// ClientCreateInput describes client creation payload.
type ClientCreateInput struct {
	Name  string
	Email string
	Phone string
}

// CreateClient stores a new client record.
func (s *ClientService) CreateClient(ctx context.Context, input ClientCreateInput) (*domain.Client, error) {
	client := &domain.Client{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient fetches a client, preferring the cache.
func (s *ClientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	key := clientCachePrefix + id
	if cached, ok, err := s.cache.CacheGet(ctx, key); err == nil && ok {
		var client domain.Client
		if err := json.Unmarshal([]byte(cached), &client); err == nil {
			return &client, nil
		}
	} else if err != nil {
		s.logger.Warn("client cache read failed", zap.Error(err))
	}

	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("client", map[string]any{"id": id})
		}
		return nil, err
	}

	if encoded, err := json.Marshal(client); err == nil {
		if err := s.cache.CacheSet(ctx, key, string(encoded), s.cacheTTL); err != nil {
			s.logger.Warn("client cache write failed", zap.Error(err))
		}
	}
	return client, nil
}

// ListClients returns clients with pagination.
func (s *ClientService) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	return s.clients.List(ctx, limit, offset)
}

// DeleteClient removes a client and invalidates its cache entry.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("client", map[string]any{"id": id})
		}
		return err
	}

	if err := s.clients.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("client", map[string]any{"id": id})
		}
		return err
	}

	if err := s.cache.CacheDelete(ctx, clientCachePrefix+id); err != nil {
		s.logger.Warn("client cache invalidation failed", zap.Error(err))
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventClientDeleted,
			Subject:   id,
			Timestamp: time.Now(),
			Payload:   events.ClientDeletedPayload{Email: client.Email},
		})
	}
	return nil
}

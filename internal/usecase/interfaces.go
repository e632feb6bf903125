package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
)

type ContactRepositoryInterface interface {
	List(ctx context.Context) ([]entity.Contact, error)
	Create(ctx context.Context, c *entity.Contact) error
	Update(ctx context.Context, c *entity.Contact) error
	Delete(ctx context.Context, id int64) error
}

type LeadRepositoryInterface interface {
	List(ctx context.Context) ([]entity.Lead, error)
	Create(ctx context.Context, l *entity.Lead) error
	Update(ctx context.Context, l *entity.Lead) error
	Delete(ctx context.Context, id int64) error
}

// ListCacheInterface é o cache read-through das listagens. Opcional: os
// use cases aceitam nil e vão direto ao banco.
type ListCacheInterface interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, keys ...string) error
}

type QueueProducerInterface interface {
	PublishRecordEvent(ctx context.Context, event queue.RecordEvent) error
}

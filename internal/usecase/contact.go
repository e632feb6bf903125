package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
)

// ContactUseCase implementa o CRUD dos registros de contato. A mesma
// implementação atende prospects e clients; o que muda é o repositório e o
// nome da entidade usado em eventos e chaves de cache.
type ContactUseCase struct {
	Entity   string // "prospect" ou "client"
	Repo     ContactRepositoryInterface
	Cache    ListCacheInterface
	Producer QueueProducerInterface
}

func NewContactUseCase(entityName string, repo ContactRepositoryInterface, cache ListCacheInterface, producer QueueProducerInterface) *ContactUseCase {
	return &ContactUseCase{
		Entity:   entityName,
		Repo:     repo,
		Cache:    cache,
		Producer: producer,
	}
}

func (uc *ContactUseCase) cacheKey() string {
	return "records:" + uc.Entity + "s"
}

func (uc *ContactUseCase) List(ctx context.Context) ([]entity.Contact, error) {
	if uc.Cache != nil {
		var cached []entity.Contact
		hit, err := uc.Cache.Get(ctx, uc.cacheKey(), &cached)
		if err != nil {
			log.Printf("cache read failed for %s: %v", uc.cacheKey(), err)
		} else if hit {
			return cached, nil
		}
	}

	records, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []entity.Contact{}
	}

	if uc.Cache != nil {
		if err := uc.Cache.Set(ctx, uc.cacheKey(), records); err != nil {
			log.Printf("cache write failed for %s: %v", uc.cacheKey(), err)
		}
	}

	return records, nil
}

func (uc *ContactUseCase) Create(ctx context.Context, input ContactInput) (*entity.Contact, error) {
	input.Phone = FormatPhone(input.Phone)
	if errs := ValidateContactInput(input); len(errs) > 0 {
		return nil, errs
	}

	record := &entity.Contact{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Contact:     input.Contact,
		LastHistory: input.LastHistory,
		Status:      input.Status,
	}

	if err := uc.Repo.Create(ctx, record); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, queue.ActionCreated, record)
	return record, nil
}

// Update substitui todos os campos do registro; não é um patch parcial.
func (uc *ContactUseCase) Update(ctx context.Context, input ContactInput) (*entity.Contact, error) {
	if input.ID == 0 {
		return nil, entity.ErrMissingID
	}

	input.Phone = FormatPhone(input.Phone)
	if errs := ValidateContactInput(input); len(errs) > 0 {
		return nil, errs
	}

	record := &entity.Contact{
		ID:          input.ID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Contact:     input.Contact,
		LastHistory: input.LastHistory,
		Status:      input.Status,
	}

	if err := uc.Repo.Update(ctx, record); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, queue.ActionUpdated, record)
	return record, nil
}

func (uc *ContactUseCase) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return entity.ErrMissingID
	}

	if err := uc.Repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.afterMutation(ctx, queue.ActionDeleted, &entity.Contact{ID: id})
	return nil
}

// afterMutation invalida o cache de listagem e publica o evento. As duas
// coisas são best-effort: o banco já confirmou a mutação.
func (uc *ContactUseCase) afterMutation(ctx context.Context, action string, record *entity.Contact) {
	if uc.Cache != nil {
		if err := uc.Cache.Invalidate(ctx, uc.cacheKey()); err != nil {
			log.Printf("cache invalidation failed for %s: %v", uc.cacheKey(), err)
		}
	}

	if uc.Producer != nil {
		event := queue.RecordEvent{
			Entity:   uc.Entity,
			Action:   action,
			RecordID: record.ID,
			Name:     record.Name,
			Email:    record.Email,
		}
		if err := uc.Producer.PublishRecordEvent(ctx, event); err != nil {
			log.Printf("failed to publish %s %s event: %v", uc.Entity, action, err)
		}
	}
}

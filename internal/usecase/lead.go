package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
)

const leadListKey = "records:leads"

type LeadUseCase struct {
	Repo     LeadRepositoryInterface
	Cache    ListCacheInterface
	Producer QueueProducerInterface
}

func NewLeadUseCase(repo LeadRepositoryInterface, cache ListCacheInterface, producer QueueProducerInterface) *LeadUseCase {
	return &LeadUseCase{
		Repo:     repo,
		Cache:    cache,
		Producer: producer,
	}
}

func (uc *LeadUseCase) List(ctx context.Context) ([]entity.Lead, error) {
	if uc.Cache != nil {
		var cached []entity.Lead
		hit, err := uc.Cache.Get(ctx, leadListKey, &cached)
		if err != nil {
			log.Printf("cache read failed for %s: %v", leadListKey, err)
		} else if hit {
			return cached, nil
		}
	}

	leads, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []entity.Lead{}
	}

	if uc.Cache != nil {
		if err := uc.Cache.Set(ctx, leadListKey, leads); err != nil {
			log.Printf("cache write failed for %s: %v", leadListKey, err)
		}
	}

	return leads, nil
}

func (uc *LeadUseCase) Create(ctx context.Context, input LeadInput) (*entity.Lead, error) {
	input.Phone = normalizeOptionalPhone(input.Phone)
	if errs := ValidateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	lead, err := leadFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, queue.ActionCreated, lead)
	return lead, nil
}

func (uc *LeadUseCase) Update(ctx context.Context, input LeadInput) (*entity.Lead, error) {
	if input.ID == 0 {
		return nil, entity.ErrMissingID
	}

	input.Phone = normalizeOptionalPhone(input.Phone)
	if errs := ValidateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	lead, err := leadFromInput(input)
	if err != nil {
		return nil, err
	}
	lead.ID = input.ID

	if err := uc.Repo.Update(ctx, lead); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, queue.ActionUpdated, lead)
	return lead, nil
}

func (uc *LeadUseCase) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return entity.ErrMissingID
	}

	if err := uc.Repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.afterMutation(ctx, queue.ActionDeleted, &entity.Lead{ID: id})
	return nil
}

func leadFromInput(input LeadInput) (*entity.Lead, error) {
	lead := &entity.Lead{
		CityName:      input.CityName,
		CompanyName:   input.CompanyName,
		Phone:         input.Phone,
		EventName:     input.EventName,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Observations:  input.Observations,
	}

	if input.NextDate != "" {
		next, err := ParseNextDate(input.NextDate)
		if err != nil {
			return nil, ValidationErrors{{"nextDate", err.Error()}}
		}
		lead.NextDate = &next
	}

	return lead, nil
}

func normalizeOptionalPhone(phone string) string {
	if phone == "" {
		return phone
	}
	return FormatPhone(phone)
}

func (uc *LeadUseCase) afterMutation(ctx context.Context, action string, lead *entity.Lead) {
	if uc.Cache != nil {
		if err := uc.Cache.Invalidate(ctx, leadListKey); err != nil {
			log.Printf("cache invalidation failed for %s: %v", leadListKey, err)
		}
	}

	if uc.Producer != nil {
		event := queue.RecordEvent{
			Entity:   "lead",
			Action:   action,
			RecordID: lead.ID,
			Name:     lead.CompanyName,
			Email:    lead.Email,
		}
		if err := uc.Producer.PublishRecordEvent(ctx, event); err != nil {
			log.Printf("failed to publish lead %s event: %v", action, err)
		}
	}
}

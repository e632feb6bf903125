package form

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/apiclient"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

// LeadForm é o formulário da variante orientada a eventos.
type LeadForm struct {
	resource apiclient.LeadResource

	CityName      string
	CompanyName   string
	Phone         string
	EventName     string
	ContactPerson string
	Email         string
	NextDate      string // YYYY-MM-DD
	Observations  string

	editing *entity.Lead
}

func NewLeadForm(resource apiclient.LeadResource) *LeadForm {
	return &LeadForm{resource: resource}
}

func (f *LeadForm) SetEditing(lead entity.Lead) {
	f.editing = &lead
	f.CityName = lead.CityName
	f.CompanyName = lead.CompanyName
	f.Phone = lead.Phone
	f.EventName = lead.EventName
	f.ContactPerson = lead.ContactPerson
	f.Email = lead.Email
	f.Observations = lead.Observations
	if lead.NextDate != nil {
		f.NextDate = lead.NextDate.Format("2006-01-02")
	} else {
		f.NextDate = ""
	}
}

func (f *LeadForm) Editing() *entity.Lead {
	return f.editing
}

func (f *LeadForm) Submit(ctx context.Context) (*entity.Lead, error) {
	if f.Phone != "" {
		f.Phone = usecase.FormatPhone(f.Phone)
	}

	input := usecase.LeadInput{
		CityName:      f.CityName,
		CompanyName:   f.CompanyName,
		Phone:         f.Phone,
		EventName:     f.EventName,
		ContactPerson: f.ContactPerson,
		Email:         f.Email,
		NextDate:      f.NextDate,
		Observations:  f.Observations,
	}
	if errs := usecase.ValidateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	var lead *entity.Lead
	var err error
	if f.editing != nil {
		input.ID = f.editing.ID
		lead, err = f.resource.Update(ctx, input)
	} else {
		lead, err = f.resource.Create(ctx, input)
	}
	if err != nil {
		return nil, err
	}

	f.Reset()
	return lead, nil
}

func (f *LeadForm) Delete(ctx context.Context) error {
	if f.editing == nil {
		return ErrNotEditing
	}

	if err := f.resource.Delete(ctx, f.editing.ID); err != nil {
		return err
	}

	f.Reset()
	return nil
}

func (f *LeadForm) Reset() {
	f.CityName = ""
	f.CompanyName = ""
	f.Phone = ""
	f.EventName = ""
	f.ContactPerson = ""
	f.Email = ""
	f.NextDate = ""
	f.Observations = ""
	f.editing = nil
}

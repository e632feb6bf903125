// Package form reproduz o comportamento dos formulários de cadastro: valida
// os campos antes de qualquer chamada de rede, normaliza o telefone e decide
// entre create e update conforme haja um registro em edição.
package form

import (
	"context"
	"errors"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/apiclient"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

var ErrNotEditing = errors.New("no record selected for editing")

// ContactForm é o formulário de prospects e clients.
type ContactForm struct {
	resource apiclient.ContactResource

	Name        string
	Email       string
	Phone       string
	Contact     string
	LastHistory string
	Status      string

	editing *entity.Contact
}

func NewContactForm(resource apiclient.ContactResource) *ContactForm {
	return &ContactForm{resource: resource}
}

// SetEditing entra no modo de edição, pré-populando os campos.
func (f *ContactForm) SetEditing(record entity.Contact) {
	f.editing = &record
	f.Name = record.Name
	f.Email = record.Email
	f.Phone = record.Phone
	f.Contact = record.Contact
	f.LastHistory = record.LastHistory
	f.Status = record.Status
}

func (f *ContactForm) Editing() *entity.Contact {
	return f.editing
}

// Submit valida localmente e só então chama a API; em falha de validação
// nenhum request é feito. Em sucesso o formulário é limpo e fechado.
func (f *ContactForm) Submit(ctx context.Context) (*entity.Contact, error) {
	f.Phone = usecase.FormatPhone(f.Phone)

	input := usecase.ContactInput{
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		Contact:     f.Contact,
		LastHistory: f.LastHistory,
		Status:      f.Status,
	}
	if errs := usecase.ValidateContactInput(input); len(errs) > 0 {
		return nil, errs
	}

	var record *entity.Contact
	var err error
	if f.editing != nil {
		input.ID = f.editing.ID
		record, err = f.resource.Update(ctx, input)
	} else {
		record, err = f.resource.Create(ctx, input)
	}
	if err != nil {
		return nil, err
	}

	f.Reset()
	return record, nil
}

// Delete só existe no modo de edição.
func (f *ContactForm) Delete(ctx context.Context) error {
	if f.editing == nil {
		return ErrNotEditing
	}

	if err := f.resource.Delete(ctx, f.editing.ID); err != nil {
		return err
	}

	f.Reset()
	return nil
}

func (f *ContactForm) Reset() {
	f.Name = ""
	f.Email = ""
	f.Phone = ""
	f.Contact = ""
	f.LastHistory = ""
	f.Status = ""
	f.editing = nil
}

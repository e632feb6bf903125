package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors agrega as falhas de um único submit.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	// Formato canônico: (DD)DDDD-DDDD ou (DD)DDDDD-DDDD, sem espaço.
	phonePattern = regexp.MustCompile(`^\(\d{2}\)\d{4,5}-\d{4}$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// FormatPhone normaliza um telefone digitado livre para o formato canônico.
// Entradas que não tenham 10 ou 11 dígitos voltam intactas e reprovam na
// validação em seguida.
func FormatPhone(phone string) string {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	switch len(cleaned) {
	case 10:
		return fmt.Sprintf("(%s)%s-%s", cleaned[:2], cleaned[2:6], cleaned[6:])
	case 11:
		return fmt.Sprintf("(%s)%s-%s", cleaned[:2], cleaned[2:7], cleaned[7:])
	}
	return phone
}

// ParseNextDate aceita YYYY-MM-DD ou RFC3339 e normaliza para meia-noite UTC.
func ParseNextDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		year, month, day := t.UTC().Date()
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC3339", value)
}

func ValidateContactInput(input ContactInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if !IsValidEmail(input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errs = append(errs, ValidationError{"phone", "is required"})
	} else if !IsValidPhone(input.Phone) {
		errs = append(errs, ValidationError{"phone", "must match (00)00000-0000"})
	}

	switch input.Contact {
	case entity.ContactPhone, entity.ContactEmail:
	case "":
		errs = append(errs, ValidationError{"contact", "is required"})
	default:
		errs = append(errs, ValidationError{"contact", "must be Phone or Email"})
	}

	switch input.Status {
	case entity.StatusActive, entity.StatusPending:
	case "":
		errs = append(errs, ValidationError{"status", "is required"})
	default:
		errs = append(errs, ValidationError{"status", "must be Active or Pending"})
	}

	return errs
}

func ValidateLeadInput(input LeadInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.CompanyName) == "" {
		errs = append(errs, ValidationError{"companyName", "is required"})
	}
	if strings.TrimSpace(input.CityName) == "" {
		errs = append(errs, ValidationError{"cityName", "is required"})
	}

	if input.Email != "" && !IsValidEmail(input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}
	if input.Phone != "" && !IsValidPhone(input.Phone) {
		errs = append(errs, ValidationError{"phone", "must match (00)00000-0000"})
	}
	if input.NextDate != "" {
		if _, err := ParseNextDate(input.NextDate); err != nil {
			errs = append(errs, ValidationError{"nextDate", "must be a valid date (YYYY-MM-DD)"})
		}
	}

	return errs
}

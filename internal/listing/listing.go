// Package listing é a lógica da tabela: filtra e pagina em memória o
// conjunto completo já buscado da API, sem nova ida ao servidor.
package listing

import (
	"strings"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// PageSize é fixo; a paginação é 1-based.
const PageSize = 10

type ContactFilters struct {
	Search  string // substring em name OU email, sem case
	Status  string // match exato quando preenchido
	Contact string // match exato quando preenchido
}

func FilterContacts(records []entity.Contact, f ContactFilters) []entity.Contact {
	search := strings.ToLower(f.Search)

	var out []entity.Contact
	for _, r := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Email), search) {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.Contact != "" && r.Contact != f.Contact {
			continue
		}
		out = append(out, r)
	}
	return out
}

type LeadFilters struct {
	Search   string // substring em cityName OU companyName, sem case
	NextDate *time.Time
}

func FilterLeads(leads []entity.Lead, f LeadFilters) []entity.Lead {
	search := strings.ToLower(f.Search)

	var out []entity.Lead
	for _, l := range leads {
		if search != "" &&
			!strings.Contains(strings.ToLower(l.CityName), search) &&
			!strings.Contains(strings.ToLower(l.CompanyName), search) {
			continue
		}
		if f.NextDate != nil {
			if l.NextDate == nil || !sameDay(*l.NextDate, *f.NextDate) {
				continue
			}
		}
		out = append(out, l)
	}
	return out
}

// sameDay compara apenas o dia-calendário, com os dois lados em UTC.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func TotalPages(count int) int {
	return (count + PageSize - 1) / PageSize
}

// Paginate devolve a fatia da página pedida; páginas fora do intervalo
// devolvem uma fatia vazia.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		return []T{}
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// MergeContact aplica o patch otimista da tabela: substitui por id quando o
// registro já está na lista, senão anexa ao fim.
func MergeContact(records []entity.Contact, record entity.Contact) []entity.Contact {
	for i, r := range records {
		if r.ID == record.ID {
			records[i] = record
			return records
		}
	}
	return append(records, record)
}

func RemoveContact(records []entity.Contact, id int64) []entity.Contact {
	out := records[:0]
	for _, r := range records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

func MergeLead(leads []entity.Lead, lead entity.Lead) []entity.Lead {
	for i, l := range leads {
		if l.ID == lead.ID {
			leads[i] = lead
			return leads
		}
	}
	return append(leads, lead)
}

func RemoveLead(leads []entity.Lead, id int64) []entity.Lead {
	out := leads[:0]
	for _, l := range leads {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}

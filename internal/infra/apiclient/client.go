// Package apiclient é o cliente HTTP da Entity API: é o que os formulários
// usam para criar, atualizar e excluir registros.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Prospects() ContactResource {
	return ContactResource{client: c, path: "/api/routes/prospects"}
}

func (c *Client) Clients() ContactResource {
	return ContactResource{client: c, path: "/api/routes/clients"}
}

func (c *Client) Leads() LeadResource {
	return LeadResource{client: c, path: "/api/routes/leads"}
}

// ContactResource atende prospects e clients, que compartilham o contrato.
type ContactResource struct {
	client *Client
	path   string
}

func (r ContactResource) List(ctx context.Context) ([]entity.Contact, error) {
	var records []entity.Contact
	err := r.client.do(ctx, http.MethodGet, r.path, nil, &records, http.StatusOK)
	return records, err
}

func (r ContactResource) Create(ctx context.Context, input usecase.ContactInput) (*entity.Contact, error) {
	var record entity.Contact
	err := r.client.do(ctx, http.MethodPost, r.path, input, &record, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r ContactResource) Update(ctx context.Context, input usecase.ContactInput) (*entity.Contact, error) {
	var record entity.Contact
	err := r.client.do(ctx, http.MethodPut, r.path, input, &record, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r ContactResource) Delete(ctx context.Context, id int64) error {
	body := map[string]int64{"id": id}
	return r.client.do(ctx, http.MethodDelete, r.path, body, nil, http.StatusNoContent)
}

type LeadResource struct {
	client *Client
	path   string
}

func (r LeadResource) List(ctx context.Context) ([]entity.Lead, error) {
	var leads []entity.Lead
	err := r.client.do(ctx, http.MethodGet, r.path, nil, &leads, http.StatusOK)
	return leads, err
}

func (r LeadResource) Create(ctx context.Context, input usecase.LeadInput) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.client.do(ctx, http.MethodPost, r.path, input, &lead, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r LeadResource) Update(ctx context.Context, input usecase.LeadInput) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.client.do(ctx, http.MethodPut, r.path, input, &lead, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r LeadResource) Delete(ctx context.Context, id int64) error {
	body := map[string]int64{"id": id}
	return r.client.do(ctx, http.MethodDelete, r.path, body, nil, http.StatusNoContent)
}

// do envia o request e, em erro HTTP, devolve o texto literal do servidor
// para que o formulário possa exibi-lo como veio.
func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}, wantStatus int) error {
	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erro ao marshal payload: %w", err)
		}
		body = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro no request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		msg, _ := io.ReadAll(resp.Body)
		text := strings.TrimSpace(string(msg))
		if text == "" {
			text = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return errors.New(text)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

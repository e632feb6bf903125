package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, from, salesInbox string) *EmailSender {
	return &EmailSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		From:       from,
		SalesInbox: salesInbox,
	}
}

// SendLeadAlert avisa a caixa de vendas que um lead novo entrou no funil.
func (s *EmailSender) SendLeadAlert(companyName string, recordID int64) error {
	data := LeadAlertData{
		CompanyName: companyName,
		RecordID:    recordID,
	}

	tmplPath := filepath.Join("templates", "lead_alert.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.SalesInbox)
	m.SetHeader("Subject", fmt.Sprintf("Novo lead: %s", companyName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

package entity

import (
	"time"
)

// Contact method values accepted by the forms.
const (
	ContactPhone = "Phone"
	ContactEmail = "Email"
)

// Status values for contact records.
const (
	StatusActive  = "Active"
	StatusPending = "Pending"
)

// Contact é o registro de contato usado por prospects e clients.
// O id e o createdAt são atribuídos pelo banco e nunca mudam.
type Contact struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Contact     string    `json:"contact"` // Phone, Email
	LastHistory string    `json:"lastHistory"`
	Status      string    `json:"status"` // Active, Pending
	CreatedAt   time.Time `json:"createdAt"`
}

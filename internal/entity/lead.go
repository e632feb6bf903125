package entity

import (
	"time"
)

// Lead é o registro orientado a eventos: empresa + cidade + próxima visita.
// NextDate guarda apenas a data, normalizada para meia-noite UTC.
type Lead struct {
	ID            int64      `json:"id"`
	CityName      string     `json:"cityName"`
	CompanyName   string     `json:"companyName"`
	Phone         string     `json:"phone,omitempty"`
	EventName     string     `json:"eventName,omitempty"`
	ContactPerson string     `json:"contactPerson,omitempty"`
	Email         string     `json:"email,omitempty"`
	NextDate      *time.Time `json:"nextDate,omitempty"`
	Observations  string     `json:"observations,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

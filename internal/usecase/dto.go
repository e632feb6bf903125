package usecase

// ContactInput é o corpo aceito pelos endpoints de prospects e clients.
// No PUT o ID é obrigatório; no POST é ignorado.
type ContactInput struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Contact     string `json:"contact"`
	LastHistory string `json:"lastHistory"`
	Status      string `json:"status"`
}

// LeadInput é o corpo aceito pelo endpoint de leads.
type LeadInput struct {
	ID            int64  `json:"id,omitempty"`
	CityName      string `json:"cityName"`
	CompanyName   string `json:"companyName"`
	Phone         string `json:"phone"`
	EventName     string `json:"eventName"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	NextDate      string `json:"nextDate"`
	Observations  string `json:"observations"`
}

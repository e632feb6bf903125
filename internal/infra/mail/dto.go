package mail

type LeadAlertData struct {
	CompanyName string
	RecordID    int64
}

type EmailSender struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	SalesInbox string
}

package mail

type LeadNotificationData struct {
	Name     string
	Email    string
	Company  string
	Phone    string
	SiyamRef string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

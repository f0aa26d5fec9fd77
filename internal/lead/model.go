package lead

// Lead is one contact-form submission heading for the spreadsheet webhook.
type Lead struct {
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Categories []string `json:"categories"`
	Quantity   string   `json:"quantity"`
	Message    string   `json:"message"`
	Privacy    bool     `json:"privacy"`
}

package news

type Item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	PubDate     string `json:"pubDate"`
	Source      string `json:"source"`
}

type Response struct {
	News        []Item `json:"news"`
	LastUpdated string `json:"lastUpdated"`
	Error       string `json:"error,omitempty"`
}

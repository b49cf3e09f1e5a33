package models

// NewsArticle es un artículo de noticias ya normalizado
type NewsArticle struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	URL         string   `json:"url"`
	Source      string   `json:"source"`
	ImageURL    string   `json:"image_url"`
	PublishedOn int64    `json:"published_on"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
}

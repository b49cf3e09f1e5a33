package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/zelcry/zelcry-api/internal/models"
)

var newsBaseURL = "https://min-api.cryptocompare.com/data/v2/news/"

// Caché breve de noticias para reducir llamadas a la API. Sólo las noticias
// se cachean; los precios del portafolio se consultan en vivo.
var newsCache = struct {
	sync.Mutex
	articles  []models.NewsArticle
	fetchedAt time.Time
}{}

const newsCacheTTL = 5 * time.Minute

// GetCryptoNews obtiene las noticias recientes de criptomonedas. El
// resultado se cachea durante unos minutos; ante cualquier falla se devuelve
// una lista vacía.
func GetCryptoNews(limit int) []models.NewsArticle {
	newsCache.Lock()
	defer newsCache.Unlock()

	if time.Since(newsCache.fetchedAt) < newsCacheTTL && newsCache.articles != nil {
		return limitArticles(newsCache.articles, limit)
	}

	params := url.Values{}
	params.Set("lang", "EN")
	if apiKey := os.Getenv("CRYPTOCOMPARE_API_KEY"); apiKey != "" {
		params.Set("api_key", apiKey)
	}

	body, err := fetchJSON(fmt.Sprintf("%s?%s", newsBaseURL, params.Encode()))
	if err != nil {
		log.Printf("Fallo al obtener noticias, se devuelve lista vacía: %v", err)
		return []models.NewsArticle{}
	}

	var raw struct {
		Data []struct {
			ID          string `json:"id"`
			Title       string `json:"title"`
			Body        string `json:"body"`
			URL         string `json:"url"`
			ImageURL    string `json:"imageurl"`
			PublishedOn int64  `json:"published_on"`
			Categories  string `json:"categories"`
			Tags        string `json:"tags"`
			SourceInfo  struct {
				Name string `json:"name"`
			} `json:"source_info"`
		} `json:"Data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		log.Printf("Error decodificando JSON de noticias: %v", err)
		return []models.NewsArticle{}
	}

	articles := make([]models.NewsArticle, 0, len(raw.Data))
	for _, item := range raw.Data {
		source := item.SourceInfo.Name
		if source == "" {
			source = "CryptoNews"
		}

		articles = append(articles, models.NewsArticle{
			ID:          item.ID,
			Title:       item.Title,
			Body:        item.Body,
			URL:         item.URL,
			Source:      source,
			ImageURL:    item.ImageURL,
			PublishedOn: item.PublishedOn,
			Categories:  strings.Split(item.Categories, "|"),
			Tags:        strings.Split(item.Tags, "|"),
		})
	}

	newsCache.articles = articles
	newsCache.fetchedAt = time.Now()

	return limitArticles(articles, limit)
}

// GetNewsByCategory filtra las noticias cacheadas por categoría
func GetNewsByCategory(category string, limit int) []models.NewsArticle {
	all := GetCryptoNews(0)

	filtered := []models.NewsArticle{}
	for _, article := range all {
		for _, c := range article.Categories {
			if strings.EqualFold(c, category) {
				filtered = append(filtered, article)
				break
			}
		}
	}

	return limitArticles(filtered, limit)
}

// SearchNews busca por palabra clave en título y cuerpo sobre las noticias cacheadas
func SearchNews(query string, limit int) []models.NewsArticle {
	all := GetCryptoNews(0)
	queryLower := strings.ToLower(query)

	filtered := []models.NewsArticle{}
	for _, article := range all {
		if strings.Contains(strings.ToLower(article.Title), queryLower) ||
			strings.Contains(strings.ToLower(article.Body), queryLower) {
			filtered = append(filtered, article)
		}
	}

	return limitArticles(filtered, limit)
}

func limitArticles(articles []models.NewsArticle, limit int) []models.NewsArticle {
	if limit <= 0 || limit >= len(articles) {
		return articles
	}
	return articles[:limit]
}

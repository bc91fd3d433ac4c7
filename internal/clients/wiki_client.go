package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// CityPage - сырые поля страницы города до нормализации.
// Координаты остаются в градусно-минутной записи, население - строкой.
type CityPage struct {
	Title      string
	Country    string
	Latitude   string
	Longitude  string
	Population string
}

type WikiClient interface {
	FetchCityPage(ctx context.Context, city string) (*CityPage, error)
}

type wikiClient struct {
	baseURL string
	client  *http.Client
}

func NewWikiClient(baseURL string) WikiClient {
	return &wikiClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

var populationRe = regexp.MustCompile(`\d[\d,]*`)

func (c *wikiClient) FetchCityPage(ctx context.Context, city string) (*CityPage, error) {
	pageURL := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(city))

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", "Gans-Data-Pipeline/1.0")
	req.Header.Set("Accept", "text/html")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Operation: "fetch city page", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	page := &CityPage{}

	page.Title = strings.TrimSpace(doc.Find(".firstHeading").First().Text())
	if page.Title == "" {
		return nil, &ShapeError{Source: "wiki", Field: "firstHeading"}
	}

	// первое поле инфобокса - страна
	page.Country = strings.TrimSpace(doc.Find(".infobox-data").First().Text())

	page.Latitude = strings.TrimSpace(doc.Find(".latitude").First().Text())
	page.Longitude = strings.TrimSpace(doc.Find(".longitude").First().Text())
	if page.Latitude == "" || page.Longitude == "" {
		return nil, &ShapeError{Source: "wiki", Field: "latitude/longitude"}
	}

	// Население: первое число в строке таблицы, следующей за заголовком
	// "Population". Поле опциональное - отсутствие не считается ошибкой.
	doc.Find("th.infobox-header").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.Contains(sel.Text(), "Population") {
			return true
		}
		sibling := sel.Closest("tr").Next()
		if match := populationRe.FindString(sibling.Text()); match != "" {
			page.Population = match
		}
		return false
	})

	return page, nil
}

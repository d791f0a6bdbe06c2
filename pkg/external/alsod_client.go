package external

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/alsftd-research/datasync/internal/domain"
)

var parenthetical = regexp.MustCompile(`\(.*?\)`)

// ALSoDClient scrapes the gene table published at alsod.ac.uk. The site
// has no API, so the client parses the HTML listing page directly. A
// circuit breaker guards against hammering the site when it is down.
type ALSoDClient struct {
	baseURL    string
	httpClient *http.Client
	rateLimit  *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	log        *logrus.Logger
}

// NewALSoDClient creates a new ALSoD scraper client
func NewALSoDClient(cfg *domain.GeneSourceConfig, logger *logrus.Logger) *ALSoDClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://alsod.ac.uk/"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	rateLimit := cfg.RateLimit
	if rateLimit == 0 {
		rateLimit = 1
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "alsod",
		Timeout: 2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return &ALSoDClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimit: rate.NewLimiter(rate.Limit(rateLimit), 1),
		breaker:   breaker,
		log:       logger,
	}
}

// ScrapeGeneTable fetches the listing page and extracts every gene row.
// Row cells pass through sanitization so quoted fragments and
// parenthetical asides never reach the dictionary.
func (c *ALSoDClient) ScrapeGeneTable(ctx context.Context) ([]domain.Gene, error) {
	if err := c.rateLimit.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.scrape(ctx)
	})
	if err != nil {
		return nil, err
	}

	genes := result.([]domain.Gene)
	c.log.WithField("genes", len(genes)).Info("ALSoD gene table scraped")
	return genes, nil
}

func (c *ALSoDClient) scrape(ctx context.Context) ([]domain.Gene, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating scrape request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching gene table: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.FetchError{URL: c.baseURL, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing gene table HTML: %w", err)
	}

	var genes []domain.Gene
	doc.Find("tr.clickable-row").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td.assetIDConfig")
		if cells.Length() < 4 {
			return
		}
		symbol := SanitizeCell(cells.Eq(1).Text())
		if symbol == "" {
			return
		}
		genes = append(genes, domain.Gene{
			Symbol:       symbol,
			Name:         SanitizeCell(cells.Eq(2).Text()),
			RiskCategory: domain.RiskCategory(SanitizeCell(cells.Eq(3).Text())),
		})
	})

	if len(genes) == 0 {
		return nil, fmt.Errorf("gene table %s: %w", c.baseURL, domain.ErrEmptyDataset)
	}

	return genes, nil
}

// SanitizeCell strips double quotes, removes parenthetical asides and
// collapses runs of whitespace to single spaces.
func SanitizeCell(text string) string {
	text = strings.ReplaceAll(text, `"`, "")
	text = parenthetical.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// Package scrape collects seed words from web pages for wordlist
// generation. It is an input provider only: failures surface as fewer
// (or zero) words, never as a failed batch, and the generation core
// just receives whatever set was gathered.
package scrape

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/getpassgen/passgen/pkg/wordgen"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/net/html"
)

const (
	requestTimeout  = 5 * time.Second
	taskTimeout     = 30 * time.Second
	maxLinksPerPage = 10
	defaultWorkers  = 4

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

var (
	wordPattern  = regexp.MustCompile(`\b[a-zA-Z0-9]{3,20}\b`)
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

type Scraper struct {
	client  *http.Client
	logger  hclog.Logger
	workers int
}

func New(workers int) *Scraper {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Scraper{
		client:  &http.Client{Timeout: requestTimeout},
		logger:  hclog.NewNullLogger(),
		workers: workers,
	}
}

// SetLogger sets the logger for scrape progress and failures.
func (s *Scraper) SetLogger(logger hclog.Logger) {
	s.logger = logger
}

// ScrapeAll fetches every URL through a bounded worker pool and merges
// the words found. Individual failures are logged and skipped.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, depth int) wordgen.Set {
	words := wordgen.NewSet()
	if len(urls) == 0 {
		return words
	}

	workers := s.workers
	if len(urls) < workers {
		workers = len(urls)
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	tasks := make(chan string)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pageURL := range tasks {
				taskCtx, cancel := context.WithTimeout(ctx, taskTimeout)
				found := s.ScrapeURL(taskCtx, pageURL, depth)
				cancel()

				mu.Lock()
				words.Merge(found)
				mu.Unlock()
			}
		}()
	}

	for _, u := range urls {
		tasks <- u
	}
	close(tasks)
	wg.Wait()

	return words
}

// ScrapeURL gathers words from a page, following same-host links up to
// the given depth. Errors yield an empty or partial set.
func (s *Scraper) ScrapeURL(ctx context.Context, pageURL string, depth int) wordgen.Set {
	words := wordgen.NewSet()
	visited := make(map[string]bool)
	s.scrapePage(ctx, pageURL, 0, depth, visited, words)
	return words
}

func (s *Scraper) scrapePage(ctx context.Context, pageURL string, currentDepth, depth int, visited map[string]bool, words wordgen.Set) {
	if currentDepth > depth || visited[pageURL] {
		return
	}
	visited[pageURL] = true

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		s.logger.Warn("bad url", "url", pageURL, "error", err)
		return
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("fetch failed", "url", pageURL, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("fetch failed", "url", pageURL, "status", resp.StatusCode)
		return
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		s.logger.Warn("parse failed", "url", pageURL, "error", err)
		return
	}

	var text strings.Builder
	var links []string
	collect(doc, &text, &links)

	page := text.String()
	extractWords(page, words)

	for _, email := range emailPattern.FindAllString(page, -1) {
		local, _, _ := strings.Cut(email, "@")
		words.Add(strings.ToLower(local))
	}

	s.logger.Debug("scraped page", "url", pageURL, "words", words.Len())

	if currentDepth >= depth {
		return
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return
	}
	followed := 0
	for _, link := range links {
		if followed >= maxLinksPerPage {
			break
		}
		if !strings.HasPrefix(link, "http") {
			continue
		}
		target, err := url.Parse(link)
		if err != nil || target.Host != base.Host {
			continue
		}
		followed++
		s.scrapePage(ctx, link, currentDepth+1, depth, visited, words)
	}
}

// collect walks the document gathering visible text, meta content and
// link targets. Script and style bodies are skipped.
func collect(n *html.Node, text *strings.Builder, links *[]string) {
	switch n.Type {
	case html.ElementNode:
		switch n.Data {
		case "script", "style":
			return
		case "meta":
			for _, attr := range n.Attr {
				if attr.Key == "content" && attr.Val != "" {
					text.WriteString(attr.Val)
					text.WriteByte(' ')
				}
			}
		case "a":
			for _, attr := range n.Attr {
				if attr.Key == "href" && attr.Val != "" {
					*links = append(*links, attr.Val)
				}
			}
		}
	case html.TextNode:
		text.WriteString(n.Data)
		text.WriteByte(' ')
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collect(child, text, links)
	}
}

func extractWords(text string, words wordgen.Set) {
	for _, w := range wordPattern.FindAllString(text, -1) {
		words.Add(strings.ToLower(w))
	}
}

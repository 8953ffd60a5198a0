package trending

import (
	"io"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"golang.org/x/net/html"
)

// Parse extracts repository records from the trending page markup. A page
// with no repository rows is treated as a structure change and rejected.
func Parse(r io.Reader) ([]*model.Repository, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, goerr.Wrap(types.ErrBadResponse, "failed to parse trending page HTML")
	}

	articles := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "article" && hasClass(n, "Box-row")
	})
	if len(articles) == 0 {
		return nil, goerr.Wrap(types.ErrBadResponse, "no repository rows found in trending page")
	}

	var repos []*model.Repository
	for _, article := range articles {
		repo := parseArticle(article)
		if repo == nil {
			// Skip rows we cannot make sense of instead of failing the page
			continue
		}
		repo.Rank = len(repos) + 1
		if err := repo.Validate(); err != nil {
			continue
		}
		repos = append(repos, repo)
	}

	if len(repos) == 0 {
		return nil, goerr.Wrap(types.ErrBadResponse, "trending page rows did not yield any repository")
	}
	return repos, nil
}

func parseArticle(article *html.Node) *model.Repository {
	h2 := find(article, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "h2"
	})
	if h2 == nil {
		return nil
	}
	link := find(h2, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "a" && attr(n, "href") != ""
	})
	if link == nil {
		return nil
	}

	fullName := strings.Trim(attr(link, "href"), "/")
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 {
		return nil
	}

	repo := &model.Repository{
		Owner:    parts[0],
		Name:     parts[1],
		FullName: fullName,
		URL:      "https://github.com/" + fullName,
	}

	if p := find(article, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "p"
	}); p != nil {
		repo.Description = strings.TrimSpace(textContent(p))
	}

	if lang := find(article, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "span" && attr(n, "itemprop") == "programmingLanguage"
	}); lang != nil {
		repo.Language = strings.TrimSpace(textContent(lang))
	}

	if stars := find(article, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "a" && strings.HasSuffix(attr(n, "href"), "/stargazers")
	}); stars != nil {
		repo.Stars = parseCount(textContent(stars))
	}

	if forks := find(article, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "a" && strings.HasSuffix(attr(n, "href"), "/forks")
	}); forks != nil {
		repo.Forks = parseCount(textContent(forks))
	}

	if period := find(article, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "span" && hasClass(n, "float-sm-right")
	}); period != nil {
		// Text like "1,234 stars today"
		fields := strings.Fields(textContent(period))
		if len(fields) > 0 {
			repo.PeriodStars = parseCount(fields[0])
		}
	}

	return repo
}

// parseCount converts listing counts like "1,234", "1.2k" or "3.4m" to an
// integer. Unparsable text yields 0.
func parseCount(s string) int {
	s = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		multiplier = 1000
		s = strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		multiplier = 1000000
		s = strings.TrimSuffix(s, "m")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return int(v * multiplier)
}

// DOM helpers

func find(root *html.Node, pred func(*html.Node) bool) *html.Node {
	if pred(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, pred); found != nil {
			return found
		}
	}
	return nil
}

func findAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var nodes []*html.Node
	if pred(root) {
		nodes = append(nodes, root)
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		nodes = append(nodes, findAll(c, pred)...)
	}
	return nodes
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

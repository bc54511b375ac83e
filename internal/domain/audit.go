package domain

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/net/html"

	m "navmend.dev/pkg/navmend/internal/model"
)

// ErrUnsafeTemplate is returned when a link table would double-prefix links.
var ErrUnsafeTemplate = errors.New("link table entries collide")

// auditDepth is the depth used to build prefixed forms when checking for
// collisions. Any positive depth yields the same verdict for "../" prefixes.
const auditDepth = 1

// AuditTemplate parses template and compares its anchors against links.
func AuditTemplate(template string, links LinkTable) (m.Audit, error) {
	hrefs, err := extractHrefs(template)
	if err != nil {
		return m.Audit{}, fmt.Errorf("parse template: %w", err)
	}

	audit := m.Audit{Links: hrefs}

	seen := make(map[string]bool, len(hrefs))
	for _, href := range hrefs {
		seen[href] = true

		if isRelativeLink(href) && !links.Contains(href) {
			audit.Uncovered = append(audit.Uncovered, href)
		}
	}

	for _, link := range links {
		if !seen[link] {
			audit.Unused = append(audit.Unused, link)
		}
	}

	audit.Collisions = findCollisions(links)

	return audit, nil
}

// ValidateLinks returns ErrUnsafeTemplate when links contains colliding entries.
func ValidateLinks(links LinkTable) error {
	collisions := findCollisions(links)
	if len(collisions) == 0 {
		return nil
	}

	descr := make([]string, 0, len(collisions))
	for _, c := range collisions {
		descr = append(descr, fmt.Sprintf("%q in %q", c.Entry, c.Within))
	}

	return fmt.Errorf("%w: %s", ErrUnsafeTemplate, strings.Join(descr, ", "))
}

func findCollisions(links LinkTable) []m.Collision {
	var collisions []m.Collision

	prefix := Prefix(auditDepth)

	for _, entry := range links {
		quoted := quoteHref(entry)

		for _, other := range links {
			if strings.Contains(quoteHref(prefix+other), quoted) {
				collisions = append(collisions, m.Collision{Entry: entry, Within: other})
			}
		}
	}

	sort.Slice(collisions, func(i, j int) bool {
		if collisions[i].Entry != collisions[j].Entry {
			return collisions[i].Entry < collisions[j].Entry
		}

		return collisions[i].Within < collisions[j].Within
	})

	return collisions
}

func extractHrefs(fragment string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}

	var (
		hrefs []string
		seen  = map[string]bool{}
	)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := getAttr(n, "href"); href != "" && !seen[href] {
				seen[href] = true
				hrefs = append(hrefs, href)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	return hrefs, nil
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}

	return ""
}

// isRelativeLink reports whether href is a document-relative path that would
// need a depth prefix.
func isRelativeLink(href string) bool {
	if strings.HasPrefix(href, "#") || strings.HasPrefix(href, "/") {
		return false
	}

	u, err := url.Parse(href)
	if err != nil {
		return false
	}

	return u.Scheme == "" && u.Host == ""
}

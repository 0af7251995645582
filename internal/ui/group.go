// Package ui shapes scan reports into view models and drives the warning
// state machine. Nothing here touches a document; the thin client applies
// these descriptions to the page.
package ui

import (
	"net/url"
	"strings"

	"dropscout/internal/model"
)

// Second-level labels of country-code registrations (shop.co.uk and the like)
// where the registrable domain keeps three labels instead of two.
var secondLevelLabels = map[string]bool{
	"co": true, "com": true, "org": true, "net": true,
	"gov": true, "ac": true, "edu": true,
}

// GroupByApexDomain groups similar articles by the registrable domain of
// their URL, preserving first-seen order of domains and of articles within a
// domain. Articles whose URL cannot be parsed are grouped under "unknown".
func GroupByApexDomain(articles []model.SimilarArticle) []model.ArticleGroup {
	var groups []model.ArticleGroup
	index := map[string]int{}

	for _, article := range articles {
		domain := apexDomain(article.URL)
		if i, ok := index[domain]; ok {
			groups[i].Articles = append(groups[i].Articles, article)
			continue
		}
		index[domain] = len(groups)
		groups = append(groups, model.ArticleGroup{
			Domain:   domain,
			Articles: []model.SimilarArticle{article},
		})
	}
	return groups
}

// apexDomain strips a hostname to its registrable domain: the last two
// labels, or three when the second-to-last is a co.xx/com.xx style
// second-level label under a two-letter country code.
func apexDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	host := strings.ToLower(u.Hostname())

	labels := strings.Split(host, ".")
	if len(labels) <= 2 {
		return host
	}

	tld := labels[len(labels)-1]
	second := labels[len(labels)-2]
	if len(tld) == 2 && secondLevelLabels[second] {
		return strings.Join(labels[len(labels)-3:], ".")
	}
	return strings.Join(labels[len(labels)-2:], ".")
}

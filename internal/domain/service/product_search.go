package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"laptek/internal/domain/entity"
)

const (
	MinSearchQueryLength = 2
	MaxSearchResults     = 5
)

// NormalizeSearchQuery trims the query and uppercases its first character only.
// The rest keeps its casing, so "macBOOK" becomes "MacBOOK" and will not match "MacBook".
// ok is false for queries too short to search; callers must not hit the database then.
func NormalizeSearchQuery(query string) (normalized string, ok bool) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSearchQueryLength {
		return "", false
	}

	first, size := utf8.DecodeRuneInString(query)
	return string(unicode.ToUpper(first)) + query[size:], true
}

// SearchByPrefix is the in-memory twin of the repository prefix query.
func SearchByPrefix(query string, products []*entity.Product) []*entity.Product {
	prefix, ok := NormalizeSearchQuery(query)
	if !ok {
		return []*entity.Product{}
	}

	matches := make([]*entity.Product, 0, MaxSearchResults)
	for _, product := range products {
		if strings.HasPrefix(product.Name, prefix) {
			matches = append(matches, product)
			if len(matches) == MaxSearchResults {
				break
			}
		}
	}
	return matches
}

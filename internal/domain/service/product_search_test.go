package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"laptek/internal/domain/entity"
)

func TestNormalizeSearchQuery(t *testing.T) {
	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"m", "", false},
		{"  m  ", "", false},
		{"", "", false},
		{"ma", "Ma", true},
		{"  mac ", "Mac", true},
		{"macBOOK", "MacBOOK", true},
		{"éc", "Éc", true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := NormalizeSearchQuery(tt.query)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchByPrefix(t *testing.T) {
	products := catalogFixture()

	assert.Empty(t, SearchByPrefix("m", products))
	assert.Equal(t, []string{"1"}, productIDs(SearchByPrefix("Mac", products)))
	assert.Equal(t, []string{"1"}, productIDs(SearchByPrefix("mac", products)))
	assert.Empty(t, SearchByPrefix("macBOOK", products))
	assert.Empty(t, SearchByPrefix("Pro", products))
}

func TestSearchByPrefix_CapsResults(t *testing.T) {
	var products []*entity.Product
	for i := 0; i < 8; i++ {
		products = append(products, &entity.Product{ID: fmt.Sprint(i), Name: fmt.Sprintf("Laptop %d", i)})
	}

	got := SearchByPrefix("laptop", products)

	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, productIDs(got))
}

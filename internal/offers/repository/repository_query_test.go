package repository

import (
	"strings"
	"testing"
)

func TestCreateOfferQueryReturnsAllColumns(t *testing.T) {
	query := strings.ToLower(createOfferQuery)

	for _, fragment := range []string{
		"insert into offers (name, value_prop, ideal_use_cases)",
		"values ($1, $2, $3)",
		"returning id, name, value_prop, ideal_use_cases, created_at",
	} {
		if !strings.Contains(query, fragment) {
			t.Fatalf("expected query fragment %q to be present", fragment)
		}
	}
}

func TestListOffersQueryIsOrdered(t *testing.T) {
	query := strings.ToLower(listOffersQuery)

	if !strings.Contains(query, "order by created_at desc, id") {
		t.Fatal("list offers query should have a stable order")
	}
}

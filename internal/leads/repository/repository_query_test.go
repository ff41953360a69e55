package repository

import (
	"strings"
	"testing"
)

func TestInsertLeadQuerySkipsDuplicates(t *testing.T) {
	query := strings.ToLower(insertLeadQuery)

	for _, fragment := range []string{
		"insert into leads (name, role, company, industry, location, linkedin_bio)",
		"values ($1, $2, $3, $4, $5, $6)",
		"on conflict do nothing",
	} {
		if !strings.Contains(query, fragment) {
			t.Fatalf("expected query fragment %q to be present", fragment)
		}
	}
}

func TestListLeadsQueryUsesStorageOrder(t *testing.T) {
	query := strings.ToLower(listLeadsQuery)

	if !strings.Contains(query, "order by seq") {
		t.Fatal("lead listing must follow insertion order")
	}
}

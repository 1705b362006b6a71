package keyword

import (
	"slices"
	"testing"
)

func TestTokens(t *testing.T) {
	got := Tokens("  iOS\tSwift \n #UIKit  ")
	want := []string{"ios", "swift", "#uikit"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if len(Tokens("   ")) != 0 {
		t.Fatalf("expected no tokens for blank query")
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		query  string
		fields []string
		expect bool
	}{
		{name: "all tokens present", query: "ios swift", fields: []string{"iOS Developer", "Swift,UIKit"}, expect: true},
		{name: "one token missing", query: "ios java", fields: []string{"iOS Developer", "Swift,UIKit"}, expect: false},
		{name: "hashtag without hash in data", query: "#swift", fields: []string{"Swift"}, expect: true},
		{name: "hashtag with hash in data", query: "#swift", fields: []string{"#Swift"}, expect: true},
		{name: "hashtag missing", query: "#kotlin", fields: []string{"Swift"}, expect: false},
		{name: "substring not whole word", query: "dev", fields: []string{"Developer"}, expect: true},
		{name: "blank query", query: " \t ", fields: []string{"anything"}, expect: true},
		{name: "empty fields", query: "go", fields: []string{"", ""}, expect: false},
		{name: "no fields and blank query", query: "", fields: nil, expect: true},
		{name: "lone hash", query: "#", fields: []string{"C#"}, expect: true},
		{name: "lone hash missing", query: "#", fields: []string{"Go"}, expect: false},
		{name: "tokens across fields", query: "acme remote", fields: []string{"Acme Corp", "Remote"}, expect: true},
		{name: "cyrillic", query: "разработчик", fields: []string{"Go Разработчик"}, expect: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Matches(tt.query, tt.fields...); got != tt.expect {
				t.Fatalf("Matches(%q, %q) = %v, want %v", tt.query, tt.fields, got, tt.expect)
			}
		})
	}
}

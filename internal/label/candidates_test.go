package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityGenerator(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "plain name", input: "bug", want: []string{"bug"}},
		{name: "name with separator", input: "type: bug", want: []string{"type: bug"}},
		{name: "empty name", input: "", want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IdentityGenerator{}.GenerateCandidateNames(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripPrefixGenerator(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "prefixed name keeps untrimmed suffix",
			input: "type: bug",
			want:  []string{"type: bug", " bug"},
		},
		{
			name:  "name without separator",
			input: "bug",
			want:  []string{"bug"},
		},
		{
			name:  "only first separator is cut",
			input: "a:b:c",
			want:  []string{"a:b:c", "b:c"},
		},
		{
			name:  "separator without suffix",
			input: "type:",
			want:  []string{"type:", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripPrefixGenerator{}.GenerateCandidateNames(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMappingsGenerator(t *testing.T) {
	aliases := map[string][]string{
		"bug":   {"defect", "issue:bug"},
		"empty": {},
	}
	g := NewMappingsGenerator(aliases)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "mapped name returns name plus aliases in order",
			input: "bug",
			want:  []string{"bug", "defect", "issue:bug"},
		},
		{
			name:  "unmapped name returns just the name",
			input: "enhancement",
			want:  []string{"enhancement"},
		},
		{
			name:  "empty alias list returns just the name",
			input: "empty",
			want:  []string{"empty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.GenerateCandidateNames(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMappingsGenerator_NilAliases(t *testing.T) {
	g := NewMappingsGenerator(nil)
	assert.Equal(t, []string{"bug"}, g.GenerateCandidateNames("bug"))
}

func TestChainGenerator(t *testing.T) {
	g := NewChainGenerator(
		StripPrefixGenerator{},
		NewMappingsGenerator(map[string][]string{"type: bug": {"defect"}}),
	)

	got := g.GenerateCandidateNames("type: bug")

	// Input name first, then every chained generator's output. Duplicates
	// are allowed, the consumer only checks membership.
	assert.Equal(t, []string{"type: bug", "type: bug", " bug", "type: bug", "defect"}, got)
	assert.Equal(t, "type: bug", got[0])
}

func TestChainGenerator_Empty(t *testing.T) {
	g := NewChainGenerator()
	assert.Equal(t, []string{"bug"}, g.GenerateCandidateNames("bug"))
}

package label

import "strings"

// CandidateNameGenerator produces the set of existing-label names that should
// be considered equivalent to a desired label's name. The first element of the
// result is always the input name itself; duplicates are permitted.
type CandidateNameGenerator interface {
	GenerateCandidateNames(name string) []string
}

// IdentityGenerator matches a desired label only by its exact name.
type IdentityGenerator struct{}

// GenerateCandidateNames returns the name itself.
func (IdentityGenerator) GenerateCandidateNames(name string) []string {
	return []string{name}
}

// StripPrefixGenerator additionally matches the part of the name after the
// first ":" separator, so a desired label "type: bug" also matches an existing
// label named " bug". The suffix is intentionally not trimmed; whether an
// existing label carries the leading space is up to the alias configuration.
type StripPrefixGenerator struct{}

// GenerateCandidateNames returns the name and, if it contains ":", the
// untrimmed suffix after the first separator.
func (StripPrefixGenerator) GenerateCandidateNames(name string) []string {
	if _, suffix, found := strings.Cut(name, ":"); found {
		return []string{name, suffix}
	}
	return []string{name}
}

// MappingsGenerator matches a desired label by its name and any configured
// aliases. Aliases are keyed by the canonical desired name.
type MappingsGenerator struct {
	Aliases map[string][]string
}

// NewMappingsGenerator creates a MappingsGenerator for the given alias map.
func NewMappingsGenerator(aliases map[string][]string) *MappingsGenerator {
	return &MappingsGenerator{Aliases: aliases}
}

// GenerateCandidateNames returns the name followed by its aliases, or just the
// name when no aliases are configured for it.
func (g *MappingsGenerator) GenerateCandidateNames(name string) []string {
	names := []string{name}
	return append(names, g.Aliases[name]...)
}

// ChainGenerator composes several generators; its output is the input name
// followed by every candidate produced by the chained generators, in order.
// Duplicates are not removed, consumers only test membership.
type ChainGenerator struct {
	generators []CandidateNameGenerator
}

// NewChainGenerator creates a ChainGenerator over the given generators.
func NewChainGenerator(generators ...CandidateNameGenerator) *ChainGenerator {
	return &ChainGenerator{generators: generators}
}

// GenerateCandidateNames concatenates the candidates of all chained generators.
func (g *ChainGenerator) GenerateCandidateNames(name string) []string {
	names := []string{name}
	for _, gen := range g.generators {
		names = append(names, gen.GenerateCandidateNames(name)...)
	}
	return names
}

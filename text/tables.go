// Package text - built-in English lookup tables.
//
// Character-level tables are ordered subst.Mappings: entry order is
// priority order wherever patterns overlap. Word-level tables are plain
// maps keyed by exact lowercase token (whole-token matching has no
// overlap problem) and can be overridden per Enricher.
package text

import "github.com/kallistra/enrich/subst"

// leetTable maps character groups to visually or aurally similar ones,
// roughly longest first so multi-character groups win their spans.
var leetTable = subst.Mapping{
	{Pattern: "anned", Replacement: "&"},
	{Pattern: "and", Replacement: "&"},
	{Pattern: "what", Replacement: "wat"},
	{Pattern: "are", Replacement: "r"},
	{Pattern: "ate", Replacement: "8"},
	{Pattern: "at", Replacement: "@"},
	{Pattern: "one", Replacement: "1"},
	{Pattern: "you", Replacement: "u"},
	{Pattern: "t", Replacement: "7"},
	{Pattern: "o", Replacement: "0"},
	{Pattern: "e", Replacement: "3"},
	{Pattern: "l", Replacement: "1"},
}

// contractionTable maps common word pairs to their contraction. Entries
// whose pattern contains another entry's pattern as a substring come
// first ("she is" before "he is"), keeping priorities unambiguous.
// expansionTable below is its exact inverse, so the two round-trip.
var contractionTable = subst.Mapping{
	{Pattern: "she is", Replacement: "she's"},
	{Pattern: "he is", Replacement: "he's"},
	{Pattern: "they are", Replacement: "they're"},
	{Pattern: "they have", Replacement: "they've"},
	{Pattern: "we are", Replacement: "we're"},
	{Pattern: "we have", Replacement: "we've"},
	{Pattern: "were not", Replacement: "weren't"},
	{Pattern: "you are", Replacement: "you're"},
	{Pattern: "you have", Replacement: "you've"},
	{Pattern: "you will", Replacement: "you'll"},
	{Pattern: "i am", Replacement: "i'm"},
	{Pattern: "i have", Replacement: "i've"},
	{Pattern: "i will", Replacement: "i'll"},
	{Pattern: "are not", Replacement: "aren't"},
	{Pattern: "cannot", Replacement: "can't"},
	{Pattern: "could not", Replacement: "couldn't"},
	{Pattern: "did not", Replacement: "didn't"},
	{Pattern: "does not", Replacement: "doesn't"},
	{Pattern: "do not", Replacement: "don't"},
	{Pattern: "had not", Replacement: "hadn't"},
	{Pattern: "has not", Replacement: "hasn't"},
	{Pattern: "have not", Replacement: "haven't"},
	{Pattern: "how is", Replacement: "how's"},
	{Pattern: "is not", Replacement: "isn't"},
	{Pattern: "it is", Replacement: "it's"},
	{Pattern: "let us", Replacement: "let's"},
	{Pattern: "should not", Replacement: "shouldn't"},
	{Pattern: "that is", Replacement: "that's"},
	{Pattern: "there is", Replacement: "there's"},
	{Pattern: "was not", Replacement: "wasn't"},
	{Pattern: "what is", Replacement: "what's"},
	{Pattern: "where is", Replacement: "where's"},
	{Pattern: "who is", Replacement: "who's"},
	{Pattern: "will not", Replacement: "won't"},
	{Pattern: "would not", Replacement: "wouldn't"},
}

// expansionTable expands contractions back into word pairs.
var expansionTable = contractionTable.Inverse()

// neighborTable maps lowercase letters to their QWERTY neighbors, for
// fat-thumb typos. Replacements are drawn uniformly from the string.
var neighborTable = map[rune]string{
	'a': "qwsz",
	'b': "vghn",
	'c': "xdfv",
	'd': "serfcx",
	'e': "wsdr",
	'f': "drtgvc",
	'g': "ftyhbv",
	'h': "gyujnb",
	'i': "ujko",
	'j': "huikmn",
	'k': "jiolm",
	'l': "kop",
	'm': "njk",
	'n': "bhjm",
	'o': "iklp",
	'p': "ol",
	'q': "wa",
	'r': "edft",
	's': "awedxz",
	't': "rfgy",
	'u': "yhji",
	'v': "cfgb",
	'w': "qase",
	'x': "zsdc",
	'y': "tghu",
	'z': "asx",
}

// articleTable removes determiners and possessives when mapped at
// word granularity; empty replacements delete the token.
var articleTable = subst.Mapping{
	{Pattern: "the", Replacement: ""},
	{Pattern: "a", Replacement: ""},
	{Pattern: "an", Replacement: ""},
	{Pattern: "these", Replacement: ""},
	{Pattern: "those", Replacement: ""},
	{Pattern: "his", Replacement: ""},
	{Pattern: "hers", Replacement: ""},
	{Pattern: "their", Replacement: ""},
}

// punctuationTable deletes ASCII punctuation, one entry per character.
var punctuationTable = func() subst.Mapping {
	const punct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	m := make(subst.Mapping, 0, len(punct))
	for _, r := range punct {
		m = append(m, subst.Pair{Pattern: string(r), Replacement: ""})
	}
	return m
}()

// Compact starter tables for the lexical transforms. Real applications
// override these with WithSynonyms and friends; the built-ins exist so
// the transforms work out of the box.
var (
	synonymTable = map[string][]string{
		"big":   {"large", "sizable"},
		"dog":   {"domestic dog", "canine"},
		"dogs":  {"domestic dogs", "canines"},
		"fast":  {"quick", "rapid"},
		"go":    {"depart", "travel"},
		"happy": {"glad", "content"},
		"house": {"dwelling", "home"},
		"sad":   {"unhappy", "sorrowful"},
		"small": {"little", "compact"},
		"smart": {"clever", "bright"},
	}

	hypernymTable = map[string][]string{
		"apple":   {"fruit"},
		"car":     {"vehicle"},
		"dog":     {"quadruped", "animal"},
		"dogs":    {"quadrupeds", "animals"},
		"hammer":  {"tool"},
		"heaven":  {"place"},
		"red":     {"color"},
		"rose":    {"flower"},
		"sparrow": {"bird"},
	}

	hyponymTable = map[string][]string{
		"animal": {"dog", "sparrow"},
		"bird":   {"sparrow", "magpie"},
		"color":  {"crimson", "teal"},
		"dog":    {"australian shepherd", "dachshund"},
		"dogs":   {"australian shepherds", "dachshunds"},
		"flower": {"rose", "tulip"},
		"tool":   {"hammer", "chisel"},
	}

	misspellingTable = map[string][]string{
		"because":    {"becuase", "becasue"},
		"definitely": {"definately"},
		"receive":    {"recieve"},
		"separate":   {"seperate"},
		"until":      {"untill"},
		"weird":      {"wierd"},
		"which":      {"wich"},
		"without":    {"withough"},
	}
)

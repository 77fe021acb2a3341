// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords ranks the terms of a text by TF-IDF weight.
//
// Each call fits a fresh vectorizer over the documents it is given. Over a
// one-document corpus every term has document frequency 1, the smoothed IDF
// is the constant 1, and the ranking reduces to raw term frequency.
package keywords

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// DefaultTopN is the number of keywords returned when none is configured.
const DefaultTopN = 5

// ErrEmptyVocabulary is returned when no document contains a countable term
// after stop-word removal.
var ErrEmptyVocabulary = errors.New("empty vocabulary; documents contain only stop words")

// Vectorizer turns documents into L2-normalized TF-IDF vectors.
type Vectorizer struct {
	// StopWords are dropped after lowercasing. Nil keeps every token.
	StopWords map[string]struct{}
}

// NewVectorizer returns a vectorizer that filters English stop words.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{StopWords: englishStopWords}
}

// Matrix holds the fitted vocabulary and one weight row per document.
// Vocabulary is sorted; Rows[d][i] is the weight of Vocabulary[i] in document d.
type Matrix struct {
	Vocabulary []string
	Rows       [][]float64
}

// Tokenize lowercases text and returns its tokens in order: maximal runs of
// letters, numbers and underscores at least two runes long, minus stop words.
func (v *Vectorizer) Tokenize(text string) []string {
	var tokens []string
	for _, tok := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	}) {
		if len([]rune(tok)) < 2 {
			continue
		}
		if _, stop := v.StopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// FitTransform learns the vocabulary of docs and returns their weights.
// Term weight is count × idf with idf = ln((1+n)/(1+df)) + 1, and each row
// is scaled to unit Euclidean length.
func (v *Vectorizer) FitTransform(docs []string) (*Matrix, error) {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for d, doc := range docs {
		counts[d] = make(map[string]int)
		for _, tok := range v.Tokenize(doc) {
			if counts[d][tok] == 0 {
				df[tok]++
			}
			counts[d][tok]++
		}
	}
	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, term := range vocab {
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	rows := make([][]float64, len(docs))
	for d := range docs {
		row := make([]float64, len(vocab))
		var norm float64
		for i, term := range vocab {
			w := float64(counts[d][term]) * idf[i]
			row[i] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for i := range row {
				row[i] /= norm
			}
		}
		rows[d] = row
	}

	return &Matrix{Vocabulary: vocab, Rows: rows}, nil
}

// Term is a vocabulary entry with its weight in one document.
type Term struct {
	Text   string
	Weight float64
}

// Top returns the topN highest-weighted terms of document d, highest first.
// Terms are stably sorted by ascending weight over the alphabetical
// vocabulary and the tail is read backwards, so equal weights come out in
// reverse alphabetical order. An unstable argsort, as numpy uses by default
// on longer rows, may order ties differently; only the weights are fixed.
func (m *Matrix) Top(d, topN int) []Term {
	row := m.Rows[d]
	idx := make([]int, len(row))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return row[idx[a]] < row[idx[b]] })

	if topN > len(idx) {
		topN = len(idx)
	}
	terms := make([]Term, 0, topN)
	for k := len(idx) - 1; k >= len(idx)-topN; k-- {
		i := idx[k]
		terms = append(terms, Term{Text: m.Vocabulary[i], Weight: row[i]})
	}
	return terms
}

// Score fits a single-document vectorizer over text and returns its topN terms.
func Score(text string, topN int) ([]Term, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	m, err := NewVectorizer().FitTransform([]string{text})
	if err != nil {
		return nil, err
	}
	return m.Top(0, topN), nil
}

// Extract returns the topN keywords of text joined with ", ".
func Extract(text string, topN int) (string, error) {
	terms, err := Score(text, topN)
	if err != nil {
		return "", err
	}
	words := make([]string, len(terms))
	for i, t := range terms {
		words[i] = t.Text
	}
	return strings.Join(words, ", "), nil
}

// Extractor binds a configured topN to Extract.
type Extractor struct {
	TopN int
}

// Extract returns the configured number of keywords for text.
func (e Extractor) Extract(text string) (string, error) {
	return Extract(text, e.TopN)
}

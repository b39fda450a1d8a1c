package recommend

import (
	"math"
	"strings"
	"unicode"
)

// English stop words excluded from the vocabulary. Matches the fixed list
// the description corpus is cleaned with; tokens are lowercased before the
// lookup so the list only needs lowercase entries.
var stopWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "all": {},
	"also": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {},
	"at": {}, "be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {}, "can": {},
	"could": {}, "did": {}, "do": {}, "does": {}, "doing": {}, "down": {},
	"during": {}, "each": {}, "few": {}, "for": {}, "from": {}, "further": {},
	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "him": {}, "his": {}, "how": {}, "i": {}, "if": {},
	"in": {}, "into": {}, "is": {}, "it": {}, "its": {}, "just": {}, "me": {},
	"more": {}, "most": {}, "my": {}, "no": {}, "nor": {}, "not": {}, "of": {},
	"off": {}, "on": {}, "once": {}, "only": {}, "or": {}, "other": {},
	"our": {}, "out": {}, "over": {}, "own": {}, "same": {}, "she": {},
	"should": {}, "so": {}, "some": {}, "such": {}, "than": {}, "that": {},
	"the": {}, "their": {}, "theirs": {}, "them": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "through": {}, "to": {},
	"too": {}, "under": {}, "until": {}, "up": {}, "very": {}, "was": {},
	"we": {}, "were": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"while": {}, "who": {}, "whom": {}, "why": {}, "will": {}, "with": {},
	"would": {}, "you": {}, "your": {}, "yours": {},
}

// tokenize lowercases the text and splits it on runs of non-alphanumeric
// characters, dropping stop words and empty tokens.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Vectorize turns N documents into an N x V TF-IDF weight matrix. The
// vocabulary is built from all documents combined, minus stop words, in
// first-seen order. Weight(i, t) = tf(i, t) * ln(N / df(t)). Every
// vocabulary term occurs in at least one document, so df is never zero.
// Empty documents yield all-zero rows.
func Vectorize(docs []string) [][]float64 {
	n := len(docs)
	tokenized := make([][]string, n)
	vocab := make(map[string]int)
	var terms []string
	docFreq := make(map[string]int)

	for i, doc := range docs {
		tokens := tokenize(doc)
		tokenized[i] = tokens

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(terms)
				terms = append(terms, tok)
			}
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				docFreq[tok]++
			}
		}
	}

	idf := make([]float64, len(terms))
	for j, term := range terms {
		idf[j] = math.Log(float64(n) / float64(docFreq[term]))
	}

	matrix := make([][]float64, n)
	for i, tokens := range tokenized {
		row := make([]float64, len(terms))
		for _, tok := range tokens {
			row[vocab[tok]] += 1
		}
		for j := range row {
			row[j] *= idf[j]
		}
		matrix[i] = row
	}
	return matrix
}

// Package chat generates assistant replies for stored user messages. Small
// talk is answered from fixed phrase lists; everything else is matched
// against the uploaded knowledge base by keyword overlap.
package chat

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"saas-platform-backend/internal/models"
)

var (
	greetings = []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}
	thanks    = []string{"thank you", "thanks", "appreciate"}
	goodbyes  = []string{"bye", "goodbye", "see you", "farewell"}

	// Shared domain keywords get a similarity boost over plain word overlap.
	importantKeywords = []string{"login", "password", "account", "payment", "refund", "cancel", "upgrade", "subscription"}
)

const (
	// Entries scoring at or below this are dropped from search results.
	minSimilarity = 0.05

	fallbackReply = "I understand you're asking about this topic, but I don't have specific information in my current knowledge base. Could you provide more details or rephrase your question?"
)

// SmallTalk returns the canned response for a conversational message, or
// false when the message is not small talk.
func SmallTalk(message string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(message))

	for _, greeting := range greetings {
		if strings.Contains(lower, greeting) {
			return "Hello! I'm your AI assistant. How can I help you today?", true
		}
	}
	for _, thank := range thanks {
		if strings.Contains(lower, thank) {
			return "You're welcome! Is there anything else I can help you with?", true
		}
	}
	for _, goodbye := range goodbyes {
		if strings.Contains(lower, goodbye) {
			return "Goodbye! Feel free to reach out if you need any assistance.", true
		}
	}
	return "", false
}

// normalize lowercases and strips punctuation so matching ignores case and
// symbols.
func normalize(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func wordSet(text string) map[string]struct{} {
	words := map[string]struct{}{}
	for _, w := range strings.Fields(text) {
		words[w] = struct{}{}
	}
	return words
}

// Similarity scores query against text in [0, 1]: Jaccard word overlap,
// boosted for substring containment and for shared domain keywords.
func Similarity(query, text string) float64 {
	normQuery := normalize(query)
	normText := normalize(text)

	queryWords := wordSet(normQuery)
	textWords := wordSet(normText)
	if len(queryWords) == 0 || len(textWords) == 0 {
		return 0
	}

	intersection := 0
	for w := range queryWords {
		if _, ok := textWords[w]; ok {
			intersection++
		}
	}
	union := len(queryWords) + len(textWords) - intersection
	score := float64(intersection) / float64(union)

	if strings.Contains(normText, normQuery) || strings.Contains(normQuery, normText) {
		score += 0.3
	}

	for _, keyword := range importantKeywords {
		if _, inQuery := queryWords[keyword]; !inQuery {
			continue
		}
		if _, inText := textWords[keyword]; inText {
			score += 0.1
		}
	}

	return math.Min(score, 1.0)
}

// Search scores every knowledge entry against the query and returns the topK
// best matches, highest similarity first.
func Search(entries []models.KnowledgeEntry, query string, topK int) []models.SearchResult {
	results := []models.SearchResult{}
	for _, entry := range entries {
		similarity := Similarity(query, entry.Input)
		if similarity <= minSimilarity {
			continue
		}
		results = append(results, models.SearchResult{
			Input:      entry.Input,
			Output:     entry.Output,
			Similarity: math.Round(similarity*1000) / 1000,
			Source:     entry.Source,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results
}

// Reply returns the assistant response for a user message: small talk first,
// then the best knowledge-base match, hedged according to how well it scored.
func Reply(message string, entries []models.KnowledgeEntry) string {
	if response, ok := SmallTalk(message); ok {
		return response
	}

	results := Search(entries, message, 1)
	if len(results) == 0 {
		return fallbackReply
	}

	best := results[0]
	switch {
	case best.Similarity > 0.7:
		return best.Output
	case best.Similarity > 0.4:
		return fmt.Sprintf("Based on similar queries, here's what I found:\n\n%s\n\nDoes this help with your question?", best.Output)
	default:
		return fmt.Sprintf("I found some related information that might be helpful:\n\n%s\n\nIf this doesn't fully answer your question, please let me know.", best.Output)
	}
}

package knowledge

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one piece of planning advice with its provenance.
type Entry struct {
	Content string `yaml:"content" json:"content"`
	Source  string `yaml:"source" json:"source"`
}

// Corpus is an immutable collection of entries searchable by token overlap.
type Corpus struct {
	entries []Entry
}

// NewCorpus builds a corpus from the given entries.
func NewCorpus(entries []Entry) *Corpus {
	return &Corpus{entries: entries}
}

// LoadFile reads a YAML corpus file: a list of {content, source} entries.
func LoadFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus file: %w", err)
	}
	return NewCorpus(entries), nil
}

// Default returns the built-in corpus of generic trip-planning advice.
func Default() *Corpus {
	return NewCorpus([]Entry{
		{
			Content: "Start a trip plan by fixing the travel dates and budget first, then pick 2-3 priority activities per day and leave slack for rest. Book accommodation near the activities you ranked highest.",
			Source:  "planning/structure",
		},
		{
			Content: "Check the weather forecast for the destination before finalizing the itinerary: outdoor sights go on the driest days, museums and markets fill the rainy ones.",
			Source:  "planning/weather",
		},
		{
			Content: "For city trips, group attractions by neighborhood to minimize transit time. A walking-distance cluster per half day beats criss-crossing the city.",
			Source:  "planning/routing",
		},
		{
			Content: "Dietary preferences shape the plan: research restaurants matching them near each day's cluster in advance rather than improvising on the spot.",
			Source:  "planning/food",
		},
		{
			Content: "Book flights 4-8 weeks ahead for the best fares and compare arrival times against hotel check-in windows to avoid dead hours with luggage.",
			Source:  "planning/flights",
		},
		{
			Content: "A packing list derived from the forecast and planned activities prevents both overpacking and gaps: one layer per 5 degrees below 20C, plus activity-specific gear.",
			Source:  "planning/packing",
		},
	})
}

// Search returns up to limit entries ranked by lexical overlap with the
// query. Entries sharing no token with the query are excluded; ties keep
// corpus order.
func (c *Corpus) Search(query string, limit int) []Entry {
	if limit <= 0 {
		return nil
	}
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	type scored struct {
		entry Entry
		score int
		index int
	}
	var hits []scored
	for i, e := range c.entries {
		content := strings.ToLower(e.Content)
		score := 0
		for _, tok := range tokens {
			if strings.Contains(content, tok) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{entry: e, score: score, index: i})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > limit {
		hits = hits[:limit]
	}
	results := make([]Entry, len(hits))
	for i, h := range hits {
		results[i] = h.entry
	}
	return results
}

// Len returns the number of entries in the corpus.
func (c *Corpus) Len() int { return len(c.entries) }

func tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".,!?'\"()")
		if len(f) > 2 { // skip stopword-sized tokens
			tokens = append(tokens, f)
		}
	}
	return tokens
}

package docs

import "fmt"

// Topic holds a single documentation article.
type Topic struct {
	Name    string // short slug used as CLI argument
	Title   string // human-readable title
	Summary string // one-line description for topic listing
	Content string // full article text (plain text, no ANSI)
}

// byName indexes topics for lookup; the topics slice keeps display order.
var byName = func() map[string]Topic {
	m := make(map[string]Topic, len(topics))
	for _, t := range topics {
		m[t.Name] = t
	}
	return m
}()

// All returns every topic in display order.
func All() []Topic {
	return topics
}

// Get looks up a topic by name. Returns an error with a hint if not found.
func Get(name string) (Topic, error) {
	t, ok := byName[name]
	if !ok {
		return Topic{}, fmt.Errorf("unknown topic %q — run 'scb docs' to list available topics", name)
	}
	return t, nil
}

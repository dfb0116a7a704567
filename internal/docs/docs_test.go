package docs

import (
	"strings"
	"testing"
)

func TestAll_TopicsWellFormed(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("expected at least one topic")
	}
	seen := make(map[string]bool)
	for _, topic := range all {
		if topic.Name == "" || topic.Title == "" || topic.Summary == "" || topic.Content == "" {
			t.Fatalf("topic %+v has an empty field", topic)
		}
		if seen[topic.Name] {
			t.Fatalf("duplicate topic name %q", topic.Name)
		}
		seen[topic.Name] = true
		if strings.Contains(topic.Content, "\033") {
			t.Fatalf("topic %q contains ANSI escapes", topic.Name)
		}
	}
}

func TestGet(t *testing.T) {
	topic, err := Get("format")
	if err != nil {
		t.Fatalf("Get(format) failed: %v", err)
	}
	if !strings.Contains(topic.Content, "[[ SCB ]]") {
		t.Fatal("format topic must document the sentinel token")
	}

	if _, err := Get("nope"); err == nil {
		t.Fatal("expected an error for an unknown topic")
	}
}

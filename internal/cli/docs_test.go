package cli

import (
	"encoding/json"
	"testing"
)

func TestDocsTopicsLoadsEmbeddedDocs(t *testing.T) {
	t.Parallel()

	topics, err := docsTopics()
	if err != nil {
		t.Fatalf("docsTopics() error = %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("expected embedded docs topics, got none")
	}

	for _, expected := range []string{"query-language", "examples", "configuration"} {
		if _, ok := topics[expected]; !ok {
			t.Fatalf("expected topic %q in %v", expected, topics)
		}
	}

	if title := topics["query-language"]; title != "Query language" {
		t.Fatalf("query-language title = %q, want %q", title, "Query language")
	}
}

func TestListDocsTopicsJSON(t *testing.T) {
	prevJSON := jsonOutput
	t.Cleanup(func() {
		jsonOutput = prevJSON
	})
	jsonOutput = true

	out := captureStdout(t, func() {
		err := listDocsTopics(map[string]string{
			"examples":       "Examples",
			"query-language": "Query language",
		})
		if err != nil {
			t.Fatalf("listDocsTopics() error = %v", err)
		}
	})

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Topics []struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"topics"`
		} `json:"data"`
		Meta *Meta `json:"meta"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if !resp.OK {
		t.Fatalf("expected ok=true; out=%s", out)
	}
	if len(resp.Data.Topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(resp.Data.Topics))
	}
	if resp.Data.Topics[0].ID != "examples" || resp.Data.Topics[1].ID != "query-language" {
		t.Fatalf("topics out of order: %+v", resp.Data.Topics)
	}
	if resp.Meta == nil || resp.Meta.Count != 2 {
		t.Fatalf("meta count = %+v, want 2", resp.Meta)
	}
}

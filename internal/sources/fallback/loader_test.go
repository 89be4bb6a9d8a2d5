package fallback

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hblboard/hblboard/internal/domain"
)

func TestLoadEmbeddedDataset(t *testing.T) {
	items, err := NewLoader("").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) == 0 {
		t.Fatal("Load() returned no items")
	}

	var haveWork, haveNotice bool
	courses := make(map[string]bool)
	for _, item := range items {
		switch item.Kind {
		case domain.KindWork:
			haveWork = true
		case domain.KindNotice:
			haveNotice = true
		}
		courses[item.CourseID] = true
	}

	if !haveWork || !haveNotice {
		t.Errorf("dataset kinds: work=%v notice=%v, want both", haveWork, haveNotice)
	}
	if len(courses) < 2 {
		t.Errorf("dataset spans %d courses, want several", len(courses))
	}
}

func TestLoadEmbeddedDatasetSurvivesTheFilter(t *testing.T) {
	// Degraded mode goes through the same keyword filter as live data, so
	// the dataset must contain matching items or the board renders empty.
	items, err := NewLoader("").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	relevant := domain.SelectRelevant(items, domain.TimeRange{})
	if len(relevant) == 0 {
		t.Error("no fallback item matches the keyword filter")
	}
	if len(relevant) == len(items) {
		t.Error("every fallback item matches the keyword; the filter is unobservable in degraded mode")
	}
}

func TestLoadFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	content := []byte(`items:
  - id: "x1"
    title: "Custom HBL drill"
    description: "from the override file"
    createdAt: "2025-05-01T09:00:00Z"
    courseTitle: "Custom"
    courseId: "custom1"
    kind: "work"
    link: "#"
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	items, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != "x1" {
		t.Errorf("Load() = %v, want the override file's single item", items)
	}
}

func TestLoadRejectsBrokenDatasets(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "empty dataset",
			content: "items: []\n",
		},
		{
			name: "duplicate ids",
			content: `items:
  - {id: "a", title: "t", createdAt: "2025-05-01T09:00:00Z", courseId: "c", courseTitle: "C", kind: "work", link: "#"}
  - {id: "a", title: "t", createdAt: "2025-05-01T09:00:00Z", courseId: "c", courseTitle: "C", kind: "work", link: "#"}
`,
		},
		{
			name: "unparsable createdAt",
			content: `items:
  - {id: "a", title: "t", createdAt: "whenever", courseId: "c", courseTitle: "C", kind: "work", link: "#"}
`,
		},
		{
			name: "unknown kind",
			content: `items:
  - {id: "a", title: "t", createdAt: "2025-05-01T09:00:00Z", courseId: "c", courseTitle: "C", kind: "homework", link: "#"}
`,
		},
		{
			name: "notice with a due date",
			content: `items:
  - {id: "a", title: "t", createdAt: "2025-05-01T09:00:00Z", dueDate: "2025-05-02T09:00:00Z", courseId: "c", courseTitle: "C", kind: "notice", link: "#"}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "items.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := NewLoader(path).Load(); err == nil {
				t.Error("Load() error = nil, want rejection")
			}
		})
	}
}

package domain

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", s, err)
	}
	return ts
}

func TestSelectRelevantKeyword(t *testing.T) {
	created := "2025-04-11T10:00:00Z"

	tests := []struct {
		name        string
		title       string
		description string
		want        bool
	}{
		{
			name:        "keyword in title",
			title:       "Math HBL Quiz",
			description: "none",
			want:        true,
		},
		{
			name:        "keyword in description only",
			title:       "Math Quiz",
			description: "no hbl mention",
			want:        true,
		},
		{
			name:        "keyword in neither field",
			title:       "Math Quiz",
			description: "standard quiz",
			want:        false,
		},
		{
			name:        "mixed case keyword",
			title:       "hBl worksheet",
			description: "",
			want:        true,
		},
		{
			name:        "keyword inside a word",
			title:       "Pre-HBLX briefing",
			description: "",
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []*Item{{
				ID:          "x",
				Title:       tt.title,
				Description: tt.description,
				CreatedAt:   mustTime(t, created),
				Kind:        KindWork,
			}}

			got := SelectRelevant(items, TimeRange{})
			if (len(got) == 1) != tt.want {
				t.Errorf("SelectRelevant() kept=%v, want %v", len(got) == 1, tt.want)
			}
		})
	}
}

func TestSelectRelevantRange(t *testing.T) {
	window := TimeRange{
		From: mustTime(t, "2025-04-10T00:00:00Z"),
		To:   mustTime(t, "2025-04-12T00:00:00Z"),
	}

	tests := []struct {
		name      string
		createdAt string
		window    TimeRange
		want      bool
	}{
		{
			name:      "inside window",
			createdAt: "2025-04-11T10:00:00Z",
			window:    window,
			want:      true,
		},
		{
			name:      "before window",
			createdAt: "2025-04-09T23:59:59Z",
			window:    window,
			want:      false,
		},
		{
			name:      "after window",
			createdAt: "2025-04-12T00:00:01Z",
			window:    window,
			want:      false,
		},
		{
			name:      "exactly at lower bound is inclusive",
			createdAt: "2025-04-10T00:00:00Z",
			window:    window,
			want:      true,
		},
		{
			name:      "exactly at upper bound is inclusive",
			createdAt: "2025-04-12T00:00:00Z",
			window:    window,
			want:      true,
		},
		{
			name:      "unbounded window excludes nothing",
			createdAt: "2020-01-01T00:00:00Z",
			window:    TimeRange{},
			want:      true,
		},
		{
			name:      "missing endpoint disables the range filter",
			createdAt: "2020-01-01T00:00:00Z",
			window:    TimeRange{From: mustTime(t, "2025-04-10T00:00:00Z")},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []*Item{{
				ID:        "x",
				Title:     "HBL task",
				CreatedAt: mustTime(t, tt.createdAt),
				Kind:      KindWork,
			}}

			got := SelectRelevant(items, tt.window)
			if (len(got) == 1) != tt.want {
				t.Errorf("SelectRelevant() kept=%v, want %v", len(got) == 1, tt.want)
			}
		})
	}
}

func TestSelectRelevantRangeBeatsKeyword(t *testing.T) {
	// A matching keyword must not rescue an item outside the window.
	items := []*Item{{
		ID:        "x",
		Title:     "Science HBL experiment",
		CreatedAt: mustTime(t, "2025-03-01T10:00:00Z"),
		Kind:      KindWork,
	}}

	window := TimeRange{
		From: mustTime(t, "2025-04-10T00:00:00Z"),
		To:   mustTime(t, "2025-04-12T00:00:00Z"),
	}

	if got := SelectRelevant(items, window); len(got) != 0 {
		t.Errorf("SelectRelevant() kept %d items, want 0", len(got))
	}
}

func TestSelectRelevantIdempotent(t *testing.T) {
	items := []*Item{
		{ID: "1", Title: "Math HBL Quiz", CreatedAt: mustTime(t, "2025-04-11T10:00:00Z"), Kind: KindWork},
		{ID: "2", Title: "Field trip", Description: "bring lunch", CreatedAt: mustTime(t, "2025-04-11T11:00:00Z"), Kind: KindNotice},
		{ID: "3", Title: "HBL briefing", CreatedAt: mustTime(t, "2025-04-01T09:00:00Z"), Kind: KindNotice},
	}

	window := TimeRange{
		From: mustTime(t, "2025-04-10T00:00:00Z"),
		To:   mustTime(t, "2025-04-12T00:00:00Z"),
	}

	once := SelectRelevant(items, window)
	twice := SelectRelevant(once, window)

	if len(once) != 1 || once[0].ID != "1" {
		t.Fatalf("SelectRelevant() = %v items, want exactly item 1", len(once))
	}
	if len(twice) != len(once) {
		t.Errorf("second application changed the result: %d != %d", len(twice), len(once))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("second application reordered or replaced items at %d", i)
		}
	}
}

func TestNarrow(t *testing.T) {
	items := []*Item{
		{ID: "1", Title: "Math HBL Quiz", Description: "algebra", CourseTitle: "Mathematics", Kind: KindWork},
		{ID: "2", Title: "HBL schedule change", Description: "sessions start later", CourseTitle: "School Admin", Kind: KindNotice},
		{ID: "3", Title: "Science HBL", Description: "enzyme experiment", CourseTitle: "Science", Kind: KindWork},
	}

	tests := []struct {
		name    string
		query   string
		kind    Kind
		wantIDs []string
	}{
		{
			name:    "no query and all kinds keeps everything",
			query:   "",
			kind:    KindAll,
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "query matches course title",
			query:   "mathematics",
			kind:    KindAll,
			wantIDs: []string{"1"},
		},
		{
			name:    "query matches description",
			query:   "ENZYME",
			kind:    KindAll,
			wantIDs: []string{"3"},
		},
		{
			name:    "kind narrows to notices",
			query:   "",
			kind:    KindNotice,
			wantIDs: []string{"2"},
		},
		{
			name:    "query and kind are ANDed",
			query:   "hbl",
			kind:    KindWork,
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "no match",
			query:   "geography",
			kind:    KindAll,
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Narrow(items, tt.query, tt.kind)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Narrow() = %d items, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Narrow()[%d].ID = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestCourses(t *testing.T) {
	items := []*Item{
		{ID: "1", CourseID: "math101", CourseTitle: "Mathematics"},
		{ID: "2", CourseID: "sci102", CourseTitle: "Science"},
		{ID: "3", CourseID: "math101", CourseTitle: "Mathematics"},
	}

	courses := Courses(items)
	if len(courses) != 2 {
		t.Fatalf("Courses() = %d courses, want 2", len(courses))
	}
	if courses[0].ID != "math101" || courses[1].ID != "sci102" {
		t.Errorf("Courses() order = %v, want first-seen order", courses)
	}
}

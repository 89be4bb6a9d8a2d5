package classroom

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientSendsBearerCredential(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"courses":[{"id":"math101","name":"Mathematics"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	courses, err := client.ListCourses(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if len(courses) != 1 || courses[0].ID != "math101" {
		t.Errorf("ListCourses() = %v, want one course math101", courses)
	}
}

func TestClientNotFoundIsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	_, err := client.ListCourseWork(context.Background(), "tok", "math101")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ListCourseWork() error = %v, want ErrNotFound", err)
	}

	_, err = client.ListAnnouncements(context.Background(), "tok", "math101")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ListAnnouncements() error = %v, want ErrNotFound", err)
	}
}

func TestClientOtherStatusesAreHardFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	_, err := client.ListCourses(context.Background(), "expired")
	if err == nil {
		t.Fatal("ListCourses() error = nil, want failure on 401")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("ListCourses() error = ErrNotFound, want a distinct hard failure")
	}
}

func TestClientEmptyBodyCollections(t *testing.T) {
	// The API omits the collection key entirely when a course has no
	// coursework; that must decode as zero records, not an error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	work, err := client.ListCourseWork(context.Background(), "tok", "math101")
	if err != nil {
		t.Fatalf("ListCourseWork() error = %v", err)
	}
	if len(work) != 0 {
		t.Errorf("ListCourseWork() = %d records, want 0", len(work))
	}
}

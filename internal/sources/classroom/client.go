package classroom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hblboard/hblboard/internal/domain"
	"github.com/hblboard/hblboard/internal/utils"
)

// ErrNotFound signals a 404 from a per-course sub-resource. Callers treat it
// as "zero items": an empty sub-resource is a normal state, not a failure.
var ErrNotFound = errors.New("classroom: not found")

// Client is a read-only, bearer-authenticated client for the classroom API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client against baseURL (no trailing slash needed).
// timeout applies per request as a hardening measure; a timed-out call is
// indistinguishable from any other transport failure to callers.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// ListCourses enumerates the authenticated user's active courses.
func (c *Client) ListCourses(ctx context.Context, credential string) ([]domain.Course, error) {
	var body coursesResponse
	if err := c.get(ctx, credential, "/courses?courseStates=ACTIVE", &body); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]domain.Course, 0, len(body.Courses))
	for _, course := range body.Courses {
		courses = append(courses, domain.Course{ID: course.ID, Name: course.Name})
	}
	return courses, nil
}

// ListCourseWork fetches the coursework collection for one course.
// Returns ErrNotFound on 404.
func (c *Client) ListCourseWork(ctx context.Context, credential, courseID string) ([]courseWorkJSON, error) {
	var body courseWorkResponse
	path := "/courses/" + url.PathEscape(courseID) + "/courseWork"
	if err := c.get(ctx, credential, path, &body); err != nil {
		return nil, err
	}
	return body.CourseWork, nil
}

// ListAnnouncements fetches the announcements collection for one course.
// Returns ErrNotFound on 404.
func (c *Client) ListAnnouncements(ctx context.Context, credential, courseID string) ([]announcementJSON, error) {
	var body announcementsResponse
	path := "/courses/" + url.PathEscape(courseID) + "/announcements"
	if err := c.get(ctx, credential, path, &body); err != nil {
		return nil, err
	}
	return body.Announcements, nil
}

// get performs one authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, credential, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer utils.Close(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

package classroom

import (
	"time"

	"github.com/hblboard/hblboard/internal/domain"
)

// noticeTitleLimit caps the synthesized title of a notice.
const noticeTitleLimit = 50

// Mapper normalizes classroom wire records into domain items.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapCourseWork converts one course's coursework into items. Records whose
// creation timestamp does not parse are dropped here so every emitted item
// carries a valid CreatedAt.
func (m *Mapper) MapCourseWork(course domain.Course, work []courseWorkJSON) []*domain.Item {
	items := make([]*domain.Item, 0, len(work))
	for _, w := range work {
		createdAt, err := time.Parse(time.RFC3339, w.CreationTime)
		if err != nil {
			continue
		}

		items = append(items, &domain.Item{
			ID:          w.ID,
			Title:       w.Title,
			Description: w.Description,
			DueDate:     mapDueDate(w.DueDate),
			CreatedAt:   createdAt,
			CourseTitle: course.Name,
			CourseID:    course.ID,
			Kind:        domain.KindWork,
			Link:        w.AlternateLink,
		})
	}
	return items
}

// MapAnnouncements converts one course's announcements into items. The title
// is the leading slice of the text, marked with "..." when truncated.
func (m *Mapper) MapAnnouncements(course domain.Course, announcements []announcementJSON) []*domain.Item {
	items := make([]*domain.Item, 0, len(announcements))
	for _, a := range announcements {
		createdAt, err := time.Parse(time.RFC3339, a.CreationTime)
		if err != nil {
			continue
		}

		items = append(items, &domain.Item{
			ID:          a.ID,
			Title:       noticeTitle(a.Text),
			Description: a.Text,
			CreatedAt:   createdAt,
			CourseTitle: course.Name,
			CourseID:    course.ID,
			Kind:        domain.KindNotice,
			Link:        a.AlternateLink,
		})
	}
	return items
}

// mapDueDate builds a calendar date from the API's {year, month, day}
// triple. The triple uses 1-based months, which is also what time.Month
// expects, so {2025, 4, 13} must come out as April 13, 2025.
func mapDueDate(d *dueDateJSON) *time.Time {
	if d == nil {
		return nil
	}
	due := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return &due
}

func noticeTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= noticeTitleLimit {
		return text
	}
	return string(runes[:noticeTitleLimit]) + "..."
}

package domain

import "time"

// Kind discriminates the two classroom record types an Item can originate
// from. It drives badge rendering downstream; filtering never looks at it
// except through the display-layer kind selector.
type Kind string

const (
	// KindWork is a gradable task sourced from a course's coursework
	// sub-resource. Work items may carry a due date.
	KindWork Kind = "work"

	// KindNotice is a free-text announcement. Notices never carry a due date;
	// their title is synthesized from the announcement text.
	KindNotice Kind = "notice"

	// KindAll is the sentinel accepted by the display-layer filter to
	// disable the kind predicate. It is never set on an Item.
	KindAll Kind = "all"
)

// Item is the normalized unit representing either a work item or a notice.
//
// Items are immutable value objects: created once per fetch cycle from the
// classroom API (or the fallback dataset), never mutated, and replaced
// wholesale by the next cycle. IDs are unique within one cycle's output.
type Item struct {
	// ID is opaque and scoped to the origin collection.
	ID string `json:"id"`

	// Title is the short display string. For notices it is the first 50
	// characters of the announcement text, with "..." appended when the
	// text was longer.
	Title string `json:"title"`

	// Description is the full free-text body.
	Description string `json:"description"`

	// DueDate is present only for work items.
	DueDate *time.Time `json:"dueDate,omitempty"`

	// CreatedAt is the creation timestamp, the sort and filter key.
	// Parsed at the normalization boundary, so it is always valid here.
	CreatedAt time.Time `json:"createdAt"`

	// CourseTitle and CourseID are denormalized from the owning course at
	// fetch time.
	CourseTitle string `json:"courseTitle"`
	CourseID    string `json:"courseId"`

	Kind Kind `json:"kind"`

	// Link is an external deep-link URL, passed through untouched.
	Link string `json:"link"`
}

// Course is the transient, fetch-scoped course record. It exists only to
// resolve CourseTitle/CourseID on items and is not retained after a cycle.
type Course struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

package classroom

// Wire shapes for the classroom REST API. Field sets are trimmed to what the
// board consumes; unknown fields are ignored by the decoder.

// coursesResponse is the body of GET /courses?courseStates=ACTIVE.
type coursesResponse struct {
	Courses []courseJSON `json:"courses"`
}

type courseJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// courseWorkResponse is the body of GET /courses/{id}/courseWork.
type courseWorkResponse struct {
	CourseWork []courseWorkJSON `json:"courseWork"`
}

type courseWorkJSON struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	DueDate       *dueDateJSON `json:"dueDate,omitempty"`
	CreationTime  string       `json:"creationTime"`
	AlternateLink string       `json:"alternateLink"`
}

// dueDateJSON is the calendar triple the API uses for due dates.
// Month is 1-based (1 = January).
type dueDateJSON struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// announcementsResponse is the body of GET /courses/{id}/announcements.
type announcementsResponse struct {
	Announcements []announcementJSON `json:"announcements"`
}

type announcementJSON struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	CreationTime  string `json:"creationTime"`
	AlternateLink string `json:"alternateLink"`
}

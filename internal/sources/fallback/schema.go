package fallback

// datasetConfig is the top-level structure of the fallback dataset file.
type datasetConfig struct {
	Items []itemProps `yaml:"items"`
}

// itemProps mirrors one normalized item. Timestamps stay strings in the
// file and are parsed by the mapper so a broken dataset fails loudly at
// startup instead of producing items with invalid keys.
type itemProps struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	DueDate     string `yaml:"dueDate,omitempty"`
	CreatedAt   string `yaml:"createdAt"`
	CourseTitle string `yaml:"courseTitle"`
	CourseID    string `yaml:"courseId"`
	Kind        string `yaml:"kind"`
	Link        string `yaml:"link"`
}

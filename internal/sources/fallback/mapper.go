package fallback

import (
	"fmt"
	"time"

	"github.com/hblboard/hblboard/internal/domain"
)

// mapItems converts the parsed dataset into domain items, enforcing the
// same invariants live data gets at the normalization boundary: unique IDs,
// parseable creation timestamps, valid kinds, due dates only on work items.
func mapItems(config datasetConfig) ([]*domain.Item, error) {
	if len(config.Items) == 0 {
		return nil, fmt.Errorf("dataset contains no items")
	}

	seen := make(map[string]bool, len(config.Items))
	items := make([]*domain.Item, 0, len(config.Items))

	for i, props := range config.Items {
		if props.ID == "" {
			return nil, fmt.Errorf("item %d has no id", i)
		}
		if seen[props.ID] {
			return nil, fmt.Errorf("duplicate item id %q", props.ID)
		}
		seen[props.ID] = true

		kind := domain.Kind(props.Kind)
		if kind != domain.KindWork && kind != domain.KindNotice {
			return nil, fmt.Errorf("item %q has unknown kind %q", props.ID, props.Kind)
		}

		createdAt, err := time.Parse(time.RFC3339, props.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("item %q has unparsable createdAt: %w", props.ID, err)
		}

		var dueDate *time.Time
		if props.DueDate != "" {
			if kind != domain.KindWork {
				return nil, fmt.Errorf("item %q is a notice but carries a due date", props.ID)
			}
			due, err := time.Parse(time.RFC3339, props.DueDate)
			if err != nil {
				return nil, fmt.Errorf("item %q has unparsable dueDate: %w", props.ID, err)
			}
			dueDate = &due
		}

		items = append(items, &domain.Item{
			ID:          props.ID,
			Title:       props.Title,
			Description: props.Description,
			DueDate:     dueDate,
			CreatedAt:   createdAt,
			CourseTitle: props.CourseTitle,
			CourseID:    props.CourseID,
			Kind:        kind,
			Link:        props.Link,
		})
	}

	return items, nil
}

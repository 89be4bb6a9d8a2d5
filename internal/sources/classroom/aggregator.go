package classroom

import (
	"context"
	"errors"

	"github.com/hblboard/hblboard/internal/domain"
	"github.com/hblboard/hblboard/internal/logger"
)

// Aggregator turns the paginated, heterogeneous classroom API into one flat
// item collection, degrading to a local fallback dataset whenever live
// retrieval is impossible. It never returns an error: the board must always
// have something to render.
type Aggregator struct {
	client   *Client
	fallback []*domain.Item
	logger   logger.Logger
}

// NewAggregator creates an aggregator. fallback is the fixed dataset served
// when there is no credential or the whole cycle fails.
func NewAggregator(client *Client, fallback []*domain.Item, log logger.Logger) *Aggregator {
	return &Aggregator{
		client:   client,
		fallback: fallback,
		logger:   log,
	}
}

// FetchItems runs one aggregation cycle. The returned bool reports whether
// the collection is live API data (true) or the fallback dataset (false).
//
// Output order is course-enumeration order, and within a course work items
// precede notices. No re-sorting by time happens at this layer.
func (a *Aggregator) FetchItems(ctx context.Context, credential string) ([]*domain.Item, bool) {
	if credential == "" {
		a.logger.Debug("no credential, serving fallback dataset")
		return a.fallback, false
	}

	courses, err := a.client.ListCourses(ctx, credential)
	if err != nil {
		// Covers expired credentials, transport errors and non-2xx
		// statuses alike: the cycle is failed wholesale and the board
		// degrades to the fallback dataset instead of erroring out.
		a.logger.Warn("course enumeration failed, serving fallback dataset",
			logger.Error(err))
		return a.fallback, false
	}

	mapper := NewMapper()
	var items []*domain.Item

	for _, course := range courses {
		courseItems, err := a.fetchCourse(ctx, credential, course, mapper)
		if err != nil {
			// One course failing must not abort the cycle; its
			// contribution is dropped and the loop continues.
			a.logger.Warn("skipping course after fetch failure",
				logger.String("course_id", course.ID),
				logger.String("course", course.Name),
				logger.Error(err))
			continue
		}
		items = append(items, courseItems...)
	}

	a.logger.Info("aggregated classroom items",
		logger.Int("courses", len(courses)),
		logger.Int("items", len(items)))

	return items, true
}

// fetchCourse fetches both sub-resources for one course, work first. A 404
// on either one means that sub-resource is simply empty; any other failure
// fails the whole course.
func (a *Aggregator) fetchCourse(ctx context.Context, credential string, course domain.Course, mapper *Mapper) ([]*domain.Item, error) {
	work, err := a.client.ListCourseWork(ctx, credential, course.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	announcements, err := a.client.ListAnnouncements(ctx, credential, course.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	items := mapper.MapCourseWork(course, work)
	items = append(items, mapper.MapAnnouncements(course, announcements)...)
	return items, nil
}

package course

import (
	"github.com/google/uuid"

	"github.com/trezcool/learnhub/core"
)

// StoreKey is the persisted collection name.
const StoreKey = "lms_courses_v2"

var (
	// errors
	ErrNotFound = core.NewNotFoundError("course not found")
)

type Service struct {
	store core.Store
	log   core.Logger
}

func NewService(store core.Store, log core.Logger) *Service {
	return &Service{store: store, log: log}
}

func (svc *Service) QueryAll() ([]Course, error) {
	var courses []Course
	if err := svc.store.Load(StoreKey, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (svc *Service) Get(id string) (Course, error) {
	courses, err := svc.QueryAll()
	if err != nil {
		return Course{}, err
	}
	for _, crs := range courses {
		if crs.ID == id {
			return crs, nil
		}
	}
	return Course{}, ErrNotFound
}

// Create persists a new Course with a fresh id and empty content.
func (svc *Service) Create(nc NewCourse) (Course, error) {
	if err := nc.Validate(); err != nil {
		return Course{}, err
	}

	courses, err := svc.QueryAll()
	if err != nil {
		return Course{}, err
	}
	crs := Course{
		ID:           uuid.New().String(),
		Title:        nc.Title,
		Description:  nc.Description,
		Category:     nc.Category,
		InstructorID: nc.InstructorID,
		Content:      []ContentItem{},
	}
	courses = append(courses, crs)
	if err := svc.store.Save(StoreKey, courses); err != nil {
		return Course{}, err
	}
	return crs, nil
}

// Delete removes the Course with matching id. A missing id is logged, not
// fatal. Enrollments, submissions and feedback referencing the course are
// left in place; consumers filter them at read time.
func (svc *Service) Delete(id string) error {
	courses, err := svc.QueryAll()
	if err != nil {
		return err
	}
	kept := make([]Course, 0, len(courses))
	for _, crs := range courses {
		if crs.ID != id {
			kept = append(kept, crs)
		}
	}
	if len(kept) == len(courses) && svc.log != nil {
		svc.log.Warn("course not found for deletion", id)
	}
	return svc.store.Save(StoreKey, kept)
}

// AddContent appends a new ContentItem to the course's content sequence.
func (svc *Service) AddContent(courseID string, nci NewContentItem) (ContentItem, error) {
	if err := nci.Validate(); err != nil {
		return ContentItem{}, err
	}

	courses, err := svc.QueryAll()
	if err != nil {
		return ContentItem{}, err
	}
	for i, crs := range courses {
		if crs.ID != courseID {
			continue
		}
		item := ContentItem{
			ID:         uuid.New().String(),
			Title:      nci.Title,
			Type:       nci.Type,
			Video:      nci.Video,
			Text:       nci.Text,
			Assignment: nci.Assignment,
			PDF:        nci.PDF,
			Quiz:       nci.Quiz,
		}
		if courses[i].Content == nil {
			courses[i].Content = []ContentItem{}
		}
		courses[i].Content = append(courses[i].Content, item)
		if err := svc.store.Save(StoreKey, courses); err != nil {
			return ContentItem{}, err
		}
		return item, nil
	}
	return ContentItem{}, ErrNotFound
}

// DeleteContent removes an item from the course's content sequence; a missing
// course or item is a no-op. Completed-item and submission records referencing
// the item become dangling and are tolerated by their consumers.
func (svc *Service) DeleteContent(courseID, itemID string) error {
	courses, err := svc.QueryAll()
	if err != nil {
		return err
	}
	for i, crs := range courses {
		if crs.ID != courseID {
			continue
		}
		kept := make([]ContentItem, 0, len(crs.Content))
		for _, item := range crs.Content {
			if item.ID != itemID {
				kept = append(kept, item)
			}
		}
		courses[i].Content = kept
	}
	return svc.store.Save(StoreKey, courses)
}

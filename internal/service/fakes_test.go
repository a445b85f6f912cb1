package service

import (
	"fmt"
	"net/http"

	"github.com/treeclass/gallery/backend/internal/infrastructure"
	"github.com/treeclass/gallery/backend/internal/model"
)

// fakeStore keeps the three tables in memory and applies the same unique
// index on (name, species, student_id) that cmd/schema installs, so the
// workflows see the conflict behaviour of the real store.
type fakeStore struct {
	trees      []model.Tree
	duplicates []model.Duplicate
	ratings    []model.Rating
	nextID     int

	treeInsertErr    error
	ratingDeleteErr  error
	ratingDeletes    int
	duplicateDeletes int
	treeDeletes      int
}

func (s *fakeStore) id() string {
	s.nextID++
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", s.nextID)
}

func conflictErr() error {
	return &infrastructure.StoreError{
		Status:  http.StatusConflict,
		Code:    "23505",
		Message: `duplicate key value violates unique constraint "trees_dedup_key"`,
	}
}

type fakeTreeRepo struct{ s *fakeStore }

func (r *fakeTreeRepo) Insert(sub model.TreeSubmission) (*model.Tree, error) {
	if r.s.treeInsertErr != nil {
		return nil, r.s.treeInsertErr
	}
	for _, t := range r.s.trees {
		if t.Name == sub.Name && t.Species == sub.Species && t.StudentID == sub.StudentID {
			return nil, conflictErr()
		}
	}
	tree := model.Tree{
		ID:          r.s.id(),
		Name:        sub.Name,
		Species:     sub.Species,
		Description: sub.Description,
		ImageURL:    sub.Image,
		CSSStyle:    sub.CSSStyle,
		StudentID:   sub.StudentID,
	}
	r.s.trees = append(r.s.trees, tree)
	return &tree, nil
}

func (r *fakeTreeRepo) FindByDedupKey(name, species, studentID string) (*model.Tree, error) {
	for _, t := range r.s.trees {
		if t.Name == name && t.Species == species && t.StudentID == studentID {
			tree := t
			return &tree, nil
		}
	}
	return nil, nil
}

func (r *fakeTreeRepo) FindAllWithRatings() ([]model.TreeWithRatings, error) {
	list := make([]model.TreeWithRatings, 0, len(r.s.trees))
	for _, t := range r.s.trees {
		list = append(list, model.TreeWithRatings{Tree: t, Ratings: r.ratingsFor(t.ID)})
	}
	return list, nil
}

func (r *fakeTreeRepo) FindByIDWithRatings(id string) (*model.TreeWithRatings, error) {
	for _, t := range r.s.trees {
		if t.ID == id {
			return &model.TreeWithRatings{Tree: t, Ratings: r.ratingsFor(id)}, nil
		}
	}
	return nil, nil
}

func (r *fakeTreeRepo) ratingsFor(treeID string) []model.Rating {
	out := []model.Rating{}
	for _, rt := range r.s.ratings {
		if rt.TreeID == treeID {
			out = append(out, rt)
		}
	}
	return out
}

func (r *fakeTreeRepo) DeleteByID(id string) error {
	r.s.treeDeletes++
	kept := r.s.trees[:0]
	for _, t := range r.s.trees {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.s.trees = kept
	return nil
}

func (r *fakeTreeRepo) DeleteAll() error {
	r.s.treeDeletes++
	r.s.trees = nil
	return nil
}

type fakeDuplicateRepo struct{ s *fakeStore }

func (r *fakeDuplicateRepo) Insert(treeID string, sub model.TreeSubmission) (*model.Duplicate, error) {
	dup := model.Duplicate{
		ID:          r.s.id(),
		TreeID:      treeID,
		Name:        sub.Name,
		Species:     sub.Species,
		Description: sub.Description,
		ImageURL:    sub.Image,
		CSSStyle:    sub.CSSStyle,
		StudentID:   sub.StudentID,
	}
	r.s.duplicates = append(r.s.duplicates, dup)
	return &dup, nil
}

func (r *fakeDuplicateRepo) DeleteByTreeID(treeID string) error {
	r.s.duplicateDeletes++
	kept := r.s.duplicates[:0]
	for _, d := range r.s.duplicates {
		if d.TreeID != treeID {
			kept = append(kept, d)
		}
	}
	r.s.duplicates = kept
	return nil
}

func (r *fakeDuplicateRepo) DeleteAll() error {
	r.s.duplicateDeletes++
	r.s.duplicates = nil
	return nil
}

type fakeRatingRepo struct{ s *fakeStore }

func (r *fakeRatingRepo) Insert(req model.RatingRequest) (*model.Rating, error) {
	rating := model.Rating{
		ID:        r.s.id(),
		TreeID:    req.TreeID,
		StudentID: req.StudentID,
		Rating:    req.Rating,
	}
	r.s.ratings = append(r.s.ratings, rating)
	return &rating, nil
}

func (r *fakeRatingRepo) DeleteByTreeID(treeID string) error {
	if r.s.ratingDeleteErr != nil {
		return r.s.ratingDeleteErr
	}
	r.s.ratingDeletes++
	kept := r.s.ratings[:0]
	for _, rt := range r.s.ratings {
		if rt.TreeID != treeID {
			kept = append(kept, rt)
		}
	}
	r.s.ratings = kept
	return nil
}

func (r *fakeRatingRepo) DeleteAll() error {
	if r.s.ratingDeleteErr != nil {
		return r.s.ratingDeleteErr
	}
	r.s.ratingDeletes++
	r.s.ratings = nil
	return nil
}

func newFakeStore() (*fakeStore, GalleryService, AdminService) {
	s := &fakeStore{}
	trees := &fakeTreeRepo{s: s}
	dups := &fakeDuplicateRepo{s: s}
	ratings := &fakeRatingRepo{s: s}
	return s, NewGalleryService(trees, dups, ratings), NewAdminService(trees, dups, ratings)
}

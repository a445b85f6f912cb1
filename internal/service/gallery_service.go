package service

import (
	"fmt"
	"log"

	"github.com/treeclass/gallery/backend/internal/infrastructure"
	"github.com/treeclass/gallery/backend/internal/model"
	"github.com/treeclass/gallery/backend/internal/repository"
)

type GalleryService interface {
	Submit(sub model.TreeSubmission) (*model.Tree, *model.Duplicate, error)
	Rate(req model.RatingRequest) (*model.Rating, error)
	GetAll() ([]model.TreeWithRatings, error)
	GetByID(id string) (*model.TreeWithRatings, error)
}

type galleryService struct {
	trees      repository.TreeRepository
	duplicates repository.DuplicateRepository
	ratings    repository.RatingRepository
}

func NewGalleryService(
	trees repository.TreeRepository,
	duplicates repository.DuplicateRepository,
	ratings repository.RatingRepository,
) GalleryService {
	return &galleryService{trees: trees, duplicates: duplicates, ratings: ratings}
}

// Submit inserts a new canonical tree, or records a duplicate when a tree
// with the same (name, species, student_id) already exists. The insert goes
// first and the store's unique index on that triple is the arbiter, so two
// concurrent submissions of the same key cannot both become canonical.
// Exactly one of the two returned records is non-nil on success.
func (s *galleryService) Submit(sub model.TreeSubmission) (*model.Tree, *model.Duplicate, error) {
	tree, err := s.trees.Insert(sub)
	if err == nil {
		log.Printf("tree inserted: %s (%s / %s)", tree.ID, tree.Name, tree.Species)
		return tree, nil, nil
	}
	if !infrastructure.IsConflict(err) {
		return nil, nil, err
	}

	canonical, err := s.trees.FindByDedupKey(sub.Name, sub.Species, sub.StudentID)
	if err != nil {
		return nil, nil, err
	}
	if canonical == nil {
		// The index rejected the insert, so the canonical row must exist.
		return nil, nil, fmt.Errorf("no canonical tree for (%s, %s, %s) after conflict", sub.Name, sub.Species, sub.StudentID)
	}

	dup, err := s.duplicates.Insert(canonical.ID, sub)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("duplicate inserted: %s (tree %s)", dup.ID, canonical.ID)
	return nil, dup, nil
}

// Rate records a score against a tree. There is deliberately no existence
// check on tree_id and no range check on the score; the store's verdict is
// surfaced as-is.
func (s *galleryService) Rate(req model.RatingRequest) (*model.Rating, error) {
	return s.ratings.Insert(req)
}

func (s *galleryService) GetAll() ([]model.TreeWithRatings, error) {
	return s.trees.FindAllWithRatings()
}

// GetByID returns the tree with its ratings, or nil when no tree has that id.
func (s *galleryService) GetByID(id string) (*model.TreeWithRatings, error) {
	return s.trees.FindByIDWithRatings(id)
}

package service

import (
	"log"

	"github.com/treeclass/gallery/backend/internal/repository"
)

// AdminService is the purge side of the gallery. The admin-key check happens
// in middleware before any of this runs.
type AdminService interface {
	PurgeAll() error
	PurgeTree(id string) (bool, error)
}

type adminService struct {
	trees      repository.TreeRepository
	duplicates repository.DuplicateRepository
	ratings    repository.RatingRepository
}

func NewAdminService(
	trees repository.TreeRepository,
	duplicates repository.DuplicateRepository,
	ratings repository.RatingRepository,
) AdminService {
	return &adminService{trees: trees, duplicates: duplicates, ratings: ratings}
}

// PurgeAll empties the gallery. Dependents go first so a failure partway
// through never leaves ratings or duplicates pointing at a removed tree.
// The three deletes are separate calls; there is no transaction and no
// rollback of steps already done.
func (s *adminService) PurgeAll() error {
	if err := s.ratings.DeleteAll(); err != nil {
		return err
	}
	if err := s.duplicates.DeleteAll(); err != nil {
		return err
	}
	if err := s.trees.DeleteAll(); err != nil {
		return err
	}
	log.Println("purged all trees")
	return nil
}

// PurgeTree removes one tree and everything referencing it, in the same
// dependents-first order. Returns false when no tree has that id.
func (s *adminService) PurgeTree(id string) (bool, error) {
	tree, err := s.trees.FindByIDWithRatings(id)
	if err != nil {
		return false, err
	}
	if tree == nil {
		return false, nil
	}

	if err := s.ratings.DeleteByTreeID(id); err != nil {
		return true, err
	}
	if err := s.duplicates.DeleteByTreeID(id); err != nil {
		return true, err
	}
	if err := s.trees.DeleteByID(id); err != nil {
		return true, err
	}
	log.Printf("deleted tree %s", id)
	return true, nil
}

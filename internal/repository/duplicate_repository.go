package repository

import (
	"encoding/json"
	"fmt"

	"github.com/treeclass/gallery/backend/internal/infrastructure"
	"github.com/treeclass/gallery/backend/internal/model"
)

type DuplicateRepository interface {
	Insert(treeID string, sub model.TreeSubmission) (*model.Duplicate, error)
	DeleteByTreeID(treeID string) error
	DeleteAll() error
}

type duplicateRepository struct {
	store *infrastructure.SupabaseClient
}

func NewDuplicateRepository(store *infrastructure.SupabaseClient) DuplicateRepository {
	return &duplicateRepository{store: store}
}

type duplicateRow struct {
	TreeID      string `json:"tree_id"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	CSSStyle    string `json:"css_style"`
	StudentID   string `json:"student_id"`
}

func (r *duplicateRepository) Insert(treeID string, sub model.TreeSubmission) (*model.Duplicate, error) {
	raw, err := r.store.Insert("duplicates", duplicateRow{
		TreeID:      treeID,
		Name:        sub.Name,
		Species:     sub.Species,
		Description: sub.Description,
		ImageURL:    sub.Image,
		CSSStyle:    sub.CSSStyle,
		StudentID:   sub.StudentID,
	})
	if err != nil {
		return nil, err
	}
	dup := &model.Duplicate{}
	if err := json.Unmarshal(raw, dup); err != nil {
		return nil, fmt.Errorf("decode inserted duplicate: %w", err)
	}
	return dup, nil
}

func (r *duplicateRepository) DeleteByTreeID(treeID string) error {
	return r.store.Delete("duplicates", infrastructure.Eq("tree_id", treeID))
}

func (r *duplicateRepository) DeleteAll() error {
	return r.store.Delete("duplicates", infrastructure.Neq("id", zeroUUID))
}

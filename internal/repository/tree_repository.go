package repository

import (
	"encoding/json"
	"fmt"

	"github.com/treeclass/gallery/backend/internal/infrastructure"
	"github.com/treeclass/gallery/backend/internal/model"
)

// zeroUUID is the sentinel for "match every row" deletes (id neq zero).
const zeroUUID = "00000000-0000-0000-0000-000000000000"

type TreeRepository interface {
	Insert(sub model.TreeSubmission) (*model.Tree, error)
	FindByDedupKey(name, species, studentID string) (*model.Tree, error)
	FindAllWithRatings() ([]model.TreeWithRatings, error)
	FindByIDWithRatings(id string) (*model.TreeWithRatings, error)
	DeleteByID(id string) error
	DeleteAll() error
}

type treeRepository struct {
	store *infrastructure.SupabaseClient
}

func NewTreeRepository(store *infrastructure.SupabaseClient) TreeRepository {
	return &treeRepository{store: store}
}

// treeRow is the insert payload; the store generates the id.
type treeRow struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	CSSStyle    string `json:"css_style"`
	StudentID   string `json:"student_id"`
}

func (r *treeRepository) Insert(sub model.TreeSubmission) (*model.Tree, error) {
	raw, err := r.store.Insert("trees", treeRow{
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
	tree := &model.Tree{}
	if err := json.Unmarshal(raw, tree); err != nil {
		return nil, fmt.Errorf("decode inserted tree: %w", err)
	}
	return tree, nil
}

func (r *treeRepository) FindByDedupKey(name, species, studentID string) (*model.Tree, error) {
	rows, err := r.store.Select("trees", "*",
		infrastructure.Eq("name", name),
		infrastructure.Eq("species", species),
		infrastructure.Eq("student_id", studentID),
	)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	tree := &model.Tree{}
	if err := json.Unmarshal(rows[0], tree); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return tree, nil
}

func (r *treeRepository) FindAllWithRatings() ([]model.TreeWithRatings, error) {
	rows, err := r.store.Select("trees", "*,ratings(*)")
	if err != nil {
		return nil, err
	}
	list := make([]model.TreeWithRatings, 0, len(rows))
	for _, raw := range rows {
		var tree model.TreeWithRatings
		if err := json.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("decode tree: %w", err)
		}
		if tree.Ratings == nil {
			tree.Ratings = []model.Rating{}
		}
		list = append(list, tree)
	}
	return list, nil
}

func (r *treeRepository) FindByIDWithRatings(id string) (*model.TreeWithRatings, error) {
	raw, err := r.store.SelectOne("trees", "*,ratings(*)", infrastructure.Eq("id", id))
	if infrastructure.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tree := &model.TreeWithRatings{}
	if err := json.Unmarshal(raw, tree); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	if tree.Ratings == nil {
		tree.Ratings = []model.Rating{}
	}
	return tree, nil
}

func (r *treeRepository) DeleteByID(id string) error {
	return r.store.Delete("trees", infrastructure.Eq("id", id))
}

func (r *treeRepository) DeleteAll() error {
	return r.store.Delete("trees", infrastructure.Neq("id", zeroUUID))
}

package repository

import (
	"encoding/json"
	"fmt"

	"github.com/treeclass/gallery/backend/internal/infrastructure"
	"github.com/treeclass/gallery/backend/internal/model"
)

type RatingRepository interface {
	Insert(req model.RatingRequest) (*model.Rating, error)
	DeleteByTreeID(treeID string) error
	DeleteAll() error
}

type ratingRepository struct {
	store *infrastructure.SupabaseClient
}

func NewRatingRepository(store *infrastructure.SupabaseClient) RatingRepository {
	return &ratingRepository{store: store}
}

func (r *ratingRepository) Insert(req model.RatingRequest) (*model.Rating, error) {
	raw, err := r.store.Insert("ratings", req)
	if err != nil {
		return nil, err
	}
	rating := &model.Rating{}
	if err := json.Unmarshal(raw, rating); err != nil {
		return nil, fmt.Errorf("decode inserted rating: %w", err)
	}
	return rating, nil
}

func (r *ratingRepository) DeleteByTreeID(treeID string) error {
	return r.store.Delete("ratings", infrastructure.Eq("tree_id", treeID))
}

func (r *ratingRepository) DeleteAll() error {
	return r.store.Delete("ratings", infrastructure.Neq("id", zeroUUID))
}

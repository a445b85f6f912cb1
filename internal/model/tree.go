package model

// TreeSubmission is the request body for POST /trees.
// The image field carries the URL already returned by /upload-image.
type TreeSubmission struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CSSStyle    string `json:"css_style"`
	StudentID   string `json:"student_id"`
}

// Tree is a canonical gallery entry. At most one exists per
// (name, species, student_id); the store's unique index enforces that.
type Tree struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	CSSStyle    string `json:"css_style"`
	StudentID   string `json:"student_id"`
}

// Duplicate is a diverted submission. Same shape as Tree plus a reference
// to the canonical tree it repeats.
type Duplicate struct {
	ID          string `json:"id"`
	TreeID      string `json:"tree_id"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	CSSStyle    string `json:"css_style"`
	StudentID   string `json:"student_id"`
}

type Rating struct {
	ID        string  `json:"id"`
	TreeID    string  `json:"tree_id"`
	StudentID string  `json:"student_id"`
	Rating    float64 `json:"rating"`
}

// RatingRequest is the request body for POST /ratings. The score range is
// not checked here; the store takes it as-is.
type RatingRequest struct {
	TreeID    string  `json:"tree_id"`
	StudentID string  `json:"student_id"`
	Rating    float64 `json:"rating"`
}

// TreeWithRatings is the read shape for GET /trees and GET /trees/:id,
// a tree with all of its ratings embedded.
type TreeWithRatings struct {
	Tree
	Ratings []Rating `json:"ratings"`
}

package models

import (
	"time"
)

type Course struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Link        string `json:"link" db:"link"`
}

type Service struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Icon        string `json:"icon" db:"icon"` // FontAwesome icon class
	Page        string `json:"page" db:"page"` // route name the card links to
}

type Testimonial struct {
	ID         string `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Profession string `json:"profession" db:"profession"`
	ImageURL   string `json:"image_url" db:"image_url"`
	Text       string `json:"text" db:"text"`
}

type Event struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location" db:"location"`
	StartsAt    time.Time `json:"starts_at" db:"starts_at"`
}

type TeamMember struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Designation  string    `json:"designation" db:"designation"`
	Bio          string    `json:"bio" db:"bio"`
	ImageURL     string    `json:"image_url" db:"image_url"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

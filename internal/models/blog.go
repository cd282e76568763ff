package models

import "time"

type BlogPost struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Excerpt     string    `db:"excerpt" json:"excerpt"`
	Content     string    `db:"content" json:"content"`
	Category    string    `db:"category" json:"category"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
}

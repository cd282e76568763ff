package store

import (
	"fmt"

	"saas-platform-backend/internal/models"
)

// ListBlogPosts returns the full collection, newest first. The listing page
// renders everything; there is no pagination.
func (s *Store) ListBlogPosts() ([]models.BlogPost, error) {
	posts := []models.BlogPost{}
	err := s.db.Select(&posts, `
		SELECT id, title, excerpt, content, category, published_at
		FROM blog_posts
		ORDER BY published_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

func (s *Store) CreateBlogPost(title, excerpt, content, category string) (*models.BlogPost, error) {
	res, err := s.db.Exec(`
		INSERT INTO blog_posts (title, excerpt, content, category)
		VALUES (?, ?, ?, ?)
	`, title, excerpt, content, category)
	if err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", translate(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read blog post id: %w", err)
	}
	var post models.BlogPost
	err = s.db.Get(&post, `
		SELECT id, title, excerpt, content, category, published_at
		FROM blog_posts
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", translate(err))
	}
	return &post, nil
}

package domain

import "time"

// Category classifies a forum post.
type Category string

const (
	CategoryGeneral Category = "General"
	CategoryStream  Category = "Stream Selection"
	CategoryMemory  Category = "Memory Techniques"
	CategoryCareer  Category = "Career Guidance"
	CategoryAll     Category = "all" // listing filter only, never stored on a post
)

// ValidCategory reports whether c is a storable post category.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryGeneral, CategoryStream, CategoryMemory, CategoryCareer:
		return true
	}
	return false
}

// Comment is a reply attached to exactly one post and shares its lifetime.
// AuthorName is a snapshot of the author's display name at comment time.
type Comment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// Post is a community discussion entry. AuthorName is a snapshot taken at
// post time and is deliberately never re-synced with later name changes.
type Post struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   Category  `json:"category"`
	Likes      int       `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
	Comments   []Comment `json:"comments"`
}

package models

// Post represents a blog post.
type Post struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// RecordID returns the collection identifier for a post.
func (p Post) RecordID() int64 { return p.ID }

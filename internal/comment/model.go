package comment

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

package post

import "time"

type Post struct {
	ID          int64     `json:"id"`
	PostName    string    `json:"post_name"`
	URL         *string   `json:"url,omitempty"`
	Description *string   `json:"description,omitempty"`
	VoteCount   int       `json:"vote_count"`
	UserID      int64     `json:"user_id"`
	SubredditID int64     `json:"subreddit_id"`
	CreatedAt   time.Time `json:"created_at"`
}

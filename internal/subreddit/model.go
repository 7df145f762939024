package subreddit

import "time"

type Subreddit struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	UserID        int64     `json:"user_id"`
	NumberOfPosts int       `json:"number_of_posts"`
	CreatedAt     time.Time `json:"created_at"`
}

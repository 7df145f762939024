package database

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the bun mapping for the users table
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Username     string    `bun:"username,notnull,unique"`
	Email        string    `bun:"email,notnull"`
	PasswordHash string    `bun:"password_hash,notnull"`
	Enabled      bool      `bun:"enabled,notnull,default:false"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// VerificationToken is the bun mapping for the verification_tokens table.
// Tokens are never deleted or marked consumed; enabling a user is idempotent
// so replaying a token has no further effect.
type VerificationToken struct {
	bun.BaseModel `bun:"table:verification_tokens,alias:vt"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Token     string    `bun:"token,notnull,unique"`
	UserID    int64     `bun:"user_id,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`

	User *User `bun:"rel:belongs-to,join:user_id=id"`
}

// Subreddit is the bun mapping for the subreddits table
type Subreddit struct {
	bun.BaseModel `bun:"table:subreddits,alias:s"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Name        string    `bun:"name,notnull,unique"`
	Description string    `bun:"description,notnull"`
	UserID      int64     `bun:"user_id,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Post is the bun mapping for the posts table
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:p"`

	ID          int64     `bun:"id,pk,autoincrement"`
	PostName    string    `bun:"post_name,notnull"`
	URL         *string   `bun:"url"`
	Description *string   `bun:"description"`
	VoteCount   int       `bun:"vote_count,notnull,default:0"`
	UserID      int64     `bun:"user_id,notnull"`
	SubredditID int64     `bun:"subreddit_id,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Comment is the bun mapping for the comments table
type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:c"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Text      string    `bun:"text,notnull"`
	PostID    int64     `bun:"post_id,notnull"`
	UserID    int64     `bun:"user_id,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Vote is the bun mapping for the votes table. One row per (post, user);
// switching direction updates the row rather than inserting a second one.
type Vote struct {
	bun.BaseModel `bun:"table:votes,alias:v"`

	ID       int64 `bun:"id,pk,autoincrement"`
	VoteType int   `bun:"vote_type,notnull"`
	PostID   int64 `bun:"post_id,notnull"`
	UserID   int64 `bun:"user_id,notnull"`
}

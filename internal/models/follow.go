package models

import "time"

// Follow is a directed edge from a follower to a followed author. The
// composite unique index makes duplicate edges impossible at the storage
// layer, so concurrent follow requests cannot double-insert.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"created_at"`
}

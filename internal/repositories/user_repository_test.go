package repositories

import (
	"testing"
	"time"

	"github.com/dmtrv/blogfeed/internal/models"
)

func TestDeleteUserCascades(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewPostgresUserRepository(db)
	commentRepo := NewPostgresCommentRepository(db)
	followRepo := NewPostgresFollowRepository(db)

	alice := mustCreateUser(t, db, "alice")
	bob := mustCreateUser(t, db, "bob")

	alicePost := mustCreatePost(t, db, alice.ID, nil, "mine", time.Now())
	bobPost := mustCreatePost(t, db, bob.ID, nil, "theirs", time.Now())

	// bob comments on alice's post, alice comments on bob's
	if err := commentRepo.CreateComment(&models.Comment{PostID: alicePost.ID, AuthorID: bob.ID, Text: "nice"}); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}
	if err := commentRepo.CreateComment(&models.Comment{PostID: bobPost.ID, AuthorID: alice.ID, Text: "thanks"}); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}
	if err := followRepo.Follow(bob.ID, alice.ID); err != nil {
		t.Fatalf("failed to follow: %v", err)
	}

	if err := userRepo.DeleteUser(alice.ID); err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	if got := countRows(t, db, &models.Post{}); got != 1 {
		t.Fatalf("expected only bob's post to survive, got %d", got)
	}
	if got := countRows(t, db, &models.Comment{}); got != 0 {
		t.Fatalf("expected comments on and by alice removed, got %d", got)
	}
	if got := countRows(t, db, &models.Follow{}); got != 0 {
		t.Fatalf("expected alice's follow edges removed, got %d", got)
	}
	if _, err := userRepo.GetUserByUsername("bob"); err != nil {
		t.Fatalf("bob should be untouched: %v", err)
	}
}

package repositories

import (
	"testing"
	"time"

	"github.com/dmtrv/blogfeed/internal/models"
)

func TestListPostsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPostRepository(db)
	author := mustCreateUser(t, db, "alice")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mustCreatePost(t, db, author.ID, nil, "oldest", base)
	mustCreatePost(t, db, author.ID, nil, "middle", base.Add(time.Minute))
	mustCreatePost(t, db, author.ID, nil, "newest", base.Add(2*time.Minute))

	posts, err := repo.ListPosts(0, 10)
	if err != nil {
		t.Fatalf("failed to list posts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i, want := range []string{"newest", "middle", "oldest"} {
		if posts[i].Text != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, posts[i].Text)
		}
	}
}

func TestDeletePostCascadesComments(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	commentRepo := NewPostgresCommentRepository(db)
	author := mustCreateUser(t, db, "alice")
	reader := mustCreateUser(t, db, "bob")

	post := mustCreatePost(t, db, author.ID, nil, "hello", time.Now())
	other := mustCreatePost(t, db, author.ID, nil, "unrelated", time.Now())
	for _, text := range []string{"first", "second"} {
		if err := commentRepo.CreateComment(&models.Comment{PostID: post.ID, AuthorID: reader.ID, Text: text}); err != nil {
			t.Fatalf("failed to create comment: %v", err)
		}
	}
	if err := commentRepo.CreateComment(&models.Comment{PostID: other.ID, AuthorID: reader.ID, Text: "keep me"}); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	if err := postRepo.DeletePost(post.ID); err != nil {
		t.Fatalf("failed to delete post: %v", err)
	}

	if got := countRows(t, db, &models.Comment{}); got != 1 {
		t.Fatalf("expected only the unrelated comment to survive, got %d", got)
	}
	remaining, err := commentRepo.GetCommentsByPostID(other.ID)
	if err != nil || len(remaining) != 1 || remaining[0].Text != "keep me" {
		t.Fatalf("unrelated post lost its comment: %v %v", remaining, err)
	}
}

func TestListPostsByAuthorsEmptySet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPostRepository(db)
	author := mustCreateUser(t, db, "alice")
	mustCreatePost(t, db, author.ID, nil, "hello", time.Now())

	posts, err := repo.ListPostsByAuthors(nil, 0, 10)
	if err != nil {
		t.Fatalf("listing for empty author set failed: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts for empty author set, got %d", len(posts))
	}
	count, err := repo.CountPostsByAuthors(nil)
	if err != nil || count != 0 {
		t.Fatalf("expected zero count for empty author set, got %d err=%v", count, err)
	}
}

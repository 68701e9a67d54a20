package handlers

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmtrv/blogfeed/internal/cache"
	"github.com/dmtrv/blogfeed/internal/feed"
	"github.com/dmtrv/blogfeed/internal/models"
	"github.com/dmtrv/blogfeed/internal/repositories"
	"github.com/dmtrv/blogfeed/validators"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

//
// --- Setup test environment ---
//

type testEnv struct {
	echo     *echo.Echo
	db       *gorm.DB
	users    repositories.UserRepository
	groups   repositories.GroupRepository
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	follows  repositories.FollowRepository
	composer *feed.Composer
	timeline *cache.TimelineCache
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.User{}, &models.Group{}, &models.Post{}, &models.Comment{}, &models.Follow{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	userRepo := repositories.NewPostgresUserRepository(db)
	groupRepo := repositories.NewPostgresGroupRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)

	e := echo.New()
	e.Validator = validators.NewValidator()

	return &testEnv{
		echo:     e,
		db:       db,
		users:    userRepo,
		groups:   groupRepo,
		posts:    postRepo,
		comments: commentRepo,
		follows:  followRepo,
		composer: feed.NewComposer(postRepo, userRepo, groupRepo, followRepo),
		timeline: cache.NewTimelineCache(20 * time.Second),
	}
}

func (env *testEnv) mustCreateUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username}
	if err := env.db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return user
}

func (env *testEnv) mustCreatePost(t *testing.T, authorID uint, text string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{AuthorID: authorID, Text: text, CreatedAt: createdAt}
	if err := env.db.Create(post).Error; err != nil {
		t.Fatalf("failed to create post %q: %v", text, err)
	}
	return post
}

// authenticate marks the context as belonging to the given user, the way the
// JWT middleware would after a valid token.
func authenticate(c echo.Context, user *models.User) {
	c.Set("user", &models.JwtCustomClaims{UserID: user.ID, Username: user.Username})
}

// Package feed composes the paginated post listings: home, group, profile,
// and the personalized following feed. Composition is a pure read projection;
// nothing here mutates the store.
package feed

import (
	"github.com/dmtrv/blogfeed/internal/models"
	"github.com/dmtrv/blogfeed/internal/pagination"
	"github.com/dmtrv/blogfeed/internal/repositories"
)

// Composer selects and orders the posts for each feed kind. Every feed is
// newest first and sliced at the database, one page at a time.
type Composer struct {
	posts   repositories.PostRepository
	users   repositories.UserRepository
	groups  repositories.GroupRepository
	follows repositories.FollowRepository
}

// NewComposer creates a new Composer
func NewComposer(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	groupRepo repositories.GroupRepository,
	followRepo repositories.FollowRepository,
) *Composer {
	return &Composer{
		posts:   postRepo,
		users:   userRepo,
		groups:  groupRepo,
		follows: followRepo,
	}
}

// Home returns the requested page of all posts.
func (f *Composer) Home(page int) (pagination.Page[models.Post], error) {
	total, err := f.posts.CountPosts()
	if err != nil {
		return pagination.Page[models.Post]{}, err
	}
	page = pagination.Clamp(page, total, pagination.PageSize)
	posts, err := f.posts.ListPosts(pagination.Offset(page, pagination.PageSize), pagination.PageSize)
	if err != nil {
		return pagination.Page[models.Post]{}, err
	}
	return pagination.New(posts, page, pagination.PageSize, total), nil
}

// Group returns the group identified by slug and the requested page of its
// posts. An unknown slug yields gorm.ErrRecordNotFound.
func (f *Composer) Group(slug string, page int) (*models.Group, pagination.Page[models.Post], error) {
	group, err := f.groups.GetGroupBySlug(slug)
	if err != nil {
		return nil, pagination.Page[models.Post]{}, err
	}
	total, err := f.posts.CountPostsByGroup(group.ID)
	if err != nil {
		return nil, pagination.Page[models.Post]{}, err
	}
	page = pagination.Clamp(page, total, pagination.PageSize)
	posts, err := f.posts.ListPostsByGroup(group.ID, pagination.Offset(page, pagination.PageSize), pagination.PageSize)
	if err != nil {
		return nil, pagination.Page[models.Post]{}, err
	}
	return group, pagination.New(posts, page, pagination.PageSize, total), nil
}

// Profile returns the author, their total post count, and the requested page
// of their posts. The count is recomputed on every call, never cached.
func (f *Composer) Profile(username string, page int) (*models.User, int64, pagination.Page[models.Post], error) {
	user, err := f.users.GetUserByUsername(username)
	if err != nil {
		return nil, 0, pagination.Page[models.Post]{}, err
	}
	total, err := f.posts.CountPostsByAuthor(user.ID)
	if err != nil {
		return nil, 0, pagination.Page[models.Post]{}, err
	}
	page = pagination.Clamp(page, total, pagination.PageSize)
	posts, err := f.posts.ListPostsByAuthor(user.ID, pagination.Offset(page, pagination.PageSize), pagination.PageSize)
	if err != nil {
		return nil, 0, pagination.Page[models.Post]{}, err
	}
	return user, total, pagination.New(posts, page, pagination.PageSize, total), nil
}

// Following returns the requested page of posts authored by accounts the
// viewer follows, derived by joining against the follow edges.
func (f *Composer) Following(viewerID uint, page int) (pagination.Page[models.Post], error) {
	authorIDs, err := f.follows.GetFollowingIDs(viewerID)
	if err != nil {
		return pagination.Page[models.Post]{}, err
	}
	total, err := f.posts.CountPostsByAuthors(authorIDs)
	if err != nil {
		return pagination.Page[models.Post]{}, err
	}
	page = pagination.Clamp(page, total, pagination.PageSize)
	posts, err := f.posts.ListPostsByAuthors(authorIDs, pagination.Offset(page, pagination.PageSize), pagination.PageSize)
	if err != nil {
		return pagination.Page[models.Post]{}, err
	}
	return pagination.New(posts, page, pagination.PageSize, total), nil
}

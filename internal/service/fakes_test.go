package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"blogboard/internal/domain"
	"blogboard/internal/domain/models"
	"blogboard/internal/domain/repositories"
)

// In-memory repository fakes mirroring the postgres implementations'
// contracts: same sentinel wrapping, same conflict messages, ids and
// timestamps assigned on create.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

// --- posts ---

type fakePostRepo struct {
	order []string
	posts map[string]models.Post
	likes map[string][]models.PostLike
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts: make(map[string]models.Post),
		likes: make(map[string][]models.PostLike),
	}
}

func (r *fakePostRepo) Create(_ context.Context, post *models.Post, _ []string) error {
	post.ID = uuid.NewString()
	now := time.Now()
	post.CreatedAt = &now
	r.order = append(r.order, post.ID)
	r.posts[post.ID] = *post
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id string) (*models.Post, error) {
	stored, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post with id %s: %w", id, domain.ErrNotFound)
	}
	stored.Likes = append([]models.PostLike(nil), r.likes[id]...)
	return &stored, nil
}

func (r *fakePostRepo) Update(_ context.Context, post *models.Post, _ []string) error {
	stored, ok := r.posts[post.ID]
	if !ok {
		return fmt.Errorf("post with id %s: %w", post.ID, domain.ErrNotFound)
	}
	updated := time.Now()
	if !updated.After(*stored.CreatedAt) {
		updated = stored.CreatedAt.Add(time.Millisecond)
	}
	post.UpdatedAt = &updated
	post.CreatedAt = stored.CreatedAt
	r.posts[post.ID] = *post
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("post with id %s: %w", id, domain.ErrNotFound)
	}
	delete(r.posts, id)
	delete(r.likes, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakePostRepo) SearchByTitle(_ context.Context, titleFilter string, page repositories.PageRequest) ([]models.Post, int, error) {
	var matched []models.Post
	needle := strings.ToLower(titleFilter)
	for _, id := range r.order {
		post := r.posts[id]
		if strings.Contains(strings.ToLower(post.Title), needle) {
			post.Likes = append([]models.PostLike(nil), r.likes[id]...)
			matched = append(matched, post)
		}
	}
	total := len(matched)
	if page.Offset > 0 {
		if page.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[page.Offset:]
		}
	}
	if page.Limit > 0 && len(matched) > page.Limit {
		matched = matched[:page.Limit]
	}
	return matched, total, nil
}

func (r *fakePostRepo) InsertLike(_ context.Context, like models.PostLike) error {
	postID := like.Key.SubjectID
	for _, existing := range r.likes[postID] {
		if existing.Key == like.Key {
			return &domain.ConflictError{Message: "Already liked", ResourceType: "like", ResourceID: postID}
		}
	}
	like.CreatedAt = time.Now()
	r.likes[postID] = append(r.likes[postID], like)
	return nil
}

func (r *fakePostRepo) DeleteLike(_ context.Context, key models.LikeKey[string]) error {
	entries := r.likes[key.SubjectID]
	for i, existing := range entries {
		if existing.Key == key {
			r.likes[key.SubjectID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return &domain.ConflictError{Message: "Already unliked or never liked", ResourceType: "like", ResourceID: key.SubjectID}
}

// --- comments ---

type fakeCommentRepo struct {
	order    []string
	comments map[string]models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]models.Comment)}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	comment.ID = uuid.NewString()
	now := time.Now()
	comment.CreatedAt = &now
	r.order = append(r.order, comment.ID)
	r.comments[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id string) (*models.Comment, error) {
	stored, ok := r.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment with id %s: %w", id, domain.ErrNotFound)
	}
	return &stored, nil
}

func (r *fakeCommentRepo) Update(_ context.Context, comment *models.Comment) error {
	if _, ok := r.comments[comment.ID]; !ok {
		return fmt.Errorf("comment with id %s: %w", comment.ID, domain.ErrNotFound)
	}
	r.comments[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) DeleteSubtree(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return fmt.Errorf("comment with id %s: %w", id, domain.ErrNotFound)
	}
	doomed := map[string]bool{id: true}
	// Fixed-point pass picks up descendants regardless of insertion order
	for changed := true; changed; {
		changed = false
		for _, c := range r.comments {
			if c.ParentID != nil && doomed[*c.ParentID] && !doomed[c.ID] {
				doomed[c.ID] = true
				changed = true
			}
		}
	}
	for cid := range doomed {
		delete(r.comments, cid)
	}
	kept := r.order[:0]
	for _, cid := range r.order {
		if !doomed[cid] {
			kept = append(kept, cid)
		}
	}
	r.order = kept
	return nil
}

func (r *fakeCommentRepo) ListTopLevel(_ context.Context, postID string, page repositories.PageRequest) ([]*models.Comment, error) {
	var result []*models.Comment
	for _, id := range r.order {
		c := r.comments[id]
		if c.PostID == postID && c.ParentID == nil {
			comment := c
			result = append(result, &comment)
		}
	}
	if page.Limit > 0 && len(result) > page.Limit {
		result = result[:page.Limit]
	}
	return result, nil
}

func (r *fakeCommentRepo) ListByParentIDs(_ context.Context, parentIDs []string) (map[string][]*models.Comment, error) {
	wanted := make(map[string]bool, len(parentIDs))
	for _, id := range parentIDs {
		wanted[id] = true
	}
	result := make(map[string][]*models.Comment)
	for _, id := range r.order {
		c := r.comments[id]
		if c.ParentID != nil && wanted[*c.ParentID] {
			comment := c
			result[*c.ParentID] = append(result[*c.ParentID], &comment)
		}
	}
	return result, nil
}

// --- tags ---

type fakeTagRepo struct {
	byName map[string]models.Tag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{byName: make(map[string]models.Tag)}
}

func (r *fakeTagRepo) GetByName(_ context.Context, name string) (*models.Tag, error) {
	tag, ok := r.byName[name]
	if !ok {
		return nil, nil
	}
	return &tag, nil
}

func (r *fakeTagRepo) Create(_ context.Context, tag *models.Tag) error {
	if _, ok := r.byName[tag.Name]; ok {
		return fmt.Errorf("tag '%s': %w", tag.Name, domain.ErrConflict)
	}
	tag.ID = uuid.NewString()
	r.byName[tag.Name] = *tag
	return nil
}

// --- categories ---

type fakeCategoryRepo struct {
	categories []models.Category
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*models.Category, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			category := c
			return &category, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	category.ID = uuid.NewString()
	r.categories = append(r.categories, *category)
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]models.Category, error) {
	return append([]models.Category(nil), r.categories...), nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogboard/internal/domain"
	"blogboard/internal/domain/models"
	"blogboard/internal/domain/repositories"
	"blogboard/internal/domain/services"
)

func (f *postFixture) addComment(t *testing.T, postID string, parentID *string, content string) *models.Comment {
	t.Helper()
	comment, err := f.posts.AddComment(context.Background(), &services.CommentCreateCommand{
		PostID:          postID,
		ParentCommentID: parentID,
		AuthorID:        "author-2",
		Content:         content,
	})
	require.NoError(t, err)
	return comment
}

func TestCommentService_CreateTopLevel(t *testing.T) {
	f := newPostFixture(t, "Tech")

	post := f.createPost(t, "Commented")
	comment := f.addComment(t, post.ID, nil, "first!")

	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Nil(t, comment.ParentID)
	assert.NotNil(t, comment.CreatedAt)
}

func TestCommentService_CreateReply(t *testing.T) {
	f := newPostFixture(t, "Tech")

	post := f.createPost(t, "Threaded")
	parent := f.addComment(t, post.ID, nil, "parent")
	reply := f.addComment(t, post.ID, &parent.ID, "reply")

	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
}

func TestCommentService_CreateOnUnknownPostNotFound(t *testing.T) {
	f := newPostFixture(t, "Tech")

	_, err := f.posts.AddComment(context.Background(), &services.CommentCreateCommand{
		PostID:   "no-such-post",
		AuthorID: "author-2",
		Content:  "orphan",
	})
	require.Error(t, err)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Post not found", notFound.Message)
}

func TestCommentService_CreateWithDanglingParentNotFound(t *testing.T) {
	f := newPostFixture(t, "Tech")

	post := f.createPost(t, "No such parent")
	parentID := "no-such-comment"
	_, err := f.posts.AddComment(context.Background(), &services.CommentCreateCommand{
		PostID:          post.ID,
		ParentCommentID: &parentID,
		AuthorID:        "author-2",
		Content:         "reply to nothing",
	})
	require.Error(t, err)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Parent comment not found", notFound.Message)
}

func TestCommentService_CreateRequiresContent(t *testing.T) {
	f := newPostFixture(t, "Tech")

	post := f.createPost(t, "Empty comment")
	_, err := f.posts.AddComment(context.Background(), &services.CommentCreateCommand{
		PostID:   post.ID,
		AuthorID: "author-2",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestCommentService_UpdateReplacesContentOnly(t *testing.T) {
	f := newPostFixture(t, "Tech")
	ctx := context.Background()

	post := f.createPost(t, "Edited")
	comment := f.addComment(t, post.ID, nil, "tpyo")

	updated, err := f.comments.Update(ctx, &services.CommentUpdateCommand{
		CommentID:  comment.ID,
		NewContent: "typo",
	})
	require.NoError(t, err)
	assert.Equal(t, "typo", updated.Content)
	assert.Equal(t, comment.AuthorID, updated.AuthorID)
	assert.Equal(t, comment.PostID, updated.PostID)
}

func TestCommentService_UpdateUnknownIDNotFound(t *testing.T) {
	f := newPostFixture(t, "Tech")

	_, err := f.comments.Update(context.Background(), &services.CommentUpdateCommand{
		CommentID:  "no-such-comment",
		NewContent: "anything",
	})
	require.Error(t, err)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Comment not found", notFound.Message)
}

func TestCommentService_DeleteRemovesSubtree(t *testing.T) {
	f := newPostFixture(t, "Tech")
	ctx := context.Background()

	post := f.createPost(t, "Pruned")
	root := f.addComment(t, post.ID, nil, "root")
	child := f.addComment(t, post.ID, &root.ID, "child")
	grandchild := f.addComment(t, post.ID, &child.ID, "grandchild")
	sibling := f.addComment(t, post.ID, nil, "sibling")

	require.NoError(t, f.comments.Delete(ctx, root.ID))

	for _, id := range []string{root.ID, child.ID, grandchild.ID} {
		_, err := f.comments.Update(ctx, &services.CommentUpdateCommand{CommentID: id, NewContent: "x"})
		assert.True(t, errors.Is(err, domain.ErrNotFound), "comment %s should be gone", id)
	}

	// The untouched branch survives
	remaining, err := f.comments.ListByPost(ctx, post.ID, repositories.PageRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, sibling.ID, remaining[0].ID)
}

func TestCommentService_DeleteUnknownIDNotFound(t *testing.T) {
	f := newPostFixture(t, "Tech")

	err := f.comments.Delete(context.Background(), "no-such-comment")
	require.Error(t, err)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Comment not found", notFound.Message)
}

func TestCommentService_ListByPostAttachesReplies(t *testing.T) {
	f := newPostFixture(t, "Tech")
	ctx := context.Background()

	post := f.createPost(t, "Listed")
	first := f.addComment(t, post.ID, nil, "first")
	second := f.addComment(t, post.ID, nil, "second")
	f.addComment(t, post.ID, &first.ID, "reply one")
	f.addComment(t, post.ID, &first.ID, "reply two")

	comments, err := f.comments.ListByPost(ctx, post.ID, repositories.PageRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, first.ID, comments[0].ID)
	require.Len(t, comments[0].Replies, 2)
	assert.Equal(t, "reply one", comments[0].Replies[0].Content)

	assert.Equal(t, second.ID, comments[1].ID)
	assert.Empty(t, comments[1].Replies)
}

func TestCommentService_ListByPostEmpty(t *testing.T) {
	f := newPostFixture(t, "Tech")

	post := f.createPost(t, "Quiet")
	comments, err := f.comments.ListByPost(context.Background(), post.ID, repositories.PageRequest{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, comments)
}

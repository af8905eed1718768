package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagResolver_NilResolvesToNil(t *testing.T) {
	resolver := NewTagResolver(newFakeTagRepo(), testLogger())

	tags, err := resolver.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, tags)
}

func TestTagResolver_EmptyResolvesToEmpty(t *testing.T) {
	resolver := NewTagResolver(newFakeTagRepo(), testLogger())

	tags, err := resolver.Resolve(context.Background(), []string{})
	require.NoError(t, err)
	require.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestTagResolver_CreatesMissingWithPlaceholderDescription(t *testing.T) {
	repo := newFakeTagRepo()
	resolver := NewTagResolver(repo, testLogger())

	tags, err := resolver.Resolve(context.Background(), []string{"go", "databases"})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	assert.Equal(t, "go", tags[0].Name)
	assert.Equal(t, "databases", tags[1].Name)
	for _, tag := range tags {
		assert.NotEmpty(t, tag.ID)
		assert.Equal(t, "description", tag.Description)
	}
}

func TestTagResolver_ReusesExistingTags(t *testing.T) {
	repo := newFakeTagRepo()
	resolver := NewTagResolver(repo, testLogger())
	ctx := context.Background()

	first, err := resolver.Resolve(ctx, []string{"go"})
	require.NoError(t, err)

	second, err := resolver.Resolve(ctx, []string{"go"})
	require.NoError(t, err)

	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Len(t, repo.byName, 1)
}

func TestTagResolver_DuplicateNamesCollapse(t *testing.T) {
	repo := newFakeTagRepo()
	resolver := NewTagResolver(repo, testLogger())

	tags, err := resolver.Resolve(context.Background(), []string{"go", "go", "web", "go"})
	require.NoError(t, err)
	require.Len(t, tags, 4)

	assert.Equal(t, tags[0].ID, tags[1].ID)
	assert.Equal(t, tags[0].ID, tags[3].ID)
	assert.NotEqual(t, tags[0].ID, tags[2].ID)
	assert.Len(t, repo.byName, 2)
}

func TestTagResolver_PreservesInputOrder(t *testing.T) {
	repo := newFakeTagRepo()
	resolver := NewTagResolver(repo, testLogger())
	ctx := context.Background()

	// "beta" exists before the resolve; "alpha" is created during it
	_, err := resolver.Resolve(ctx, []string{"beta"})
	require.NoError(t, err)

	tags, err := resolver.Resolve(ctx, []string{"alpha", "beta"})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "alpha", tags[0].Name)
	assert.Equal(t, "beta", tags[1].Name)
}

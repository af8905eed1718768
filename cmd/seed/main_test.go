package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"blogboard/internal/repository/postgres"
)

// Author ids are opaque foreign identifiers, so the columns holding them
// must accept any string, not just UUIDs.
func TestSchemaStatements_AuthorColumnsAreText(t *testing.T) {
	stmts := schemaStatements(postgres.NewTableNames("test_"), "test_")

	var authorColumns int
	for _, stmt := range stmts {
		if !strings.Contains(stmt, "author_id") {
			continue
		}
		authorColumns++
		assert.Contains(t, stmt, "author_id TEXT NOT NULL")
		assert.NotContains(t, stmt, "author_id UUID")
	}

	// posts, comments and post_likes each carry an author column
	assert.Equal(t, 3, authorColumns)
}

func TestSchemaStatements_PrefixAllTables(t *testing.T) {
	tables := postgres.NewTableNames("test_")
	stmts := schemaStatements(tables, "test_")

	joined := strings.Join(stmts, "\n")
	for _, table := range []string{tables.Posts, tables.PostTags, tables.PostLikes, tables.Tags, tables.Categories, tables.Comments} {
		assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS "+table)
	}
}

func TestFixtures_ParseAndReferenceSeededCategories(t *testing.T) {
	var fx fixtures
	require.NoError(t, yaml.Unmarshal(fixturesYAML, &fx))
	require.NotEmpty(t, fx.Categories)
	require.NotEmpty(t, fx.Posts)

	known := make(map[string]bool, len(fx.Categories))
	for _, c := range fx.Categories {
		known[c.Name] = true
	}
	for _, p := range fx.Posts {
		assert.NotEmpty(t, p.Author)
		assert.True(t, known[p.Category], "post %q references unseeded category %q", p.Title, p.Category)
	}
}

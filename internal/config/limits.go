package config

const (
	// MaxTitleLength is the maximum length for post titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxTitleLength = 255

	// MaxContentLength is the maximum length for post bodies.
	MaxContentLength = 100_000

	// MaxCommentLength is the maximum length for comment content.
	MaxCommentLength = 2000

	// MaxCategoryNameLength is the maximum length for category names.
	// Same rationale as post titles.
	MaxCategoryNameLength = 100

	// MaxDescriptionLength caps tag and category descriptions.
	MaxDescriptionLength = 500
)

package blogservice

import (
	"context"
	"fmt"
)

var sampleBlogs = []BlogInput{
	{
		Title:   "Welcome to the blog",
		Summary: "What this site is and how to get started.",
		Content: `# Welcome

This is the first post on the site. Register an account to start writing
your own posts, and use the star on any post to keep it in your favorites.

Posts are written in **Markdown**.`,
	},
	{
		Title:   "Writing posts in Markdown",
		Summary: "A short tour of the formatting you can use.",
		Content: `## Formatting

- *italic* and **bold**
- ` + "`inline code`" + `
- [links](https://example.com)

` + "```go\nfmt.Println(\"hello\")\n```",
	},
	{
		Title:   "Moderation on this site",
		Summary: "Who can edit and remove what.",
		Content: `Authors can edit and delete their own posts. Administrators can remove
any post or account that breaks the rules. Deleting an account removes
every post it wrote.`,
	},
}

// SeedSampleBlogs writes the bundled sample posts as ownerID and returns how many were stored.
func (s *BlogService) SeedSampleBlogs(ctx context.Context, ownerID int) (int, error) {
	for i, in := range sampleBlogs {
		blog := Blog{
			Title:   in.Title,
			Content: in.Content,
			Summary: in.Summary,
			UserID:  ownerID,
		}

		err := s.m.insert(ctx, &blog)
		if err != nil {
			return i, fmt.Errorf("could not seed sample blog %q: %w", in.Title, err)
		}
	}

	return len(sampleBlogs), nil
}

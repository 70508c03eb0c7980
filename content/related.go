package content

// RelatedPosts returns up to limit posts related to base: posts in the
// same category first, then everything else, both preserving the order of
// the posts argument (date-descending when it came from LoadAll). The
// base post itself is always excluded. There is no tie-break beyond list
// order among same-category candidates.
func RelatedPosts(base Post, posts []Post, limit int) []Post {
	if limit <= 0 {
		return nil
	}

	var sameCategory, rest []Post
	for _, p := range posts {
		if p.Slug == base.Slug {
			continue
		}
		if p.Category == base.Category {
			sameCategory = append(sameCategory, p)
		} else {
			rest = append(rest, p)
		}
	}

	related := append(sameCategory, rest...)
	if len(related) > limit {
		related = related[:limit]
	}
	return related
}

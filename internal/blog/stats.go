package blog

// Aggregations over a sequence of blogs. All of them are pure: they
// take an already fetched slice and never touch the repo, so the same
// input always yields the same result.
//
// Tie-breaks preserve input order: the first blog (or the first seen
// author) holding the maximum wins. Author attribution is accumulated
// through a first-seen-order list, never through map iteration order.

type AuthorBlogCount struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

func TotalLikes(blogs []Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an
// empty input. On a tie the earliest blog with the maximum wins.
func FavoriteBlog(blogs []Blog) *Blog {
	if len(blogs) == 0 {
		return nil
	}

	favorite := &blogs[0]
	for i := 1; i < len(blogs); i++ {
		if blogs[i].Likes > favorite.Likes {
			favorite = &blogs[i]
		}
	}
	return favorite
}

// MostBlogs returns the author with the most posts, or nil for an
// empty input.
func MostBlogs(blogs []Blog) *AuthorBlogCount {
	if len(blogs) == 0 {
		return nil
	}

	authors, counts := countPerAuthor(blogs, func(Blog) int { return 1 })

	top := &AuthorBlogCount{Author: authors[0], Blogs: counts[authors[0]]}
	for _, author := range authors[1:] {
		if counts[author] > top.Blogs {
			top = &AuthorBlogCount{Author: author, Blogs: counts[author]}
		}
	}
	return top
}

// MostLikes returns the author with the greatest cumulative likes
// across all their posts, or nil for an empty input.
func MostLikes(blogs []Blog) *AuthorLikes {
	if len(blogs) == 0 {
		return nil
	}

	authors, likes := countPerAuthor(blogs, func(b Blog) int { return b.Likes })

	top := &AuthorLikes{Author: authors[0], Likes: likes[authors[0]]}
	for _, author := range authors[1:] {
		if likes[author] > top.Likes {
			top = &AuthorLikes{Author: author, Likes: likes[author]}
		}
	}
	return top
}

// countPerAuthor accumulates a per-author sum of the given weight,
// returning the authors in the order they were first encountered.
func countPerAuthor(blogs []Blog, weight func(Blog) int) ([]string, map[string]int) {
	var authors []string
	sums := make(map[string]int)
	for _, b := range blogs {
		if _, seen := sums[b.Author]; !seen {
			authors = append(authors, b.Author)
		}
		sums[b.Author] += weight(b)
	}
	return authors, sums
}

package content

import (
	"strconv"
	"strings"
)

// ParsePageParam parses a page number from an arbitrary query string value.
// Missing, non-numeric, or non-positive input defaults to page 1;
// fractional input truncates toward zero.
func ParsePageParam(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 1
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		f, ferr := strconv.ParseFloat(value, 64)
		if ferr != nil {
			return 1
		}
		n = int(f)
	}
	if n <= 0 {
		return 1
	}
	return n
}

// Paginate slices posts into the window named by pageParam. Out-of-range
// pages clamp to the nearest valid page; an empty list always yields a
// single empty page rather than an error.
func Paginate(posts []Post, pageParam string) Page {
	if len(posts) == 0 {
		return Page{Posts: []Post{}, Number: 1, TotalPages: 1, TotalItems: 0}
	}

	totalPages := (len(posts) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := ParsePageParam(pageParam)
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(posts) {
		end = len(posts)
	}
	return Page{
		Posts:      posts[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: len(posts),
	}
}

// Package browse implements the derived-view pipeline: the pure
// computation that turns the full catalog plus the current browsing
// parameters into the visible page of results. It has no side effects
// and is recomputed whenever any parameter changes.
package browse

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/podgrid/podgrid/internal/models"
)

// SortOrder names one of the supported sort rules.
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortTitleAsc  SortOrder = "title-asc"
	SortTitleDesc SortOrder = "title-desc"
)

// DefaultPerPage is the number of podcasts shown per page.
const DefaultPerPage = 12

// SortOrders lists the supported orders in cycling sequence.
func SortOrders() []SortOrder {
	return []SortOrder{SortNewest, SortTitleAsc, SortTitleDesc}
}

// Label returns the display name for a sort order.
func (s SortOrder) Label() string {
	switch s {
	case SortNewest:
		return "Newest"
	case SortTitleAsc:
		return "Title A-Z"
	case SortTitleDesc:
		return "Title Z-A"
	default:
		return string(s)
	}
}

// Params holds the browsing parameters the user controls.
type Params struct {
	// SearchTerm is matched case-insensitively as a substring of the
	// podcast title after trimming whitespace. Empty means no filter.
	SearchTerm string

	// Genres selects genre ids to filter by, OR semantics. Empty means
	// no genre filter.
	Genres []int

	// Sort names the ordering rule. Unknown values leave the catalog
	// order untouched.
	Sort SortOrder

	// Page is 1-based.
	Page int

	// PerPage is the page size; values below 1 fall back to
	// DefaultPerPage.
	PerPage int
}

// Result is the derived view: the visible page plus paging totals.
type Result struct {
	// PageItems is a contiguous slice of the filtered and sorted set,
	// offset by (Page-1)*PerPage. Length is at most PerPage.
	PageItems []models.Podcast

	TotalItems int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// ComputeView filters, sorts and paginates the catalog, in that order.
// It is a pure function of its inputs and never mutates the catalog
// slice.
func ComputeView(podcasts []models.Podcast, p Params) Result {
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.Page < 1 {
		p.Page = 1
	}

	matched := filterBySearch(podcasts, p.SearchTerm)
	matched = filterByGenres(matched, p.Genres)
	sortPodcasts(matched, p.Sort)

	total := len(matched)
	totalPages := (total + p.PerPage - 1) / p.PerPage

	start := (p.Page - 1) * p.PerPage
	end := start + p.PerPage
	var page []models.Podcast
	if start < total {
		if end > total {
			end = total
		}
		page = matched[start:end]
	}

	return Result{
		PageItems:  page,
		TotalItems: total,
		TotalPages: totalPages,
		HasPrev:    p.Page > 1,
		HasNext:    p.Page < totalPages,
	}
}

// filterBySearch keeps podcasts whose title contains the trimmed term,
// case-insensitively. Always returns a fresh slice so the caller may
// sort it without touching the input.
func filterBySearch(podcasts []models.Podcast, term string) []models.Podcast {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(podcasts)
	}

	matched := make([]models.Podcast, 0, len(podcasts))
	for _, p := range podcasts {
		if strings.Contains(strings.ToLower(p.Title), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

// filterByGenres keeps podcasts tagged with at least one selected genre.
func filterByGenres(podcasts []models.Podcast, genres []int) []models.Podcast {
	if len(genres) == 0 {
		return podcasts
	}

	matched := podcasts[:0]
	for _, p := range podcasts {
		if slices.ContainsFunc(p.Genres, func(id int) bool {
			return slices.Contains(genres, id)
		}) {
			matched = append(matched, p)
		}
	}
	return matched
}

// sortPodcasts orders the slice in place by the named rule. The sort is
// stable, so records with equal keys keep their relative order. Unknown
// orders leave the slice untouched.
func sortPodcasts(podcasts []models.Podcast, order SortOrder) {
	switch order {
	case SortNewest:
		slices.SortStableFunc(podcasts, func(a, b models.Podcast) int {
			return b.Updated.Compare(a.Updated)
		})
	case SortTitleAsc, SortTitleDesc:
		c := collate.New(language.English, collate.Loose)
		slices.SortStableFunc(podcasts, func(a, b models.Podcast) int {
			cmp := c.CompareString(a.Title, b.Title)
			if order == SortTitleDesc {
				cmp = -cmp
			}
			return cmp
		})
	}
}

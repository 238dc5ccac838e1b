// Package models defines the catalog records PodGrid browses.
package models

import (
	"slices"
	"time"
)

// Podcast is a single show from the remote catalog. Records are decoded
// once at startup and read-only from then on; the browsing pipeline
// never mutates them.
type Podcast struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Seasons     int       `json:"seasons"`
	Genres      []int     `json:"genres"`
	Updated     time.Time `json:"updated"`
}

// HasGenre reports whether the podcast is tagged with the given genre.
func (p Podcast) HasGenre(id int) bool {
	return slices.Contains(p.Genres, id)
}

// GenreTitles resolves the podcast's genre ids to display names.
func (p Podcast) GenreTitles() []string {
	titles := make([]string, 0, len(p.Genres))
	for _, id := range p.Genres {
		titles = append(titles, GenreTitle(id))
	}
	return titles
}

package models

import "sort"

// Genre is static reference data: a display name for a genre id plus the
// shows tagged with it. Shows is used only for a display count.
type Genre struct {
	ID    int
	Title string
	Shows []string
}

// genreTitles is the catalog's fixed genre taxonomy. The API identifies
// genres by number only; the names are not part of the wire format.
var genreTitles = map[int]string{
	1: "Personal Growth",
	2: "Investigative Journalism",
	3: "History",
	4: "Comedy",
	5: "Entertainment",
	6: "Business",
	7: "Fiction",
	8: "News",
	9: "Kids and Family",
}

// GenreTitle returns the display name for a genre id, or "Unknown" for
// ids outside the taxonomy.
func GenreTitle(id int) string {
	if title, ok := genreTitles[id]; ok {
		return title
	}
	return "Unknown"
}

// GenreIDs returns all known genre ids in ascending order.
func GenreIDs() []int {
	ids := make([]int, 0, len(genreTitles))
	for id := range genreTitles {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// BuildGenres assembles the genre reference list from the fetched
// catalog, attaching to each genre the ids of the shows tagged with it.
func BuildGenres(podcasts []Podcast) []Genre {
	genres := make([]Genre, 0, len(genreTitles))
	for _, id := range GenreIDs() {
		g := Genre{ID: id, Title: genreTitles[id]}
		for _, p := range podcasts {
			if p.HasGenre(id) {
				g.Shows = append(g.Shows, p.ID)
			}
		}
		genres = append(genres, g)
	}
	return genres
}

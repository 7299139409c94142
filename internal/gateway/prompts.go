// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package gateway

import (
	"fmt"
	"sort"
	"strings"

	"google.golang.org/genai"

	"github.com/tomtom215/cinetrack/internal/models"
)

// historyContextSize is how many top-rated entries seed a personalized pick.
const historyContextSize = 8

// trendingListMax caps each trending list.
const trendingListMax = 10

func detailsPrompt(title, director string) string {
	by := ""
	if director != "" {
		by = fmt.Sprintf(" directed by %q", director)
	}
	return fmt.Sprintf(`Provide factual details for the movie or TV show titled %q%s.
Reference data from Douban (豆瓣) or IMDb.
Return JSON with the following fields in **Simplified Chinese**:
- "director": The director's name in Chinese (e.g. 克里斯托弗·诺兰).
- "year": Release year (number).
- "genre": Primary genre in Chinese (e.g. 剧情, 科幻).
- "summary": A very short 1-sentence summary in Chinese.
- "posterUrl": A valid public HTTPS URL to the poster (vertical format) if available, otherwise an empty string.`, title, by)
}

var detailsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"director":  {Type: genai.TypeString},
		"year":      {Type: genai.TypeInteger},
		"genre":     {Type: genai.TypeString},
		"summary":   {Type: genai.TypeString},
		"posterUrl": {Type: genai.TypeString},
	},
	Required: []string{"director", "year", "genre", "summary"},
}

// topRated returns up to n entries by descending rating, keeping input order
// among equal ratings. Ratings outside 1..5 rank as unrated.
func topRated(history []models.MovieEntry, n int) []models.MovieEntry {
	sorted := make([]models.MovieEntry, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].NormalizedRating() > sorted[j].NormalizedRating()
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func pickPrompt(history []models.MovieEntry) string {
	top := topRated(history, historyContextSize)
	historyText := "The user has no history yet. Recommend a universally acclaimed visual masterpiece."
	if len(top) > 0 {
		parts := make([]string, len(top))
		for i, e := range top {
			parts[i] = fmt.Sprintf("%s (%d stars)", e.Title, e.NormalizedRating())
		}
		historyText = "Based on the user's highly rated history: " + strings.Join(parts, ", ")
	}
	return historyText + `

Recommend ONE single movie or TV show that the user has likely NOT watched yet but would love.
Return JSON in **Simplified Chinese**:
- "title": Title.
- "year": Release year (string).
- "director": Director name.
- "genre": Primary genre.
- "reason": A short, persuasive 1-sentence reason why this fits their taste (e.g. "既然你喜欢诺兰，这部烧脑神作不可错过").
- "posterUrl": A valid public HTTPS URL to the poster (high quality vertical image).`
}

var pickSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":     {Type: genai.TypeString},
		"year":      {Type: genai.TypeString},
		"director":  {Type: genai.TypeString},
		"genre":     {Type: genai.TypeString},
		"reason":    {Type: genai.TypeString},
		"posterUrl": {Type: genai.TypeString},
	},
	Required: []string{"title", "year", "director", "genre", "reason", "posterUrl"},
}

const trendingPrompt = `Generate two distinct lists of global movie/TV recommendations for a home screen:

1. "latest": The Top 10 recently released movies or TV shows, strictly sorted by highest combined IMDb/Douban rating (high score first).
2. "upcoming": The Top 10 highly anticipated upcoming movies or TV shows, sorted by popularity/anticipation.

Return a JSON object with two arrays: "latest" and "upcoming".
Each item must have:
- title: Title in Simplified Chinese (e.g. 沙丘2).
- year: Release year (string, e.g. "2024").
- type: "movie" or "tv".
- imdbRating: Estimated IMDb rating (e.g. "8.2") or "N/A" if unreleased.
- doubanRating: Estimated Douban rating (e.g. "8.5") or "N/A" if unreleased.
- reason: A short 2-4 character catchy tag in Chinese (e.g. 口碑炸裂, 值得期待).`

var trendingItemSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":        {Type: genai.TypeString},
		"year":         {Type: genai.TypeString},
		"type":         {Type: genai.TypeString},
		"imdbRating":   {Type: genai.TypeString},
		"doubanRating": {Type: genai.TypeString},
		"reason":       {Type: genai.TypeString},
	},
	Required: []string{"title", "year", "type", "imdbRating", "doubanRating", "reason"},
}

var trendingSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"latest":   {Type: genai.TypeArray, Items: trendingItemSchema},
		"upcoming": {Type: genai.TypeArray, Items: trendingItemSchema},
	},
	Required: []string{"latest", "upcoming"},
}

func recapPrompt(entries []models.MovieEntry, year int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here is a list of movies I watched in %d:\n", year)
	for _, e := range entries {
		fmt.Fprintf(&b, "%s (%d/5 stars, Dir: %s)\n", e.Title, e.NormalizedRating(), e.Director)
	}
	b.WriteString("\nWrite a short, fun, 2-3 sentence personalized recap of my movie year in **Simplified Chinese**. ")
	b.WriteString("Mention my favorite director or genre if obvious. Be encouraging and use a casual tone like a Douban review.")
	return b.String()
}

// stripCodeFence removes Markdown ```json fences some responses carry.
func stripCodeFence(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

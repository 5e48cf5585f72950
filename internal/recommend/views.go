// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package recommend

import (
	"sort"
	"strings"
)

// View is a read handle on one published index. Every call on the same View
// answers from the same catalog, however many rebuilds happen meanwhile, so
// a matched title, its neighbors and the fingerprint they are cached under
// always belong together.
type View struct {
	snap   *snapshot
	engine *Engine
}

// Match is the outcome of a recommendation query.
type Match struct {
	// MatchedTitle is the catalog title the query resolved to, or "".
	MatchedTitle string `json:"matched_title"`

	Results []Result `json:"results"`
}

// View pins the currently published index.
func (e *Engine) View() View {
	return View{snap: e.current.Load(), engine: e}
}

// State returns the state of the pinned index.
func (v View) State() State {
	return v.snap.state()
}

// Generation returns the build generation of the pinned index, 0 before the
// first Build.
func (v View) Generation() uint64 {
	if v.snap == nil {
		return 0
	}
	return v.snap.generation
}

// Fingerprint identifies the content of the pinned index. Engines built from
// the same catalog and overview settings share a fingerprint, in this process
// or any other. It is "" before the first Build.
func (v View) Fingerprint() string {
	if v.snap == nil {
		return ""
	}
	return v.snap.fingerprint
}

// Status describes the pinned index.
func (v View) Status() Status {
	snap := v.snap
	if snap == nil {
		return Status{State: StateUnbuilt}
	}
	return Status{
		State:           snap.state(),
		Generation:      snap.generation,
		Fingerprint:     snap.fingerprint,
		Titles:          len(snap.catalog),
		FeatureWidth:    snap.features.Cols,
		GenreCount:      len(snap.features.Genres),
		BuiltAt:         snap.builtAt,
		BuildDurationMS: snap.buildDuration.Milliseconds(),
	}
}

// Match resolves title and returns up to limit titles most similar to it,
// best first, excluding the matched title itself. Results are empty when the
// index is unbuilt, the query matches nothing or limit <= 0.
func (v View) Match(title string, limit int) Match {
	v.engine.queryCount.Add(1)

	snap := v.snap
	if snap.state() != StateReady || limit <= 0 {
		v.engine.missCount.Add(1)
		return Match{Results: []Result{}}
	}

	row := resolveTitle(snap.lowered, title)
	if row < 0 {
		v.engine.missCount.Add(1)
		v.engine.logger.Debug().Str("title", title).Msg("no catalog title matches query")
		return Match{Results: []Result{}}
	}

	neighbors := rankNeighbors(snap.similarity, row, limit)
	results := make([]Result, 0, len(neighbors))
	for _, j := range neighbors {
		rec := &snap.catalog[j]
		results = append(results, Result{
			Title:    rec.Title,
			Platform: rec.PlatformString(),
			Rating:   rec.Rating,
			Year:     rec.Year,
			Score:    scorePercent(snap.similarity.At(row, j)),
		})
	}
	if len(results) == 0 {
		v.engine.missCount.Add(1)
	}
	return Match{MatchedTitle: snap.catalog[row].Title, Results: results}
}

// Resolve returns the catalog title a query resolves to. The second return
// value is false when nothing matches or the index is unbuilt.
func (v View) Resolve(title string) (string, bool) {
	if v.snap.state() != StateReady {
		return "", false
	}
	row := resolveTitle(v.snap.lowered, title)
	if row < 0 {
		return "", false
	}
	return v.snap.catalog[row].Title, true
}

// Search returns up to limit titles whose name contains query, compared
// case-insensitively, in catalog order.
func (v View) Search(query string, limit int) []TitleSummary {
	snap := v.snap
	q := strings.ToLower(strings.TrimSpace(query))
	if snap.state() != StateReady || q == "" || limit <= 0 {
		return []TitleSummary{}
	}

	out := make([]TitleSummary, 0, min(limit, 16))
	for i, t := range snap.lowered {
		if !strings.Contains(t, q) {
			continue
		}
		out = append(out, summarize(&snap.catalog[i]))
		if len(out) == limit {
			break
		}
	}
	return out
}

// ByPlatform returns every title available on the named platform, in catalog
// order. The name is matched case-insensitively against the fixed platform
// set; the second return value is false for unknown platforms.
func (v View) ByPlatform(name string) ([]TitleSummary, bool) {
	platform, ok := CanonicalPlatform(name)
	if !ok {
		return nil, false
	}
	snap := v.snap
	if snap.state() != StateReady {
		return []TitleSummary{}, true
	}

	out := make([]TitleSummary, 0)
	for i := range snap.catalog {
		if snap.catalog[i].AvailableOn(platform) {
			out = append(out, summarize(&snap.catalog[i]))
		}
	}
	return out, true
}

// TopRated returns up to limit titles ordered by rating, highest first.
// Equal ratings keep catalog order.
func (v View) TopRated(limit int) []TitleSummary {
	if v.snap.state() != StateReady || limit <= 0 {
		return []TitleSummary{}
	}
	return topRated(v.snap.catalog, limit)
}

// Overview summarizes the pinned catalog: title count, availability per
// platform, the most common genres and the highest rated titles.
func (v View) Overview() Overview {
	snap := v.snap
	ov := Overview{
		Platforms: make([]CountEntry, len(Platforms)),
		TopGenres: []CountEntry{},
		TopRated:  []TitleSummary{},
	}
	for i, p := range Platforms {
		ov.Platforms[i] = CountEntry{Name: p}
	}
	if snap.state() != StateReady {
		return ov
	}

	cfg := v.engine.config.Overview
	ov.TotalTitles = len(snap.catalog)
	genreCounts := make(map[string]int)
	for i := range snap.catalog {
		rec := &snap.catalog[i]
		for j, p := range Platforms {
			if rec.AvailableOn(p) {
				ov.Platforms[j].Count++
			}
		}
		for _, g := range genreSet(rec.Genres) {
			genreCounts[g]++
		}
	}

	genres := make([]CountEntry, 0, len(genreCounts))
	for name, n := range genreCounts {
		genres = append(genres, CountEntry{Name: name, Count: n})
	}
	sort.Slice(genres, func(a, b int) bool {
		if genres[a].Count != genres[b].Count {
			return genres[a].Count > genres[b].Count
		}
		return genres[a].Name < genres[b].Name
	})
	if len(genres) > cfg.TopGenres {
		genres = genres[:cfg.TopGenres]
	}
	ov.TopGenres = genres
	ov.TopRated = topRated(snap.catalog, cfg.TopRated)
	return ov
}

// Titles returns every catalog title in catalog order.
func (v View) Titles() []string {
	if v.snap == nil {
		return []string{}
	}
	out := make([]string, len(v.snap.catalog))
	for i := range v.snap.catalog {
		out[i] = v.snap.catalog[i].Title
	}
	return out
}

// Search answers from the currently published index. See View.Search.
func (e *Engine) Search(query string, limit int) []TitleSummary {
	return e.View().Search(query, limit)
}

// ByPlatform answers from the currently published index. See View.ByPlatform.
func (e *Engine) ByPlatform(name string) ([]TitleSummary, bool) {
	return e.View().ByPlatform(name)
}

// TopRated answers from the currently published index.
func (e *Engine) TopRated(limit int) []TitleSummary {
	return e.View().TopRated(limit)
}

// Overview answers from the currently published index.
func (e *Engine) Overview() Overview {
	return e.View().Overview()
}

// Titles returns every published catalog title in catalog order.
func (e *Engine) Titles() []string {
	return e.View().Titles()
}

func topRated(catalog []TitleRecord, limit int) []TitleSummary {
	order := make([]int, len(catalog))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return catalog[order[a]].Rating > catalog[order[b]].Rating
	})
	if len(order) > limit {
		order = order[:limit]
	}
	out := make([]TitleSummary, 0, len(order))
	for _, i := range order {
		out = append(out, summarize(&catalog[i]))
	}
	return out
}

func summarize(rec *TitleRecord) TitleSummary {
	genres := genreSet(rec.Genres)
	if genres == nil {
		genres = []string{}
	}
	return TitleSummary{
		Title:     rec.Title,
		Genres:    genres,
		Platform:  rec.PlatformString(),
		Platforms: rec.PlatformList(),
		Rating:    rec.Rating,
		Year:      rec.Year,
	}
}

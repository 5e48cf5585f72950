// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

/*
Package cache provides response caching and title autocomplete.

# Result Cache

ResultCache stores encoded API payloads. Two backends are available:

  - memory: an in-process LFU with TTL (see LFU)
  - redis: a shared cache for multiple instances

Keys built with Key carry the content fingerprint of the index they were
computed from:

	view := engine.View()
	key := cache.Key(view.Fingerprint(), "recommend", title, strconv.Itoa(limit))

Instances sharing a redis backend reuse each other's entries only while
they serve the same catalog. Entries for a replaced catalog are never read
again and age out through their TTL.

Backend failures are logged and counted in cache_errors_total; callers see
a miss.

# Autocomplete

Trie is a case-insensitive prefix tree over titles. SuggestIndex rebuilds it
lazily whenever the generation changes:

	trie := suggest.For(engine.Generation(), engine.Titles)
	matches := trie.Suggest("stra", 10)
*/
package cache

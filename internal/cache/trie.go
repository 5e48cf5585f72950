// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package cache

import (
	"sort"
	"strings"
	"sync"
)

type trieNode struct {
	children map[rune]*trieNode
	title    string // original spelling, set on terminal nodes
	count    int    // catalog entries sharing this title
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Suggestion is an autocomplete match.
type Suggestion struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// Trie is a case-insensitive prefix tree over titles. It is safe for
// concurrent use.
type Trie struct {
	mu   sync.RWMutex
	root *trieNode
	size int
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert adds a title. Inserting the same title again, in any case, counts
// it once more and keeps the first spelling. Blank titles are ignored.
func (t *Trie) Insert(title string) {
	key := strings.ToLower(strings.TrimSpace(title))
	if key == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, ch := range key {
		next := node.children[ch]
		if next == nil {
			next = newTrieNode()
			node.children[ch] = next
		}
		node = next
	}
	if node.count == 0 {
		node.title = strings.TrimSpace(title)
		t.size++
	}
	node.count++
}

// Suggest returns up to limit titles starting with prefix, most frequent
// first, then alphabetically.
func (t *Trie) Suggest(prefix string, limit int) []Suggestion {
	out := []Suggestion{}
	key := strings.ToLower(strings.TrimSpace(prefix))
	if key == "" || limit <= 0 {
		return out
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.root
	for _, ch := range key {
		if node = node.children[ch]; node == nil {
			return out
		}
	}

	collect(node, &out)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Title < out[j].Title
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func collect(node *trieNode, out *[]Suggestion) {
	if node.count > 0 {
		*out = append(*out, Suggestion{Title: node.title, Count: node.count})
	}
	for _, child := range node.children {
		collect(child, out)
	}
}

// Size returns the number of distinct titles.
func (t *Trie) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// SuggestIndex keeps a Trie in step with the published index generation.
type SuggestIndex struct {
	mu         sync.Mutex
	generation uint64
	trie       *Trie
}

// NewSuggestIndex creates an empty index.
func NewSuggestIndex() *SuggestIndex {
	return &SuggestIndex{}
}

// For returns the trie for generation, rebuilding it from titles when the
// generation changed since the last call.
func (s *SuggestIndex) For(generation uint64, titles func() []string) *Trie {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trie != nil && s.generation == generation {
		return s.trie
	}
	trie := NewTrie()
	for _, title := range titles() {
		trie.Insert(title)
	}
	s.trie = trie
	s.generation = generation
	return trie
}

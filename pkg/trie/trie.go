// Package trie implements a character-indexed prefix tree. It backs the
// completion vocabulary of an argument model: option flags and subcommand
// names are inserted as words, and prefix search drives candidate
// enumeration for the word under the cursor.
package trie

import (
	"errors"
	"fmt"
	"iter"
)

// ErrPrefixNotFound indicates that no stored word begins with the given
// prefix.
var ErrPrefixNotFound = errors.New("trie: prefix not found")

type node[V any] struct {
	children map[rune]*node[V]
	value    V
	hasValue bool
}

// Tree is a prefix tree mapping words to values of type V.
type Tree[V any] struct {
	root node[V]
	size int
}

// New creates an empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// Len reports the number of words stored in the tree.
func (t *Tree[V]) Len() int {
	return t.size
}

// Insert stores value under word, creating any missing intermediate nodes
// along the way. Re-inserting an existing word overwrites its value.
func (t *Tree[V]) Insert(word string, value V) {
	n := &t.root
	for _, r := range word {
		if n.children == nil {
			n.children = make(map[rune]*node[V])
		}
		child, ok := n.children[r]
		if !ok {
			child = &node[V]{}
			n.children[r] = child
		}
		n = child
	}
	if !n.hasValue {
		t.size++
	}
	n.value = value
	n.hasValue = true
}

// Find walks the tree along prefix, character by character, and returns a
// handle to the node reached. The node represents every stored word that
// begins with prefix, whether or not the node itself carries a value. It
// fails with ErrPrefixNotFound as soon as a character has no matching edge;
// an empty prefix against an empty tree is also a miss.
func (t *Tree[V]) Find(prefix string) (*Node[V], error) {
	if t.size == 0 {
		return nil, fmt.Errorf("%w: %q", ErrPrefixNotFound, prefix)
	}
	n := &t.root
	for _, r := range prefix {
		child, ok := n.children[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrPrefixNotFound, prefix)
		}
		n = child
	}
	return &Node[V]{prefix: prefix, n: n}, nil
}

// FindExact is Find restricted to complete words: it succeeds only when
// word itself was previously inserted.
func (t *Tree[V]) FindExact(word string) (*Node[V], error) {
	nd, err := t.Find(word)
	if err != nil {
		return nil, err
	}
	if !nd.n.hasValue {
		return nil, fmt.Errorf("%w: %q", ErrPrefixNotFound, word)
	}
	return nd, nil
}

// Node is a handle to a position in a tree, reached through Find or
// FindExact.
type Node[V any] struct {
	prefix string
	n      *node[V]
}

// Prefix returns the character path from the root to this node.
func (nd *Node[V]) Prefix() string {
	return nd.prefix
}

// Value returns the value stored at this node, if any.
func (nd *Node[V]) Value() (V, bool) {
	return nd.n.value, nd.n.hasValue
}

// Words enumerates every value-bearing word at or below the node, each
// reported as its full character path paired with its stored value. Every
// call starts a fresh depth-first traversal, so the sequence is restartable.
// Enumeration order is unspecified.
func (nd *Node[V]) Words() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		walk(nd.prefix, nd.n, yield)
	}
}

func walk[V any](prefix string, n *node[V], yield func(string, V) bool) bool {
	if n.hasValue && !yield(prefix, n.value) {
		return false
	}
	for r, child := range n.children {
		if !walk(prefix+string(r), child, yield) {
			return false
		}
	}
	return true
}

// Package edgelist reads and writes the plain-text edge-list fixture format.
//
// One edge per line, three whitespace-separated base-10 integers:
//
//	<src> <dst> <weight>
//
// Writers always emit a single space between fields and a trailing '\n'.
// Readers accept any run of spaces or tabs, skip blank lines and lines whose
// first non-blank character is '#'.
//
// Writers do not validate edges: self-loops, duplicates and out-of-range
// indices are written as given.
package edgelist

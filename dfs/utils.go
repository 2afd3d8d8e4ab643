// Package dfs provides common helper functions used by cycle detection:
// index-slice operations and Booth's minimal-rotation algorithm.
package dfs

import (
	"strconv"
	"strings"
)

// IndexOf returns the first index of val in s, or -1 if not found.
func IndexOf(s []int, val int) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}
	return -1
}

// Reverse returns a new slice containing the elements of s in reverse order.
func Reverse(s []int) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}
	return out
}

// Compare lexicographically compares a and b; a proper prefix sorts first.
// Returns -1, 0 or +1.
func Compare(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// JoinSig concatenates the elements of c with commas, producing a single
// string signature.
func JoinSig(c []int) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// MinimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s in O(n) time. It returns a new slice; s is untouched.
func MinimalRotation(s []int) []int {
	n := len(s)
	if n == 0 {
		return []int{}
	}
	doubled := make([]int, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)

	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0 // start of the best rotation so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // i == -1 here
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]int, n)
	copy(res, doubled[k:k+n])
	return res
}

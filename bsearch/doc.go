// Package bsearch implements binary search over sorted, randomly indexable
// sequences, driven by a three-way comparison.
package bsearch

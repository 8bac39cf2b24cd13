// Package language normalizes the language codes parsed out of filenames
// and renders them for folders and summaries.
package language

// Package main provides the entry point for the imgscan CLI.
//
// imgscan fetches one web page, collects the image URLs referenced by its
// markup and CSS, and prints them. When fzf and an image renderer are
// available the results can be browsed with thumbnails.
//
// Usage:
//
//	imgscan [flags] URL
//	imgscan init
//
// See --help for all available options.
package main

func main() {
	Execute()
}

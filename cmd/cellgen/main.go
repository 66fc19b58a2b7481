// Package main provides the cellgen CLI, which generates per-plugin
// lighting-template configuration files from cell-export listings.
package main

func main() {
	Execute()
}

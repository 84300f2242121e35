// Package main provides the entry point for the sstatic maintenance page server.
package main

func main() {
	Execute()
}

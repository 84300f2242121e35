package main

import "fmt"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func buildInfo() string {
	return fmt.Sprintf("%s (date: %s, commit: %s)",
		orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

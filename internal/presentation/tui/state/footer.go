package state

import "strings"

// FooterText returns the footer content for the current route.
func FooterText(route Route, loading bool, status, helpText string) string {
	status = strings.TrimSpace(status)
	if route == GeneratorRoute && loading && status != "" {
		if helpText == "" {
			return status
		}
		return status + "\n" + helpText
	}
	return helpText
}

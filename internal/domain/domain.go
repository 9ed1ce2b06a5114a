package domain

import "strings"

// SystemSender is the author recorded on notes the system itself writes,
// such as the mutual crush announcement.
const SystemSender = "system"

// FormatList renders a name list the way the query operations expose them:
// an empty list is the literal "{}", anything else is the elements
// comma-joined between braces, in insertion order.
func FormatList(items []string) string {
	if len(items) == 0 {
		return "{}"
	}
	return "{" + strings.Join(items, ",") + "}"
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func remove(list []string, s string) []string {
	for i, item := range list {
		if item == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

package util

// ContainsString checks if a string is present in a slice of strings.
func ContainsString(slice []string, contains string) bool {
	for _, value := range slice {
		if value == contains {
			return true
		}
	}

	return false
}

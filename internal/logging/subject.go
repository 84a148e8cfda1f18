package logging

import "strings"

// FormatSubject builds the application/guild subject string used in console output.
func FormatSubject(applicationID, guildID string) string {
	applicationID = strings.TrimSpace(applicationID)
	guildID = strings.TrimSpace(guildID)
	parts := make([]string, 0, 2)
	if applicationID != "" {
		parts = append(parts, "App "+applicationID)
	}
	if guildID != "" {
		parts = append(parts, "Guild "+guildID)
	}
	return strings.Join(parts, " · ")
}

// Package decision turns the upstream labeled-string list into a structured
// multi-intent decision set for the dispatcher.
package decision

import "strings"

// AutomationVerbs are the labels that route an entry to the OS automation
// collaborator.
var AutomationVerbs = []string{
	"open", "close", "play", "system", "content", "google search", "youtube search",
}

// Decision is the parsed form of one labeled decision list.
type Decision struct {
	// Entries preserves the original list in order.
	Entries []string

	General  bool
	Realtime bool

	// MergedQuery joins the payloads of every general/realtime entry with
	// " and ", in list order.
	MergedQuery string

	// HasImage marks an image branch; ImageQuery is the full matching entry
	// (trigger words are stripped downstream by the image capability).
	HasImage   bool
	ImageQuery string

	// HasVideo marks a video branch; VideoQuery is the matching entry with the
	// literal word "video" removed and trimmed.
	HasVideo   bool
	VideoQuery string

	// AutomationBatch is the entire decision list whenever any entry matches an
	// automation verb. The automation collaborator receives full context, not
	// just the matching entries.
	AutomationBatch []string

	Exit bool
}

// payload returns everything after the first word of an entry.
func payload(entry string) string {
	fields := strings.Fields(entry)
	if len(fields) < 2 {
		return ""
	}
	return strings.Join(fields[1:], " ")
}

// isAutomation reports whether the entry starts with an automation verb.
func isAutomation(entry string) bool {
	for _, verb := range AutomationVerbs {
		if strings.HasPrefix(entry, verb) {
			return true
		}
	}
	return false
}

// Parse builds a Decision from the labeled list. Within each category the
// first matching entry wins.
func Parse(entries []string) Decision {
	d := Decision{Entries: entries}

	var merged []string
	for _, entry := range entries {
		if strings.HasPrefix(entry, "general") {
			d.General = true
			merged = append(merged, payload(entry))
		}
		if strings.HasPrefix(entry, "realtime") {
			d.Realtime = true
			merged = append(merged, payload(entry))
		}
	}
	d.MergedQuery = strings.Join(merged, " and ")

	for _, entry := range entries {
		if strings.Contains(entry, "image") {
			d.HasImage = true
			d.ImageQuery = entry
			break
		}
	}

	for _, entry := range entries {
		if strings.Contains(entry, "video") {
			d.HasVideo = true
			d.VideoQuery = strings.TrimSpace(strings.ReplaceAll(entry, "video", ""))
			break
		}
	}

	for _, entry := range entries {
		if isAutomation(entry) {
			d.AutomationBatch = entries
			break
		}
	}

	for _, entry := range entries {
		if strings.Contains(entry, "exit") {
			d.Exit = true
			break
		}
	}

	return d
}

package utils

import "strings"

// crisisKeywords are phrases that indicate a user may be in immediate distress.
var crisisKeywords = []string{
	"suicide", "kill myself", "end my life", "want to die",
	"hurt myself", "self harm", "no reason to live", "better off dead",
	"overdose", "jump off", "end it all", "can't go on",
}

// DetectCrisisKeywords reports whether the message contains crisis-related
// phrases, along with the phrases that matched.
func DetectCrisisKeywords(message string) (bool, []string) {
	lower := strings.ToLower(message)
	var matched []string
	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}
	return len(matched) > 0, matched
}

// CrisisResources is the helpline text prepended to model replies when a
// crisis keyword is detected.
const CrisisResources = `If you are in immediate distress, please reach out now:
- India: AASRA 91-9820466926 (24/7), Vandrevala Foundation 1860-2662-345 (24/7)
- USA: National Suicide Prevention Lifeline 988 (24/7), Crisis Text Line: text HOME to 741741
- UK: Samaritans 116 123 (24/7)
- International: Befrienders Worldwide, https://befrienders.org/
You are not alone, and help is available.`

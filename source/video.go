package source

// VideoBundle is the playable outcome of resolving an episode.
type VideoBundle struct {
	// Source URLs in resolver order; the first one is preferred.
	Sources []string `json:"sources"`
	Title   string   `json:"title"`
	// Navigation token of the episode the bundle was resolved from.
	CanonicalURI string `json:"canonical_uri"`
}

// Preferred returns the first source, or an empty string for an empty bundle.
func (v *VideoBundle) Preferred() string {
	if v == nil || len(v.Sources) == 0 {
		return ""
	}
	return v.Sources[0]
}

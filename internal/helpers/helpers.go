package helpers

import "strings"

func StringTrim(s string) string {
	return strings.TrimSpace(s)
}

// TrimID normalizes incoming ids: trims spaces and surrounding quotes which
// may occur when clients pass values as JSON strings or templates.
func TrimID(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}

// FilterHTTPURLs splits newline-separated text into trimmed lines, keeping
// only those that look like externally hosted URLs.
func FilterHTTPURLs(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var urls []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && strings.HasPrefix(line, "http") {
			urls = append(urls, line)
		}
	}
	return urls
}

// MergeImageSources combines freshly uploaded file paths with externally
// hosted URLs, uploads first, deduplicated and truncated to the resource's
// image cap.
func MergeImageSources(uploaded []string, urlText string, max int) []string {
	images := make([]string, 0, len(uploaded))
	images = append(images, uploaded...)
	images = append(images, FilterHTTPURLs(urlText)...)
	images = RemoveDuplicates(images)
	if len(images) > max {
		images = images[:max]
	}
	return images
}

// RemoveDuplicates drops repeated entries preserving first-seen order.
func RemoveDuplicates(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

package youtube

import (
	"fmt"
	"net/url"
	"strings"
)

// ConvertURLToVideoID takes everything after the last '?' and drops its
// first two characters, which are expected to be "v=".
// Any other layout (v= not first, youtu.be links) yields a wrong ID.
func ConvertURLToVideoID(rawURL string) string {
	query := rawURL
	if i := strings.LastIndex(rawURL, "?"); i >= 0 {
		query = rawURL[i+1:]
	}
	r := []rune(query)
	if len(r) < 2 {
		return ""
	}
	return string(r[2:])
}

// ParseVideoID extracts the video ID from watch, embed, shorts and youtu.be URLs.
func ParseVideoID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("invalid video url: %w", err)
	}

	if id := u.Query().Get("v"); id != "" {
		return id, nil
	}

	path := strings.Trim(u.Path, "/")
	if strings.EqualFold(u.Hostname(), "youtu.be") && path != "" {
		return strings.SplitN(path, "/", 2)[0], nil
	}
	for _, prefix := range []string{"embed/", "shorts/", "live/"} {
		if strings.HasPrefix(path, prefix) {
			if id := strings.TrimPrefix(path, prefix); id != "" {
				return strings.SplitN(id, "/", 2)[0], nil
			}
		}
	}

	return "", fmt.Errorf("no video id in %q", rawURL)
}

// VideoIDToURL builds the watch URL for a video.
func VideoIDToURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
}

// EmbedURL builds the iframe URL for a video.
func EmbedURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s", videoID)
}

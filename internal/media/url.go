package media

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// DefaultBaseURL is the asset host used when MEDIA_BASE_URL is unset.
const DefaultBaseURL = "https://res.cloudinary.com/dkpnqajrx/"

// Expand turns a stored asset reference into a public URL. Absolute URLs are
// returned unchanged and an empty reference stays empty.
func Expand(baseURL, ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(ref, "/")
}

// ObjectKey builds a collision-free key for an uploaded file, keeping its
// extension.
func ObjectKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join(prefix, uuid.NewString()+ext)
}

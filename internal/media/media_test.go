package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name, base, ref, want string
	}{
		{"default host", "", "video/upload/rain.mp3", DefaultBaseURL + "video/upload/rain.mp3"},
		{"custom host without slash", "https://cdn.example.com", "a.mp3", "https://cdn.example.com/a.mp3"},
		{"double slash collapsed", "https://cdn.example.com/", "/a.mp3", "https://cdn.example.com/a.mp3"},
		{"absolute kept", "https://cdn.example.com/", "https://other.example.com/a.mp3", "https://other.example.com/a.mp3"},
		{"empty ref", "https://cdn.example.com/", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.base, tt.ref))
		})
	}
}

func TestObjectKey(t *testing.T) {
	a := ObjectKey("audio", "Rain Sounds.MP3")
	b := ObjectKey("audio", "Rain Sounds.MP3")
	assert.True(t, strings.HasPrefix(a, "audio/"))
	assert.True(t, strings.HasSuffix(a, ".mp3"))
	assert.NotEqual(t, a, b)
}

func TestNewMinioStoreRejectsBadEndpoint(t *testing.T) {
	_, err := NewMinioStore("", "key", "secret", "audio", false, "")
	require.Error(t, err)

	_, err = NewMinioStore("localhost:9000", "key", "secret", "audio", false, "not a url")
	require.Error(t, err)

	store, err := NewMinioStore("localhost:9000", "key", "secret", "audio", false, "")
	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestMinioObjectURL(t *testing.T) {
	store, err := NewMinioStore("localhost:9000", "key", "secret", "audio", false, "")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/audio/tracks/a.mp3", store.ObjectURL("tracks/a.mp3"))

	store, err = NewMinioStore("minio:9000", "key", "secret", "audio", true, "https://media.example.com/files/")
	require.NoError(t, err)
	ref := store.ObjectURL("tracks/a.mp3")
	assert.Equal(t, "https://media.example.com/files/audio/tracks/a.mp3", ref)

	// Listings pass the stored URL through instead of prefixing the CDN host.
	assert.Equal(t, ref, Expand(DefaultBaseURL, ref))
}

package handler

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mindful/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type object = map[string]interface{}

func TestAudioTrackEndpoints(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/audio-tracks/", object{"description": "no title", "audio": "a.mp3"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"title":["This field is required."]}`, w.Body.String())

	w = e.do(t, http.MethodPost, "/audio-tracks/", object{"title": "this title is far too long for a track", "description": "d", "audio": "a.mp3"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no more than 30 characters")

	w = e.do(t, http.MethodPost, "/audio-tracks/", object{"title": "Rain", "description": "soft rain", "audio": "video/upload/rain.mp3"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[TrackResponse](t, w)
	assert.Equal(t, "video/upload/rain.mp3", created.Audio)

	w = e.do(t, http.MethodGet, "/audio-tracks/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]TrackResponse](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "https://cdn.example.com/video/upload/rain.mp3", list[0].Audio)

	path := fmt.Sprintf("/audio-tracks/%d/", created.ID)
	w = e.do(t, http.MethodPut, path, object{"title": "Storm", "description": "loud", "audio": "storm.mp3"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Storm", decode[TrackResponse](t, w).Title)

	w = e.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "storm.mp3", decode[TrackResponse](t, w).Audio)

	w = e.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w = e.do(t, method, path, object{"title": "x", "description": "y", "audio": "z"})
		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.Zero(t, w.Body.Len(), method)
	}

	w = e.do(t, http.MethodGet, "/audio-tracks/abc/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAudioTrackKeepsReferences(t *testing.T) {
	e := newTestEnv(t)
	_, token := e.user(t, "erin", false)

	w := e.do(t, http.MethodPost, "/audio-tracks/", object{"title": "Waves", "description": "d", "audio": "w.mp3"})
	require.Equal(t, http.StatusCreated, w.Code)
	track := decode[TrackResponse](t, w)

	w = e.do(t, http.MethodPost, "/sessions/", object{
		"audio_track":    track.ID,
		"scheduled_time": time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
	}, withToken(token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	session := decode[SessionResponse](t, w)

	w = e.do(t, http.MethodPost, "/playlists/", object{"name": "calm"}, withToken(token))
	require.Equal(t, http.StatusCreated, w.Code)
	playlist := decode[PlaylistResponse](t, w)
	w = e.do(t, http.MethodPost, fmt.Sprintf("/playlists/%d/items/", playlist.ID), object{"audio_track_id": track.ID}, withToken(token))
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(t, http.MethodDelete, fmt.Sprintf("/audio-tracks/%d/", track.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = e.do(t, http.MethodGet, fmt.Sprintf("/sessions/%d/", session.ID), nil, withToken(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[SessionResponse](t, w).AudioTrack)

	w = e.do(t, http.MethodGet, fmt.Sprintf("/playlists/%d/", playlist.ID), nil, withToken(token))
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[PlaylistResponse](t, w)
	require.Len(t, got.Items, 1)
	assert.Nil(t, got.Items[0].AudioTrack)
}

func uploadRequest(t *testing.T, path, token string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if content != nil {
		part, err := mw.CreateFormFile("file", "rain.mp3")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestUploadAudio(t *testing.T) {
	e := newTestEnv(t)
	_, staff := e.user(t, "admin", true)
	_, plain := e.user(t, "pleb", false)

	w := e.do(t, http.MethodPost, "/audio-tracks/", object{"title": "Rain", "description": "d", "audio": "old.mp3"})
	require.Equal(t, http.StatusCreated, w.Code)
	track := decode[TrackResponse](t, w)
	path := fmt.Sprintf("/audio-tracks/%d/audio/", track.ID)

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		e.router.ServeHTTP(w, req)
		return w
	}

	w = serve(uploadRequest(t, path, plain, []byte("ID3")))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(uploadRequest(t, path, staff, []byte("ID3")))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	uploader := &fakeUploader{}
	e.h.Uploader = uploader

	w = serve(uploadRequest(t, path, staff, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"file"`)

	w = serve(uploadRequest(t, "/audio-tracks/999/audio/", staff, []byte("ID3")))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(uploadRequest(t, path, staff, []byte("ID3-audio")))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, uploader.keys, 1)
	assert.Equal(t, []byte("ID3-audio"), uploader.data)

	var stored models.AudioTrack
	require.NoError(t, e.db.First(&stored, track.ID).Error)
	assert.Equal(t, "https://minio.example.com/audio/"+uploader.keys[0], stored.Audio)
	assert.Equal(t, stored.Audio, decode[TrackResponse](t, w).Audio)

	// The listing keeps the object store host instead of the media base URL.
	w = e.do(t, http.MethodGet, "/audio-tracks/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]TrackResponse](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, stored.Audio, list[0].Audio)
}

func TestMoodTrackEndpoints(t *testing.T) {
	e := newTestEnv(t)
	_, staff := e.user(t, "admin", true)
	_, plain := e.user(t, "pleb", false)
	track := object{"title": "Calm", "description": "d", "audio": "calm.mp3"}

	w := e.do(t, http.MethodPost, "/mood-tracks/", track)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(t, http.MethodPost, "/mood-tracks/", track, withToken(plain))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(t, http.MethodPost, "/mood-tracks/", track, withToken(staff))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[TrackResponse](t, w)

	w = e.do(t, http.MethodPost, "/mood-tracks/", track, withToken(staff))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"title":["mood track with this title already exists."]}`, w.Body.String())

	w = e.do(t, http.MethodGet, "/mood-tracks/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]TrackResponse](t, w), 1)

	path := fmt.Sprintf("/mood-tracks/%d/", created.ID)
	w = e.do(t, http.MethodPut, path, object{"title": "Calmer", "description": "d", "audio": "calm.mp3"}, withToken(staff))
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Calmer", decode[TrackResponse](t, w).Title)

	w = e.do(t, http.MethodDelete, path, nil, withToken(plain))
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = e.do(t, http.MethodDelete, path, nil, withToken(staff))
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = e.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogWritesRecordCaller(t *testing.T) {
	e := newTestEnv(t)
	core, logs := observer.New(zapcore.InfoLevel)
	e.h.Log = zap.New(core)
	userID, token := e.user(t, "hank", false)

	w := e.do(t, http.MethodPost, "/audio-tracks/", object{"title": "Wind", "description": "d", "audio": "wind.mp3"}, withToken(token))
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[TrackResponse](t, w)

	// Public route: a bad token is ignored rather than rejected.
	w = e.do(t, http.MethodDelete, fmt.Sprintf("/audio-tracks/%d/", created.ID), nil, withToken("garbage"))
	require.Equal(t, http.StatusNoContent, w.Code)

	entries := logs.FilterMessageSnippet("audio track").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "audio track created", entries[0].Message)
	assert.EqualValues(t, userID, entries[0].ContextMap()["user_id"])
	assert.Equal(t, "audio track deleted", entries[1].Message)
	assert.Equal(t, true, entries[1].ContextMap()["anonymous"])
	assert.NotContains(t, entries[1].ContextMap(), "user_id")
}

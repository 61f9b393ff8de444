package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/admediate/admediate-server/config"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

var testSessionConfig = config.Session{
	CookieName: "admsession",
	TTLSeconds: 1800,
}

func TestParseSessionIDMintsWhenAbsent(t *testing.T) {
	r := httptest.NewRequest("POST", "/ad/trigger", nil)

	sid, isNew, err := ParseSessionID(r, &testSessionConfig)
	assert.NoError(t, err)
	assert.True(t, isNew)

	_, err = uuid.FromString(sid)
	assert.NoError(t, err, "a minted session ID should be a UUID")
}

func TestParseSessionIDReadsExisting(t *testing.T) {
	r := httptest.NewRequest("POST", "/ad/trigger", nil)
	r.AddCookie(&http.Cookie{Name: "admsession", Value: "existing-session"})

	sid, isNew, err := ParseSessionID(r, &testSessionConfig)
	assert.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, "existing-session", sid)
}

func TestWriteSessionID(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSessionID(w, &testSessionConfig, "abc")

	cookies := w.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, "admsession", cookies[0].Name)
		assert.Equal(t, "abc", cookies[0].Value)
		assert.True(t, cookies[0].Expires.IsZero(), "the session cookie must not outlive the browsing session")
	}
}

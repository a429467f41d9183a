package blobstore

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imalento/Arcane-Tracker/internal/common"
)

func TestPut(t *testing.T) {
	payload := []byte("replay payload")

	t.Run("success 2xx", func(t *testing.T) {
		var gotBody []byte
		var gotCT, gotMethod, gotUA string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			gotUA = r.Header.Get("User-Agent")
			body, _ := io.ReadAll(r.Body)
			_ = r.Body.Close()
			gotBody = body
			w.WriteHeader(http.StatusCreated)
		}))
		defer ts.Close()

		u := NewHTTPUploader("tracker/1.0; linux;", 5*time.Second)
		err := u.Put(context.Background(), ts.URL+"/xyz?X-Amz-Signature=abc", payload, "text/plain")
		require.NoError(t, err)

		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "text/plain", gotCT)
		assert.Equal(t, "tracker/1.0; linux;", gotUA)
		assert.True(t, bytes.Equal(gotBody, payload))
	})

	t.Run("non-2xx -> RemoteError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		u := NewHTTPUploader("tracker/1.0; linux;", 5*time.Second)
		err := u.Put(context.Background(), ts.URL, payload, "text/plain")

		var re *common.RemoteError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, http.StatusInternalServerError, re.StatusCode)
	})

	t.Run("network error -> ErrNetwork", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		u := NewHTTPUploader("tracker/1.0; linux;", 5*time.Second)
		err := u.Put(context.Background(), ts.URL, payload, "text/plain")
		require.ErrorIs(t, err, common.ErrNetwork)
	})
}

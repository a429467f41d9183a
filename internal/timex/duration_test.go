package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	var v struct {
		Timeout Duration `json:"timeout"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"timeout":"10s"}`), &v))
	assert.Equal(t, 10*time.Second, v.Timeout.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"timeout":1500000000}`), &v))
	assert.Equal(t, 1500*time.Millisecond, v.Timeout.Duration)

	err := json.Unmarshal([]byte(`{"timeout":true}`), &v)
	require.Error(t, err)
}

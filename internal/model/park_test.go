package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParkJSONShape(t *testing.T) {
	p := Park{
		ID:          1,
		Name:        "Zion",
		State:       "Utah",
		Established: time.Date(1919, 11, 19, 0, 0, 0, 0, time.UTC),
	}
	buf, err := json.Marshal(p)
	assert.NoError(t, err)

	var got map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(buf, &got))

	// The wire shape is fixed: a park without a picture still carries the
	// key, serialized as null.
	assert.Contains(t, got, "picture")
	assert.Equal(t, "null", string(got["picture"]))

	// Established travels under the legacy "created" key.
	assert.Contains(t, got, "created")
	assert.NotContains(t, got, "established")
}

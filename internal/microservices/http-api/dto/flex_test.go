package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalInt_Unmarshal(t *testing.T) {
	cases := []struct {
		in    string
		set   bool
		value int
	}{
		{`3`, true, 3},
		{`"4"`, true, 4},
		{`" 5 "`, true, 5},
		{`2.0`, true, 2},
		{`null`, false, 0},
		{`""`, false, 0},
	}
	for _, tc := range cases {
		var o OptionalInt
		require.NoError(t, json.Unmarshal([]byte(tc.in), &o), tc.in)
		assert.Equal(t, tc.set, o.Set, tc.in)
		assert.Equal(t, tc.value, o.Value, tc.in)
	}
}

func TestOptionalInt_RejectsMalformed(t *testing.T) {
	for _, in := range []string{`"abc"`, `1.5`, `true`, `"1e99"`} {
		var o OptionalInt
		assert.Error(t, json.Unmarshal([]byte(in), &o), in)
	}
}

func TestOptionalInt_AbsentFieldStaysUnset(t *testing.T) {
	var body struct {
		Episode OptionalInt `json:"episodeNumber"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &body))
	assert.False(t, body.Episode.Set)
	assert.Nil(t, body.Episode.Ptr())
}

func TestParseOptionalInt(t *testing.T) {
	o, err := ParseOptionalInt("2")
	require.NoError(t, err)
	assert.Equal(t, 2, *o.Ptr())

	_, err = ParseOptionalInt("two")
	assert.Error(t, err)
}

func TestFlexID(t *testing.T) {
	var body struct {
		AnimeID FlexID `json:"animeId"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"animeId": 21}`), &body))
	assert.Equal(t, FlexID("21"), body.AnimeID)

	require.NoError(t, json.Unmarshal([]byte(`{"animeId": " A1 "}`), &body))
	assert.Equal(t, FlexID("A1"), body.AnimeID)

	assert.Error(t, json.Unmarshal([]byte(`{"animeId": {}}`), &body))
}

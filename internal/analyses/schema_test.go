package analyses

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResultFull(t *testing.T) {
	raw := []byte(`{
		"score": 72,
		"matched_keywords": ["python", "sql"],
		"missing_keywords": ["docker"],
		"suggestions": ["Add docker to your Tools & Technologies section."],
		"history": [{"attempt": 1, "score": 50}, {"attempt": 2, "score": 72}],
		"totalImpact": 12.5,
		"strengths": ["Strong soft skills"]
	}`)

	got, err := ParseResult(raw)
	require.NoError(t, err)
	assert.Equal(t, 72, got.Score)
	assert.Equal(t, []string{"python", "sql"}, got.MatchedKeywords)
	assert.Equal(t, []string{"docker"}, got.MissingKeywords)
	assert.Len(t, got.Suggestions, 1)
	assert.Equal(t, []HistoryPoint{{Attempt: 1, Score: 50}, {Attempt: 2, Score: 72}}, got.History)
	require.NotNil(t, got.TotalImpact)
	assert.InDelta(t, 12.5, *got.TotalImpact, 0.0001)
	assert.Equal(t, []string{"Strong soft skills"}, got.Strengths)
	assert.Nil(t, got.Weaknesses)
}

func TestParseResultOptionalFieldsDefaultEmpty(t *testing.T) {
	got, err := ParseResult([]byte(`{"score": 10, "matched_keywords": [], "missing_keywords": []}`))
	require.NoError(t, err)
	assert.NotNil(t, got.Suggestions)
	assert.Empty(t, got.Suggestions)
	assert.Empty(t, got.History)
}

func TestParseResultRoundsAndClampsScore(t *testing.T) {
	cases := []struct {
		body string
		want int
	}{
		{body: `{"score": 45.67, "matched_keywords": [], "missing_keywords": []}`, want: 46},
		{body: `{"score": 59.5, "matched_keywords": [], "missing_keywords": []}`, want: 60},
		{body: `{"score": 140, "matched_keywords": [], "missing_keywords": []}`, want: 100},
		{body: `{"score": -3, "matched_keywords": [], "missing_keywords": []}`, want: 0},
	}
	for _, tc := range cases {
		got, err := ParseResult([]byte(tc.body))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Score, tc.body)
	}
}

func TestParseResultMissingRequiredFields(t *testing.T) {
	cases := map[string]string{
		"missing score":   `{"matched_keywords": [], "missing_keywords": []}`,
		"missing matched": `{"score": 1, "missing_keywords": []}`,
		"wrong type":      `{"score": "high", "matched_keywords": [], "missing_keywords": []}`,
		"bad history":     `{"score": 1, "matched_keywords": [], "missing_keywords": [], "history": [{"attempt": 0, "score": 1}]}`,
		"not json":        `<html>oops</html>`,
		"not object":      `[1, 2]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseResult([]byte(body))
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "expected ParseError, got %v", err)
			assert.NotEmpty(t, perr.Error())
		})
	}
}

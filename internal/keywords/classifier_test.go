package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelevantEveryTableEntryAnyCase(t *testing.T) {
	c := Default()
	tables := DefaultTables()
	for _, set := range [][]string{tables.Technical, tables.Interpersonal, tables.Tooling} {
		for _, kw := range set {
			assert.True(t, c.Relevant(kw), kw)
			assert.True(t, c.Relevant(strings.ToUpper(kw)), kw)
		}
	}
}

func TestRelevantRejectsUnknownAndPartial(t *testing.T) {
	c := Default()
	for _, kw := range []string{"", "foo", "pythonic", "react native", " python", "golang"} {
		assert.False(t, c.Relevant(kw), "%q", kw)
	}
}

func TestPrioritySubstringPrecedence(t *testing.T) {
	c := Default()
	cases := []struct {
		kw   string
		want Priority
	}{
		{kw: "python", want: PriorityHigh},
		{kw: "pythonic", want: PriorityHigh},
		{kw: "PostgreSQL", want: PriorityHigh},
		{kw: "leadership", want: PriorityMedium},
		{kw: "stakeholder management", want: PriorityMedium},
		{kw: "empathy", want: PriorityLow},
		{kw: "excel", want: PriorityLow},
		{kw: "foo", want: PriorityLow},
		{kw: "", want: PriorityLow},
	}
	for _, tc := range cases {
		t.Run(tc.kw, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Priority(tc.kw))
		})
	}
}

func TestPriorityIndependentOfRelevance(t *testing.T) {
	c := Default()
	got := c.Classify("pythonic")
	assert.False(t, got.Relevant)
	assert.Equal(t, PriorityHigh, got.Priority)
	assert.Equal(t, "pythonic", got.Text)
}

func TestTipDistinguishesDefaultFromLowRule(t *testing.T) {
	c := Default()
	tips := DefaultTables().Tips
	assert.Equal(t, tips.High, c.Tip("react"))
	assert.Equal(t, tips.Medium, c.Tip("mentoring"))
	assert.Equal(t, tips.Low, c.Tip("teamwork"))
	assert.Equal(t, tips.Default, c.Tip("excel"))
	assert.Equal(t, PriorityLow, c.Priority("excel"))
}

func TestCustomTables(t *testing.T) {
	c := NewClassifier(Tables{
		Technical: []string{"Go"},
		HighRules: []string{"GO"},
	})
	assert.True(t, c.Relevant("go"))
	assert.Equal(t, PriorityHigh, c.Priority("golang"))
	assert.False(t, c.Relevant("golang"))
}

func TestFilterPreservesOrder(t *testing.T) {
	c := Default()
	got := c.Filter([]string{"foo", "Docker", "bar", "empathy"})
	assert.Equal(t, []string{"Docker", "empathy"}, got)
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 1, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 3, PriorityLow.Rank())
	assert.Equal(t, 3, Priority(0).Rank())
	assert.Equal(t, "Medium", PriorityMedium.String())
}

package recommendations

import (
	"reflect"
	"testing"

	"resume-client/internal/keywords"
)

func keywordsOf(recs []Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Keyword)
	}
	return out
}

func TestBuildUnionFilterSort(t *testing.T) {
	recs := Build(keywords.Default(), Input{
		Missing:     []string{"python", "empathy", "foo"},
		Suggestions: []string{"python", "leadership"},
	})

	want := []string{"python", "leadership", "empathy"}
	if got := keywordsOf(recs); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	wantPriority := []keywords.Priority{keywords.PriorityHigh, keywords.PriorityMedium, keywords.PriorityLow}
	for i, rec := range recs {
		if rec.Priority != wantPriority[i] {
			t.Fatalf("rec %d: expected priority %s, got %s", i, wantPriority[i], rec.Priority)
		}
		if rec.Order != i+1 {
			t.Fatalf("rec %d: expected order %d, got %d", i, i+1, rec.Order)
		}
		if rec.Tip == "" {
			t.Fatalf("rec %d: expected tip", i)
		}
	}
}

func TestBuildStableWithinPriority(t *testing.T) {
	recs := Build(keywords.Default(), Input{
		Missing:     []string{"empathy", "docker", "teamwork", "react"},
		Suggestions: []string{"excel", "sql"},
	})

	want := []string{"docker", "react", "sql", "empathy", "teamwork", "excel"}
	if got := keywordsOf(recs); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBuildDedupeIsExactString(t *testing.T) {
	recs := Build(keywords.Default(), Input{
		Missing:     []string{"Python", "python"},
		Suggestions: []string{"python"},
	})

	want := []string{"Python", "python"}
	if got := keywordsOf(recs); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBuildDeterminism(t *testing.T) {
	in := Input{
		Matched:     []string{"git"},
		Missing:     []string{"kubernetes", "mentoring", "slack"},
		Suggestions: []string{"Add metrics to bullets.", "aws"},
	}

	first := Build(keywords.Default(), in)
	second := Build(keywords.Default(), in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic recommendations ordering")
	}
}

func TestBuildSameSetAcrossPriorities(t *testing.T) {
	a := Build(keywords.Default(), Input{Missing: []string{"empathy", "python", "leadership"}})
	b := Build(keywords.Default(), Input{Missing: []string{"leadership", "empathy", "python"}})

	if !reflect.DeepEqual(keywordsOf(a), keywordsOf(b)) {
		t.Fatalf("expected same order for distinct priorities, got %v and %v", keywordsOf(a), keywordsOf(b))
	}
}

func TestBuildEmpty(t *testing.T) {
	recs := Build(keywords.Default(), Input{})
	if len(recs) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(recs))
	}
}

func TestGroupByPriority(t *testing.T) {
	recs := Build(keywords.Default(), Input{
		Missing: []string{"empathy", "docker", "teamwork"},
	})

	groups := GroupByPriority(recs)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Priority != keywords.PriorityHigh || len(groups[0].Items) != 1 {
		t.Fatalf("unexpected high group: %+v", groups[0])
	}
	if groups[1].Priority != keywords.PriorityLow || len(groups[1].Items) != 2 {
		t.Fatalf("unexpected low group: %+v", groups[1])
	}
}

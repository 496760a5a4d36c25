package analyses

import (
	"encoding/json"
	"math"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schema for the analyze_resume success body:
// {
//   "score": "number",
//   "matched_keywords": ["string"],
//   "missing_keywords": ["string"],
//   "suggestions": ["string"],            (optional)
//   "history": [{"attempt": int>=1, "score": number}], (optional)
//   "totalImpact": "number",              (optional)
//   "strengths": ["string"],              (optional)
//   "weaknesses": ["string"]              (optional)
// }
const resultSchema = `{
  "type": "object",
  "required": ["score", "matched_keywords", "missing_keywords"],
  "properties": {
    "score": {"type": "number"},
    "matched_keywords": {"type": "array", "items": {"type": "string"}},
    "missing_keywords": {"type": "array", "items": {"type": "string"}},
    "suggestions": {"type": ["array", "null"], "items": {"type": "string"}},
    "history": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["attempt", "score"],
        "properties": {
          "attempt": {"type": "integer", "minimum": 1},
          "score": {"type": "number"}
        }
      }
    },
    "totalImpact": {"type": ["number", "null"]},
    "strengths": {"type": ["array", "null"], "items": {"type": "string"}},
    "weaknesses": {"type": ["array", "null"], "items": {"type": "string"}}
  }
}`

var resultSchemaLoader = gojsonschema.NewStringLoader(resultSchema)

type wireResult struct {
	Score           float64     `json:"score"`
	MatchedKeywords []string    `json:"matched_keywords"`
	MissingKeywords []string    `json:"missing_keywords"`
	Suggestions     []string    `json:"suggestions"`
	History         []wirePoint `json:"history"`
	TotalImpact     *float64    `json:"totalImpact"`
	Strengths       []string    `json:"strengths"`
	Weaknesses      []string    `json:"weaknesses"`
}

type wirePoint struct {
	Attempt int     `json:"attempt"`
	Score   float64 `json:"score"`
}

// ParseResult validates raw against the result contract and decodes it.
// Scores are rounded to whole points and clamped to 0..100.
func ParseResult(raw []byte) (AnalysisResult, error) {
	if !json.Valid(raw) {
		return AnalysisResult{}, &ParseError{Problems: []string{"body is not valid JSON"}}
	}
	res, err := gojsonschema.Validate(resultSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return AnalysisResult{}, &ParseError{Err: err}
	}
	if !res.Valid() {
		problems := make([]string, 0, len(res.Errors()))
		for _, desc := range res.Errors() {
			problems = append(problems, desc.String())
		}
		return AnalysisResult{}, &ParseError{Problems: problems}
	}

	var wire wireResult
	if err := json.Unmarshal(raw, &wire); err != nil {
		return AnalysisResult{}, &ParseError{Err: err}
	}

	out := AnalysisResult{
		Score:           clampScore(wire.Score),
		MatchedKeywords: nonNil(wire.MatchedKeywords),
		MissingKeywords: nonNil(wire.MissingKeywords),
		Suggestions:     nonNil(wire.Suggestions),
		History:         make([]HistoryPoint, 0, len(wire.History)),
		TotalImpact:     wire.TotalImpact,
		Strengths:       wire.Strengths,
		Weaknesses:      wire.Weaknesses,
	}
	for _, p := range wire.History {
		out.History = append(out.History, HistoryPoint{Attempt: p.Attempt, Score: clampScore(p.Score)})
	}
	return out, nil
}

func clampScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	rounded := math.Round(v)
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return int(rounded)
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

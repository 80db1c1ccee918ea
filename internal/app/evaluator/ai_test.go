package evaluator

import (
	"context"
	"errors"
	"fmt"
	"sysdesignlab/internal/common"
	"sysdesignlab/internal/domain/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testDesign() *model.Design {
	return &model.Design{
		ID:        "d1",
		UserID:    "u1",
		ProblemID: "p1",
		Nodes: []model.Node{
			{ID: "n1", Type: model.NodeLoadBalancer, Label: "LB"},
			{ID: "n2", Type: model.NodeCache, Label: "Redis", Config: map[string]interface{}{"ttl": 60}},
		},
		Edges: []model.Edge{{Source: "n1", Target: "n2", Label: "reads"}},
	}
}

func testProblem() *model.Problem {
	return &model.Problem{
		ID:                        "p1",
		Title:                     "Design URL Shortener",
		Difficulty:                model.DifficultyEasy,
		Description:               "Shorten URLs.",
		FunctionalRequirements:    []string{"Generate short URL", "Redirect to original URL"},
		NonFunctionalRequirements: []string{"Low latency for redirects"},
		Scale:                     model.ProblemScale{Users: "1 million users", Requests: "1000 req/sec"},
	}
}

const validResponse = `{
	"score": 82,
	"summary": "Reasonable design with a cache in front of storage.",
	"requirements_analysis": [{"requirement": "Generate short URL", "met": true, "comment": "ok"}],
	"strengths": ["caching"],
	"warnings": [],
	"errors": [],
	"suggestions": ["add a CDN"],
	"security_concerns": "none noted",
	"scalability_notes": "scales horizontally"
}`

func TestAIEvaluatorParsesStructuredResponse(t *testing.T) {
	gen := &stubGenerator{response: validResponse}
	e := NewAIEvaluator(gen)

	result, err := e.Evaluate(context.Background(), testDesign(), testProblem())
	require.NoError(t, err)

	assert.Equal(t, 82, result.Score)
	assert.Equal(t, "Reasonable design with a cache in front of storage.", result.Summary)
	require.Len(t, result.RequirementsAnalysis, 1)
	assert.True(t, result.RequirementsAnalysis[0].Met)
	assert.Equal(t, []string{"caching"}, result.Strengths)
	assert.Equal(t, []string{}, result.Warnings)
}

func TestAIEvaluatorAcceptsFencedJSON(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" + validResponse + "\n```"}
	e := NewAIEvaluator(gen)

	result, err := e.Evaluate(context.Background(), testDesign(), testProblem())
	require.NoError(t, err)
	assert.Equal(t, 82, result.Score)
}

func TestAIEvaluatorRejectsMalformedResponses(t *testing.T) {
	cases := []struct {
		name     string
		response string
	}{
		{"not json", "I think this design is pretty good, maybe 80/100?"},
		{"missing score", `{"summary": "fine"}`},
		{"missing summary", `{"score": 50}`},
		{"blank summary", `{"score": 50, "summary": "  "}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewAIEvaluator(&stubGenerator{response: tc.response})
			_, err := e.Evaluate(context.Background(), testDesign(), testProblem())
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrEvaluatorUnavailable))
		})
	}
}

func TestAIEvaluatorReportsTransportFailure(t *testing.T) {
	e := NewAIEvaluator(&stubGenerator{err: fmt.Errorf("connection refused")})
	_, err := e.Evaluate(context.Background(), testDesign(), testProblem())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrEvaluatorUnavailable))
}

func TestAIEvaluatorClampsScoreIntoBounds(t *testing.T) {
	cases := []struct {
		raw      int
		expected int
	}{
		{-10, 0},
		{0, 0},
		{100, 100},
		{250, 100},
	}
	for _, tc := range cases {
		response := fmt.Sprintf(`{"score": %d, "summary": "s"}`, tc.raw)
		e := NewAIEvaluator(&stubGenerator{response: response})
		result, err := e.Evaluate(context.Background(), testDesign(), testProblem())
		require.NoError(t, err)
		assert.Equal(t, tc.expected, result.Score)
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
	}
}

func TestAIEvaluatorDefaultsMissingLists(t *testing.T) {
	e := NewAIEvaluator(&stubGenerator{response: `{"score": 60, "summary": "bare"}`})
	result, err := e.Evaluate(context.Background(), testDesign(), testProblem())
	require.NoError(t, err)

	assert.NotNil(t, result.Strengths)
	assert.NotNil(t, result.Warnings)
	assert.NotNil(t, result.Errors)
	assert.NotNil(t, result.Suggestions)
	assert.NotNil(t, result.RequirementsAnalysis)
	assert.Empty(t, result.Strengths)
}

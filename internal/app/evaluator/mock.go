package evaluator

import (
	"context"
	"sysdesignlab/internal/domain/model"
)

const MockScore = 75

// MockEvaluator returns a fixed, hand-authored evaluation regardless of the
// submitted diagram. It serves as the only evaluator when no generative
// model is configured and as the fallback when the AI-backed one fails.
type MockEvaluator struct{}

func NewMockEvaluator() *MockEvaluator {
	return &MockEvaluator{}
}

func (e *MockEvaluator) Evaluate(ctx context.Context, design *model.Design, problem *model.Problem) (*model.EvaluationResult, error) {
	analysis := make([]model.RequirementAssessment, 0, len(problem.FunctionalRequirements)+len(problem.NonFunctionalRequirements))
	for _, req := range problem.FunctionalRequirements {
		analysis = append(analysis, model.RequirementAssessment{
			Requirement: req,
			Met:         true,
			Comment:     "Addressed by the submitted architecture at a high level.",
		})
	}
	for _, req := range problem.NonFunctionalRequirements {
		analysis = append(analysis, model.RequirementAssessment{
			Requirement: req,
			Met:         true,
			Comment:     "Plausibly satisfied; verify under the stated scale.",
		})
	}

	return &model.EvaluationResult{
		Score:                MockScore,
		Summary:              "A solid baseline architecture that covers the main requirements, with room to harden the data layer and operational story.",
		RequirementsAnalysis: analysis,
		Strengths: []string{
			"Good use of load balancer for distributing traffic",
			"Implemented caching layer to reduce database load",
			"Proper separation between frontend and backend services",
			"Use of message queue for asynchronous processing",
		},
		Warnings: []string{
			"Single point of failure in the database layer",
			"No data replication strategy mentioned",
			"Cache invalidation strategy not clearly defined",
			"Limited monitoring and alerting setup",
		},
		Errors: []string{
			"Missing database sharding for horizontal scalability",
			"No backup and disaster recovery plan",
			"Authentication service is not horizontally scaled",
		},
		Suggestions: []string{
			"Consider using CDN for static assets to reduce latency",
			"Add read replicas for the database to handle read-heavy workloads",
			"Implement circuit breaker pattern for external service calls",
			"Use Redis cluster instead of single Redis instance",
			"Add API gateway for rate limiting and request routing",
		},
		SecurityConcerns: "Ensure all external traffic terminates TLS at the edge and that internal services authenticate each other; no auth boundary is visible in the diagram.",
		ScalabilityNotes: "The stateless tier scales horizontally, but the single database instance will become the bottleneck under the stated load; plan sharding or read replicas.",
	}, nil
}

package evaluator

import (
	"context"
	"sysdesignlab/internal/domain/model"
)

// Evaluator scores a design submission against a problem's requirements.
// Implementations must be pure with respect to persistence: writing the
// result back onto the design is the evaluation service's job.
type Evaluator interface {
	Evaluate(ctx context.Context, design *model.Design, problem *model.Problem) (*model.EvaluationResult, error)
}

// TextGenerator is the narrow contract over an external generative model.
// Implementations should be configured to prefer structured JSON output.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

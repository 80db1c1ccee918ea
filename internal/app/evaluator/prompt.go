package evaluator

import (
	"fmt"
	"strings"
	"sysdesignlab/internal/domain/model"
)

// describeNode renders one component for the prompt. Known kinds get a
// human-readable name; unknown kinds fall through with the raw tag so the
// model still sees them.
func describeNode(n model.Node) string {
	var kind string
	switch n.Type {
	case model.NodeClient:
		kind = "Client"
	case model.NodeLoadBalancer:
		kind = "Load Balancer"
	case model.NodeAPIGateway:
		kind = "API Gateway"
	case model.NodeAppServer:
		kind = "Application Server"
	case model.NodeDatabase:
		kind = "Database"
	case model.NodeCache:
		kind = "Cache"
	case model.NodeMessageQueue:
		kind = "Message Queue"
	case model.NodeCDN:
		kind = "CDN"
	case model.NodeStorage:
		kind = "Object Storage"
	case model.NodeSearch:
		kind = "Search Engine"
	default:
		kind = string(n.Type)
	}

	desc := kind
	if n.Label != "" && n.Label != kind {
		desc += fmt.Sprintf(" (%q)", n.Label)
	}
	if len(n.Config) > 0 {
		var parts []string
		for k, v := range n.Config {
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
		desc += " [" + strings.Join(parts, ", ") + "]"
	}
	return desc
}

// describeEdge renders a connection with node IDs resolved to labels.
func describeEdge(e model.Edge, labels map[string]string) string {
	from, ok := labels[e.Source]
	if !ok || from == "" {
		from = e.Source
	}
	to, ok := labels[e.Target]
	if !ok || to == "" {
		to = e.Target
	}
	if e.Label != "" {
		return fmt.Sprintf("%s -> %s (%s)", from, to, e.Label)
	}
	return fmt.Sprintf("%s -> %s", from, to)
}

// BuildPrompt assembles the evaluation prompt from the problem specification
// and a summarized view of the submitted diagram.
func BuildPrompt(design *model.Design, problem *model.Problem) string {
	var b strings.Builder

	b.WriteString("You are a senior system design interviewer. Evaluate the candidate's architecture for the following problem.\n\n")
	fmt.Fprintf(&b, "## Problem: %s (%s)\n%s\n\n", problem.Title, problem.Difficulty, problem.Description)

	if len(problem.FunctionalRequirements) > 0 {
		b.WriteString("## Functional Requirements\n")
		for _, req := range problem.FunctionalRequirements {
			b.WriteString("- " + req + "\n")
		}
		b.WriteString("\n")
	}
	if len(problem.NonFunctionalRequirements) > 0 {
		b.WriteString("## Non-Functional Requirements\n")
		for _, req := range problem.NonFunctionalRequirements {
			b.WriteString("- " + req + "\n")
		}
		b.WriteString("\n")
	}

	if problem.Scale.Users != "" || problem.Scale.Requests != "" || problem.Scale.Data != "" {
		b.WriteString("## Expected Scale\n")
		if problem.Scale.Users != "" {
			b.WriteString("- Users: " + problem.Scale.Users + "\n")
		}
		if problem.Scale.Requests != "" {
			b.WriteString("- Requests: " + problem.Scale.Requests + "\n")
		}
		if problem.Scale.Data != "" {
			b.WriteString("- Data: " + problem.Scale.Data + "\n")
		}
		b.WriteString("\n")
	}

	labels := make(map[string]string, len(design.Nodes))
	for _, n := range design.Nodes {
		labels[n.ID] = n.Label
	}

	b.WriteString("## Submitted Architecture\nComponents:\n")
	if len(design.Nodes) == 0 {
		b.WriteString("- (none)\n")
	}
	for _, n := range design.Nodes {
		b.WriteString("- " + describeNode(n) + "\n")
	}
	b.WriteString("Connections:\n")
	if len(design.Edges) == 0 {
		b.WriteString("- (none)\n")
	}
	for _, e := range design.Edges {
		b.WriteString("- " + describeEdge(e, labels) + "\n")
	}

	b.WriteString(`
Respond with a single JSON object, no prose outside it, with this exact shape:
{
  "score": <integer 0-100>,
  "summary": "<two or three sentence overall assessment>",
  "requirements_analysis": [{"requirement": "<text>", "met": <bool>, "comment": "<text>"}],
  "strengths": ["..."],
  "warnings": ["..."],
  "errors": ["..."],
  "suggestions": ["..."],
  "security_concerns": "<text>",
  "scalability_notes": "<text>"
}
Cover every functional and non-functional requirement in requirements_analysis.`)

	return b.String()
}

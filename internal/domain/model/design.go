package model

import "time"

type NodeKind string

// Well-known architecture component kinds. Diagrams may carry kinds outside
// this set; consumers must degrade gracefully on unknown values.
const (
	NodeClient       NodeKind = "client"
	NodeLoadBalancer NodeKind = "loadBalancer"
	NodeAPIGateway   NodeKind = "apiGateway"
	NodeAppServer    NodeKind = "appServer"
	NodeDatabase     NodeKind = "database"
	NodeCache        NodeKind = "cache"
	NodeMessageQueue NodeKind = "messageQueue"
	NodeCDN          NodeKind = "cdn"
	NodeStorage      NodeKind = "storage"
	NodeSearch       NodeKind = "search"
)

// Node is one component in a design diagram. Config is an opaque extension
// map for component-specific settings the platform does not interpret.
type Node struct {
	ID     string                 `json:"id"`
	Type   NodeKind               `json:"type"`
	Label  string                 `json:"label"`
	Config map[string]interface{} `json:"config,omitempty"`
}

// Edge is a directed connection between two nodes, referencing node IDs.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
}

type Design struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id"`
	ProblemID        string            `json:"problem_id"`
	Nodes            []Node            `json:"nodes"`
	Edges            []Edge            `json:"edges"`
	EvaluationResult *EvaluationResult `json:"evaluation_result,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	ProblemTitle     *string           `json:"problem_title,omitempty"` // For display
}

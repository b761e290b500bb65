package render

// RenderPriority orders layers; lower renders first
// Spaced so new layers can slot between existing ones
type RenderPriority int

const (
	PriorityBackground RenderPriority = 100
	PriorityFrames     RenderPriority = 200
	PriorityDebug      RenderPriority = 500
)

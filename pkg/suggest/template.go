package suggest

// RootTemplate produces a project-level annotation block for a
// codebase's entry file (doc.go, lib.rs, index.ts). It carries the
// recommended architectural sections with TODO placeholders.
func RootTemplate(style CommentStyle) string {
	lines := []string{
		"@c4 container",
		"",
		"# [Project Name]",
		"",
		"[TODO: One-line description of what this system does and why it exists.]",
		"",
		"## C4 Context",
		"",
		"```mermaid",
		"C4Context",
		"    title System Context Diagram",
		"",
		`    Person(user, "TODO: User", "TODO: Primary user/actor")`,
		`    System(system, "TODO: System Name", "TODO: System purpose")`,
		`    System_Ext(ext1, "TODO: External System", "TODO: External dependency")`,
		"",
		`    Rel(user, system, "Uses")`,
		`    Rel(system, ext1, "TODO: relationship", "TODO: protocol")`,
		"",
		`    UpdateLayoutConfig($c4ShapeInRow="3", $c4BoundaryInRow="1")`,
		"```",
		"",
		"## Data Flow",
		"",
		"1. TODO: Primary command/request flow (e.g., CLI -> service -> store)",
		"2. TODO: Primary data/response flow (e.g., store -> service -> CLI)",
		"3. TODO: Secondary flows (settings, config, async jobs, etc.)",
		"",
		"## Concurrency & Data Patterns",
		"",
		"- TODO: Key concurrency primitives (locks, channels, atomics, workers)",
		"- TODO: Data access patterns (caching, buffering, pooling)",
		"",
		"## Deployment",
		"",
		"- TODO: Where does this run? (local, cloud, hybrid, embedded)",
		"- TODO: Key infrastructure (Docker, K8s, serverless)",
		"",
		"## External Dependencies",
		"",
		"- TODO: Third-party APIs and services",
		"- TODO: Databases and storage systems",
	}

	return renderComment(style, lines)
}

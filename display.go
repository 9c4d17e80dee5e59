package writeir

// Display returns the one-line human-readable rendering of a node, used
// for planner debugging. Every Node implements Renderable, so this never
// fails.
func Display(n Node) string {
	return n.(Renderable).String()
}

// Graphviz returns the DAG-dump rendering of a node.
func Graphviz(n Node) string {
	return n.(Renderable).Graphviz()
}

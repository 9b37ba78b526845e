package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type Registry struct {
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

func (r *Registry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

func (r *Registry) All() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func (r *Registry) ToolNames() string {
	all := r.All()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.Name()
	}
	return strings.Join(names, ", ")
}

func (r *Registry) FormatToolDescriptions() string {
	all := r.All()
	var b strings.Builder
	for _, t := range all {
		fmt.Fprintf(&b, "### %s\n%s\nParameters:\n```json\n%s\n```\n\n", t.Name(), t.Description(), t.ParameterSchema())
	}
	return b.String()
}

// Dispatch runs one tool by name and always comes back with an envelope:
// unknown tools and missing session context are reported the same way tool
// failures are, through Status.
func (r *Registry) Dispatch(ctx context.Context, sess Session, name string, params map[string]any) Envelope {
	name = strings.TrimSpace(name)
	tool, ok := r.Get(name)
	if !ok {
		return Errorf(name, "unknown tool: %s", name)
	}
	if !sess.Valid() {
		return Errorf(name, "missing account id in session context")
	}
	if params == nil {
		params = map[string]any{}
	}
	return tool.Execute(ctx, sess, params)
}

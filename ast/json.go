package ast

import "encoding/json"

// jsonNode is the wire shape of a marshaled Node: kind, its start and end
// positions, an optional leaf token, named attributes, and annotations, flattened
// out of Node's internal Attr slice so external tooling gets plain JSON
// rather than Go-specific struct tags.
type jsonNode struct {
	Kind        string              `json:"kind"`
	Pos         *jsonPosition       `json:"pos,omitempty"`
	End         *jsonPosition       `json:"end,omitempty"`
	Modifiers   []string            `json:"modifiers,omitempty"`
	Annotations []*jsonNode         `json:"annotations,omitempty"`
	Token       string              `json:"token,omitempty"`
	Text        string              `json:"text,omitempty"`
	Attrs       map[string][]*jsonNode `json:"attrs,omitempty"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

func (n *Node) toJSON() *jsonNode {
	jn := &jsonNode{
		Kind: n.Kind.String(),
		Pos:  &jsonPosition{Line: n.Start.Line, Column: n.Start.Column},
		End:  &jsonPosition{Line: n.Endp.Line, Column: n.Endp.Column},
		Text: n.Str,
	}

	if n.Tok != nil {
		jn.Token = n.Tok.Text
	}

	for _, m := range n.Modifiers.List() {
		jn.Modifiers = append(jn.Modifiers, string(m))
	}

	for _, a := range n.Annotations {
		jn.Annotations = append(jn.Annotations, a.toJSON())
	}

	for _, attr := range n.attrs {
		if len(attr.Nodes) == 0 {
			continue
		}
		if jn.Attrs == nil {
			jn.Attrs = make(map[string][]*jsonNode)
		}
		children := make([]*jsonNode, len(attr.Nodes))
		for i, c := range attr.Nodes {
			children[i] = c.toJSON()
		}
		jn.Attrs[attr.Name] = children
	}

	return jn
}

package definition

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/tabula/tabulated"
)

// pair is a point written as a flow sequence, e.g. [0.5, 0.25].
type pair [2]float64

func (p pair) MarshalYAML() (any, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range p {
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, &n)
	}

	return seq, nil
}

type pointsDocument struct {
	Storage string `yaml:"storage"`
	Points  []pair `yaml:"points"`
}

// Marshal writes fn as a points-mode document that Load turns back into an
// equal function with the same storage.
func Marshal(fn tabulated.Function) ([]byte, error) {
	doc := pointsDocument{
		Storage: strings.ToLower(fn.Storage().String()),
		Points:  make([]pair, 0, fn.PointCount()),
	}
	for _, p := range fn.All() {
		doc.Points = append(doc.Points, pair{p.X, p.Y})
	}

	return yaml.Marshal(doc)
}

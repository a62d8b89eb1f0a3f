// core/classify/model.go
package classify

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	"ebony/pkg/api"
)

// Site is one informative alignment position with its per-class alleles.
type Site struct {
	Pos   int
	Dark  byte
	Light byte
}

// Model is the classifier trained from a labeled alignment: the informative
// positions in ascending order plus the alignment length they index into.
// Immutable once built.
type Model struct {
	Length int
	Sites  []Site
}

// Encode writes the model as indented JSON in the stable v1 layout.
func (m *Model) Encode(w io.Writer) error {
	v := api.ModelV1{
		Length:    m.Length,
		Positions: make([]api.SiteV1, 0, len(m.Sites)),
	}
	for _, s := range m.Sites {
		v.Positions = append(v.Positions, api.SiteV1{
			Pos:         s.Pos,
			DarkAllele:  string(s.Dark),
			LightAllele: string(s.Light),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Save persists the model to path.
func (m *Model) Save(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating model file")
	}
	if err := m.Encode(fh); err != nil {
		_ = fh.Close()
		return errors.Wrapf(err, "writing model to %s", path)
	}
	return fh.Close()
}

// Decode reads a v1 model and validates it: alleles are single distinct
// A/C/G/T characters, positions inside [0, Length) and strictly ascending.
// Build can never emit a violating site, but persisted models are open to
// hand editing.
func Decode(r io.Reader) (*Model, error) {
	var v api.ModelV1
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, errors.Wrap(err, "decoding model")
	}
	if v.Length <= 0 {
		return nil, errors.Errorf("corrupt model: alignment length %d", v.Length)
	}
	m := &Model{Length: v.Length, Sites: make([]Site, 0, len(v.Positions))}
	prev := -1
	for _, p := range v.Positions {
		if len(p.DarkAllele) != 1 || len(p.LightAllele) != 1 ||
			!isAllele(p.DarkAllele[0]) || !isAllele(p.LightAllele[0]) {
			return nil, errors.Errorf("corrupt model: alleles %q/%q at pos %d", p.DarkAllele, p.LightAllele, p.Pos)
		}
		if p.DarkAllele == p.LightAllele {
			return nil, errors.Errorf("corrupt model: identical alleles %q at pos %d", p.DarkAllele, p.Pos)
		}
		if p.Pos < 0 || p.Pos >= v.Length {
			return nil, errors.Errorf("corrupt model: pos %d outside alignment length %d", p.Pos, v.Length)
		}
		if p.Pos <= prev {
			return nil, errors.Errorf("corrupt model: positions not ascending at pos %d", p.Pos)
		}
		prev = p.Pos
		m.Sites = append(m.Sites, Site{Pos: p.Pos, Dark: p.DarkAllele[0], Light: p.LightAllele[0]})
	}
	return m, nil
}

// LoadModel reads a persisted model from path.
func LoadModel(path string) (*Model, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening model file")
	}
	defer func() { _ = fh.Close() }()
	m, err := Decode(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return m, nil
}

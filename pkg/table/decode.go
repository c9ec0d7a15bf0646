package table

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Definition is the serialized form of a table.
// It uses "mapstructure" tags so YAML and JSON documents decode the same way.
type Definition struct {
	Name   string           `mapstructure:"name" json:"name"`
	Start  string           `mapstructure:"start" json:"start"`
	Accept string           `mapstructure:"accept" json:"accept"`
	Blank  string           `mapstructure:"blank" json:"blank"`
	States []string         `mapstructure:"states" json:"states"`
	Rules  []RuleDefinition `mapstructure:"rules" json:"rules"`
}

// RuleDefinition is one serialized rule.
type RuleDefinition struct {
	From  string `mapstructure:"from" json:"from"`
	Read  string `mapstructure:"read" json:"read"`
	Next  string `mapstructure:"next" json:"next"`
	Write string `mapstructure:"write" json:"write"`
	Move  string `mapstructure:"move" json:"move"`
}

// Decode parses a YAML (or JSON, which is valid YAML) table definition.
func Decode(data []byte) (*Table, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse table definition: %w", err)
	}
	return FromMap(raw)
}

// FromMap decodes an already parsed document.
// Weak typing is enabled so unquoted digits ("read: 0") still become symbols.
func FromMap(raw map[string]any) (*Table, error) {
	var def Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &def,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTable, err)
	}
	return def.Build()
}

// Build converts the definition into an immutable Table.
func (d Definition) Build() (*Table, error) {
	b := NewBuilder(d.Name)
	if d.Start != "" {
		b.Start(domain.State(d.Start))
	}
	if d.Accept != "" {
		b.Accept(domain.State(d.Accept))
	}
	if d.Blank != "" {
		blank, err := domain.ParseSymbol(d.Blank)
		if err != nil {
			return nil, fmt.Errorf("%w: blank: %v", domain.ErrInvalidTable, err)
		}
		b.Blank(blank)
	}
	for _, s := range d.States {
		b.State(domain.State(s))
	}

	for i, r := range d.Rules {
		if r.From == "" || r.Next == "" {
			return nil, fmt.Errorf("%w: rule %d: from and next are required", domain.ErrInvalidTable, i)
		}
		read, err := domain.ParseSymbol(r.Read)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d: read: %v", domain.ErrInvalidTable, i, err)
		}
		write, err := domain.ParseSymbol(r.Write)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d: write: %v", domain.ErrInvalidTable, i, err)
		}
		move, err := domain.ParseDirection(r.Move)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d: %v", domain.ErrInvalidTable, i, err)
		}
		b.State(domain.State(r.From)).On(read, domain.State(r.Next), write, move)
	}

	return b.Build()
}

// Definition returns the serializable form of the table.
func (t *Table) Definition() Definition {
	def := Definition{
		Name:   t.name,
		Start:  string(t.start),
		Accept: string(t.accept),
		Blank:  t.blank.String(),
	}
	for _, s := range t.states {
		def.States = append(def.States, string(s))
	}
	for _, r := range t.rules {
		def.Rules = append(def.Rules, RuleDefinition{
			From:  string(r.From),
			Read:  r.Read.String(),
			Next:  string(r.Next),
			Write: r.Write.String(),
			Move:  string(r.Move),
		})
	}
	return def
}

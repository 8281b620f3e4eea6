// Package models defines the closed catalog of target models.
package models

// ID identifies a target model.
type ID string

const (
	Opus   ID = "opus"
	Sonnet ID = "sonnet"
	Haiku  ID = "haiku"
)

// Model describes a target model: pricing is USD per million tokens.
type Model struct {
	ID          ID       `json:"id"`
	DisplayName string   `json:"displayName"`
	InputPrice  float64  `json:"inputPrice"`
	OutputPrice float64  `json:"outputPrice"`
	Strengths   []string `json:"strengths"`
}

// Catalog is an ordered, immutable set of models. The first entry is the
// default and the fallback for unknown IDs.
type Catalog struct {
	list []Model
	byID map[ID]Model
}

// NewCatalog builds a catalog from an ordered model list.
func NewCatalog(list []Model) Catalog {
	byID := make(map[ID]Model, len(list))
	for _, m := range list {
		byID[m.ID] = m
	}
	return Catalog{list: list, byID: byID}
}

// DefaultCatalog returns the built-in model catalog.
func DefaultCatalog() Catalog {
	return NewCatalog([]Model{
		{
			ID:          Opus,
			DisplayName: "Claude Opus",
			InputPrice:  15.0,
			OutputPrice: 75.0,
			Strengths:   []string{"complex reasoning", "creative writing", "nuanced analysis"},
		},
		{
			ID:          Sonnet,
			DisplayName: "Claude Sonnet",
			InputPrice:  3.0,
			OutputPrice: 15.0,
			Strengths:   []string{"balanced speed and depth", "step-by-step reasoning", "coding"},
		},
		{
			ID:          Haiku,
			DisplayName: "Claude Haiku",
			InputPrice:  0.80,
			OutputPrice: 4.0,
			Strengths:   []string{"low latency", "high volume", "direct tasks"},
		},
	})
}

// Get returns the model for id. Unknown IDs resolve to the default model
// rather than erroring.
func (c Catalog) Get(id ID) Model {
	if m, ok := c.byID[id]; ok {
		return m
	}
	return c.Default()
}

// Default returns the first model in the catalog.
func (c Catalog) Default() Model {
	return c.list[0]
}

// All returns the models in catalog order.
func (c Catalog) All() []Model {
	out := make([]Model, len(c.list))
	copy(out, c.list)
	return out
}

// IDs returns the model IDs in catalog order.
func (c Catalog) IDs() []ID {
	ids := make([]ID, len(c.list))
	for i, m := range c.list {
		ids[i] = m.ID
	}
	return ids
}

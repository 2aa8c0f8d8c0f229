package record

// Collection is a NAKALA collection payload. Collections group datasets
// and carry their own metas; membership is not ownership, so removing a
// dataset from a collection never deletes the dataset.
type Collection struct {
	Status string   `json:"status,omitempty"`
	Metas  []Meta   `json:"metas"`
	Datas  []string `json:"datas,omitempty"`
	Rights []Right  `json:"rights,omitempty"`
}

// NewCollection creates an empty private collection payload.
func NewCollection() *Collection {
	return &Collection{Status: StatusPrivate, Metas: make([]Meta, 0)}
}

// Title returns the collection title, preferring the given language.
func (c *Collection) Title(lang string) string {
	return TitleIn(c.Metas, lang)
}

// AddMeta appends a metadata entry.
func (c *Collection) AddMeta(m Meta) {
	c.Metas = append(c.Metas, m)
}

package record

// FileInfo describes an uploaded file as NAKALA returns it from
// POST /datas/uploads. The full object, not just the sha1, must be echoed
// back when creating a dataset.
type FileInfo struct {
	Name        string `json:"name"`
	SHA1        string `json:"sha1"`
	Size        int64  `json:"size,omitempty"`
	MimeType    string `json:"mime_type,omitempty"`
	Embargoed   string `json:"embargoed,omitempty"`
	Description string `json:"description,omitempty"`
}

// Data is a NAKALA dataset payload. The same shape is used for creation
// (POST /datas), replacement (PUT /datas/{id}), and is a subset of what
// GET /datas/{id} returns.
type Data struct {
	Status         string     `json:"status,omitempty"`
	Files          []FileInfo `json:"files,omitempty"`
	Metas          []Meta     `json:"metas"`
	CollectionsIds []string   `json:"collectionsIds,omitempty"`
	Rights         []Right    `json:"rights,omitempty"`
}

// NewData creates an empty pending dataset payload.
func NewData() *Data {
	return &Data{Status: StatusPending, Metas: make([]Meta, 0)}
}

// Title returns the dataset title, preferring the given language.
func (d *Data) Title(lang string) string {
	return TitleIn(d.Metas, lang)
}

// AddMeta appends a metadata entry.
func (d *Data) AddMeta(m Meta) {
	d.Metas = append(d.Metas, m)
}

// Deposit is one unit of batch work: a dataset payload plus everything
// needed to realize it against the API — local files still to upload and
// the collections the dataset should be affected to. Collections may be
// identifiers or titles; titles are resolved (or created) at import time.
type Deposit struct {
	Data        *Data
	FilePaths   []string
	Collections []string

	// Kind is "data" (default) or "collection", used by the modify and
	// delete workflows to route API calls.
	Kind string

	// Row is the 1-based source row in the CSV manifest, when the deposit
	// came from one. Zero otherwise.
	Row int

	// ID is set once the dataset exists on the server, or when the
	// manifest targets an existing dataset (modify/delete workflows).
	ID string
}

// NewDeposit creates a deposit wrapping an empty pending dataset.
func NewDeposit() *Deposit {
	return &Deposit{Data: NewData()}
}

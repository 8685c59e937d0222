package pagelabel

import "context"

// Dataset column names.
const (
	ColumnFileName      = "file_name"
	ColumnTitle         = "title"
	ColumnStoreName     = "store_name"
	ColumnStoreLocation = "store_location"
	ColumnPageTemplate  = "page_template"
	ColumnKeywords      = "keywords"
)

// Columns lists the metadata dataset columns in serialization order.
var Columns = []string{
	ColumnFileName,
	ColumnTitle,
	ColumnStoreName,
	ColumnStoreLocation,
	ColumnPageTemplate,
	ColumnKeywords,
}

// Metadata holds the labels extracted from a single document.
type Metadata struct {
	FileName      string   `json:"fileName"`
	Title         string   `json:"title"` // Serial number removed
	StoreName     string   `json:"storeName"`
	StoreLocation string   `json:"storeLocation"`
	PageTemplate  string   `json:"pageTemplate"`
	Keywords      []string `json:"keywords"`
}

// Row is a metadata record keyed by column name.
type Row map[string]string

// Row returns the record as a Row with keywords serialized by JoinKeywords.
func (m *Metadata) Row() Row {
	return Row{
		ColumnFileName:      m.FileName,
		ColumnTitle:         m.Title,
		ColumnStoreName:     m.StoreName,
		ColumnStoreLocation: m.StoreLocation,
		ColumnPageTemplate:  m.PageTemplate,
		ColumnKeywords:      JoinKeywords(m.Keywords),
	}
}

// Values returns the record's fields in Columns order.
func (m *Metadata) Values() []string {
	row := m.Row()
	values := make([]string, len(Columns))
	for i, c := range Columns {
		values[i] = row[c]
	}
	return values
}

// MetadataFromRow parses a Row back into Metadata.
// Returns EINVALID if the file name column is missing.
func MetadataFromRow(row Row) (*Metadata, error) {
	if row[ColumnFileName] == "" {
		return nil, Errorf(EINVALID, "metadata row missing %s", ColumnFileName)
	}
	return &Metadata{
		FileName:      row[ColumnFileName],
		Title:         row[ColumnTitle],
		StoreName:     row[ColumnStoreName],
		StoreLocation: row[ColumnStoreLocation],
		PageTemplate:  row[ColumnPageTemplate],
		Keywords:      SplitKeywords(row[ColumnKeywords]),
	}, nil
}

// MetadataWriter serializes metadata records to a dataset.
type MetadataWriter interface {
	WriteMetadata(m *Metadata) error
	Flush() error
}

// Assembler composes title decomposition, location extraction and keyword
// matching into one Metadata record per document. It holds only read-only
// configuration and is safe for concurrent use.
type Assembler struct {
	Rules     TitleRules
	Locations *LocationExtractor
	Corpus    KeywordCorpus
}

// NewAssembler returns an Assembler using the default title rules.
func NewAssembler(locations *LocationExtractor, corpus KeywordCorpus) *Assembler {
	return &Assembler{
		Rules:     DefaultTitleRules(),
		Locations: locations,
		Corpus:    corpus,
	}
}

// Assemble extracts metadata from a document whose body is already
// flattened.
func (a *Assembler) Assemble(ctx context.Context, doc *Document) (*Metadata, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	parts := a.Rules.Decompose(doc.Title)

	var location string
	if a.Locations != nil {
		var err error
		location, err = a.Locations.ExtractLocation(ctx, doc.Title, doc.Body)
		if err != nil {
			return nil, err
		}
	}

	return &Metadata{
		FileName:      doc.FileName,
		Title:         CleanTitle(doc.Title),
		StoreName:     parts.StoreName,
		StoreLocation: location,
		PageTemplate:  parts.PageTemplate,
		Keywords:      MatchKeywords(a.Corpus, doc.Body),
	}, nil
}

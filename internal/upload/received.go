package upload

// StoredFile is a file part that was written to the upload directory.
type StoredFile struct {
	Field        string // form field the file arrived under
	OriginalName string // client-provided filename
	Name         string // generated name on disk
	ContentType  string // declared content type
	Size         int64  // bytes written
	Path         string // public path, e.g. /uploads/<name>
}

// Received holds the files written for a single request in one of three
// shapes: a single file, a flat list, or a field-keyed mapping. Cleanup
// type-switches over it and deletes every file regardless of shape.
type Received interface {
	// All returns every stored file in the container. Never nil entries.
	All() []*StoredFile
}

// One is the shape of a single-file route. File may be nil when nothing was
// written before the request failed.
type One struct {
	File *StoredFile
}

func (o One) All() []*StoredFile {
	if o.File == nil {
		return nil
	}
	return []*StoredFile{o.File}
}

// Many is the shape of a multi-file route with one field.
type Many struct {
	List []*StoredFile
}

func (m Many) All() []*StoredFile {
	return m.List
}

// ByField is the shape of a mixed route with several file fields. Order
// preserves the declared field order for deterministic listings.
type ByField struct {
	Fields map[string][]*StoredFile
	Order  []string
}

func (b ByField) All() []*StoredFile {
	var files []*StoredFile
	for _, field := range b.Order {
		files = append(files, b.Fields[field]...)
	}
	return files
}

package typemap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/net/html/charset"
)

// Tag names of the mapping document.
const (
	mappingTag = "mapping"
	fromTag    = "from"
	toTag      = "to"
)

// LoadFile loads a mapping table from the XML file at path.
func LoadFile(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ResourceNotFoundError{Resource: path, Err: err}
	}
	defer f.Close()

	return Load(f, path, opts...)
}

// LoadFS loads a mapping table from the named file in fsys.
func LoadFS(fsys fs.FS, name string, opts ...Option) (*Table, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, &ResourceNotFoundError{Resource: name, Err: err}
	}
	defer f.Close()

	return Load(f, name, opts...)
}

// Load reads a mapping document from r in a single forward pass.
// source identifies the resource in logs and errors.
func Load(r io.Reader, source string, opts ...Option) (*Table, error) {
	if r == nil {
		return nil, &ResourceNotFoundError{Resource: source}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	o.logger.Info("Reading type mappings", "resource", source)

	src := &trackingReader{r: r}

	dec := xml.NewDecoder(src)
	dec.CharsetReader = charset.NewReaderLabel

	entries, err := parse(dec, o)
	if err != nil {
		if src.err != nil {
			return nil, &ResourceNotFoundError{Resource: source, Err: src.err}
		}

		return nil, &MalformedMappingError{Resource: source, Err: err}
	}

	t := &Table{source: source, entries: entries}

	o.logger.Info("Initialized type mappings", "count", t.Len(), "types", t.Keys())

	return t, nil
}

// block accumulates the from/to values of one mapping element.
type block struct {
	from  map[string]struct{}
	to    string
	hasTo bool
}

func (b *block) reset() {
	clear(b.from)
	b.to = ""
	b.hasTo = false
}

func parse(dec *xml.Decoder, o options) (map[string]string, error) {
	entries := make(map[string]string)
	cur := block{from: make(map[string]struct{})}
	sawRoot := false
	depth := 0

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if depth == 0 && sawRoot {
				return nil, fmt.Errorf("content after root element: <%s>", el.Name.Local)
			}

			sawRoot = true

			switch el.Name.Local {
			case fromTag:
				text, err := elementText(dec, el)
				if err != nil {
					return nil, err
				}

				if text != "" {
					cur.from[text] = struct{}{}
				}
			case toTag:
				text, err := elementText(dec, el)
				if err != nil {
					return nil, err
				}

				cur.to = text
				cur.hasTo = true
			default:
				depth++
			}
		case xml.EndElement:
			depth--

			if el.Name.Local != mappingTag {
				continue
			}

			if cur.hasTo {
				for from := range cur.from {
					if o.addNamespace {
						from = Normalize(from)
					}

					if prev, ok := entries[from]; ok && prev != cur.to {
						o.logger.Debug("Overwriting type mapping", "type", from, "old", prev, "new", cur.to)
					}

					entries[from] = cur.to
				}
			}

			cur.reset()
		}
	}

	if !sawRoot {
		return nil, errors.New("no root element")
	}

	return entries, nil
}

// elementText returns the character content of a text-only element and
// consumes its end tag.
func elementText(dec *xml.Decoder, start xml.StartElement) (string, error) {
	var text []byte

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("unexpected end of document in <%s>", start.Name.Local)
			}

			return "", err
		}

		switch el := tok.(type) {
		case xml.CharData:
			text = append(text, el...)
		case xml.StartElement:
			return "", fmt.Errorf("unexpected element <%s> in text-only element <%s>",
				el.Name.Local, start.Name.Local)
		case xml.EndElement:
			return string(text), nil
		}
	}
}

// trackingReader remembers the first read failure of the underlying reader
// so it can be told apart from a syntax error.
type trackingReader struct {
	r   io.Reader
	err error
}

func (tr *trackingReader) Read(p []byte) (int, error) {
	n, err := tr.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && tr.err == nil {
		tr.err = err
	}

	return n, err
}

package reader

import "github.com/ondrovic/goschem/internal/value"

// ReadAll parses every top-level datum in text, in order.
func ReadAll(text, label string, h *value.Heap) ([]value.Value, error) {
	p := NewParser(NewLexer(text, label), h)
	var forms []value.Value
	for {
		eof, err := p.AtEOF()
		if err != nil {
			return nil, err
		}
		if eof {
			return forms, nil
		}
		d, err := p.ReadDatum()
		if err != nil {
			return nil, err
		}
		forms = append(forms, d)
	}
}

// ReadOne parses a single datum from text, reporting whether any
// non-whitespace input remained. Any input after the first datum is
// left unread.
func ReadOne(text, label string, h *value.Heap) (value.Value, bool, error) {
	p := NewParser(NewLexer(text, label), h)
	eof, err := p.AtEOF()
	if err != nil {
		return value.Value{}, false, err
	}
	if eof {
		return value.Value{}, false, nil
	}
	d, err := p.ReadDatum()
	if err != nil {
		return value.Value{}, false, err
	}
	return d, true, nil
}

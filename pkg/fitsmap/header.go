package fitsmap

import(
	"github.com/astrogo/fitsio"
)

// A Header is the key-value metadata block that rides along with a
// FITS pixel grid. Card order is preserved so a written file keeps
// the same layout a human would see in the input.
type Header struct {
	cards []fitsio.Card
	index map[string]int
}

func NewHeader() *Header {
	return &Header{index: map[string]int{}}
}

func (h *Header)Get(key string) (interface{}, bool) {
	i, ok := h.index[key]
	if !ok {
		return nil, false
	}
	return h.cards[i].Value, true
}

// Set updates a card in place, or appends a new one.
func (h *Header)Set(key string, value interface{}, comment string) {
	if i, ok := h.index[key]; ok {
		h.cards[i].Value = value
		if comment != "" {
			h.cards[i].Comment = comment
		}
		return
	}
	h.index[key] = len(h.cards)
	h.cards = append(h.cards, fitsio.Card{Name: key, Value: value, Comment: comment})
}

func (h *Header)Keys() []string {
	keys := make([]string, 0, len(h.cards))
	for _, c := range h.cards {
		keys = append(keys, c.Name)
	}
	return keys
}

func (h *Header)Cards() []fitsio.Card { return h.cards }

// Float reads a numeric card. FITS writers are sloppy about whether
// a quantity comes out as an integer or a real, so both coerce.
func (h *Header)Float(key string) (float64, bool) {
	v, ok := h.Get(key)
	if !ok {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	}
	return 0, false
}

func (h *Header)Int(key string) (int, bool) {
	f, ok := h.Float(key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func (h *Header)Copy() *Header {
	h2 := NewHeader()
	for _, c := range h.cards {
		h2.Set(c.Name, c.Value, c.Comment)
	}
	return h2
}

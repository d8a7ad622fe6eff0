package specifier

// Kind selects how a placeholder argument is converted to text.
type Kind uint8

const (
	Bare Kind = iota
	Integer
	Float
	Array
	Identifier
)

// Marker opens every placeholder in a template.
const Marker = '?'

var symbols = map[string]Kind{
	"":  Bare,
	"d": Integer,
	"f": Float,
	"a": Array,
	"#": Identifier,
}

var names = [...]string{
	Bare:       "bare",
	Integer:    "integer",
	Float:      "float",
	Array:      "array",
	Identifier: "identifier",
}

// Lookup maps the text following the marker to its Kind.
func Lookup(symbol string) (Kind, bool) {
	k, ok := symbols[symbol]
	return k, ok
}

// Symbol returns the specifier symbol written after the marker.
func (k Kind) Symbol() string {
	switch k {
	case Integer:
		return "d"
	case Float:
		return "f"
	case Array:
		return "a"
	case Identifier:
		return "#"
	default:
		return ""
	}
}

// IsList reports whether the kind renders a comma-joined element list.
func (k Kind) IsList() bool {
	return k == Array || k == Identifier
}

func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

package component

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKind is returned for a type/subtype pair outside the catalog.
	ErrUnknownKind = errors.New("component: unknown kind")
	// ErrDegenerate is returned for a resistor whose terminals coincide.
	ErrDegenerate = errors.New("component: degenerate geometry")
)

// Kind enumerates every symbol the editor can place.
type Kind int

const (
	// KindUnknown is the zero value and never built.
	KindUnknown Kind = iota
	ResistorRectangle
	ResistorZigzag
	LabelTag
	LabelGround
	LabelPositive
)

// Kinds lists every buildable kind in palette order.
func Kinds() []Kind {
	return []Kind{ResistorRectangle, ResistorZigzag, LabelTag, LabelGround, LabelPositive}
}

// Type returns the persisted type name ("resistor" or "label").
func (k Kind) Type() string {
	switch k {
	case ResistorRectangle, ResistorZigzag:
		return "resistor"
	case LabelTag, LabelGround, LabelPositive:
		return "label"
	}
	return ""
}

// Subtype returns the persisted subtype name.
func (k Kind) Subtype() string {
	switch k {
	case ResistorRectangle:
		return "rectangle"
	case ResistorZigzag:
		return "zigzag"
	case LabelTag:
		return "tag"
	case LabelGround:
		return "gnd"
	case LabelPositive:
		return "positive"
	}
	return ""
}

func (k Kind) String() string {
	if k.Type() == "" {
		return "unknown"
	}
	return k.Type() + "/" + k.Subtype()
}

// IsResistor reports whether k is a two-terminal resistor.
func (k Kind) IsResistor() bool {
	return k == ResistorRectangle || k == ResistorZigzag
}

// IsLabel reports whether k is a single-node label.
func (k Kind) IsLabel() bool {
	return k == LabelTag || k == LabelGround || k == LabelPositive
}

// Lookup maps a persisted (type, subtype) pair to its Kind.
func Lookup(typ, subtype string) (Kind, error) {
	for _, k := range Kinds() {
		if k.Type() == typ && k.Subtype() == subtype {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w %q", ErrUnknownKind, typ+"/"+subtype)
}

// ParseKind accepts the "type/subtype" form produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	typ, subtype, ok := strings.Cut(s, "/")
	if !ok {
		return KindUnknown, fmt.Errorf("%w %q", ErrUnknownKind, s)
	}
	return Lookup(typ, subtype)
}

package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/chewxy/sexp"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

// SheetVersion is the only sheet version ReadSheet accepts.
const SheetVersion = 1

const sheetTag = "ots_sketch"

// ErrBadSheet is returned for input that is not a sketch sheet.
var ErrBadSheet = errors.New("store: malformed sheet")

// WriteSheet writes records as an s-expression sheet:
//
//	(ots_sketch (version 1)
//	  (component (type resistor) (subtype zigzag) (at 150 100) (angle 0) (seed 42)
//	    (node1 100 100) (node2 200 100))
//	)
//
// Symbols cannot hold spaces or parentheses, so label text is written
// percent-encoded: "Hello world" becomes Hello%20world.
func WriteSheet(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "(%s (version %d)\n", sheetTag, SheetVersion)
	for _, r := range records {
		fmt.Fprintf(bw, "  (component (type %s) (subtype %s) (at %s %s) (angle %s) (seed %d)",
			r.Type, r.Subtype, num(r.X), num(r.Y), num(r.Angle), r.Seed)
		if r.Text != "" {
			fmt.Fprintf(bw, " (text %s)", url.PathEscape(r.Text))
		}
		if r.Node1 != nil {
			fmt.Fprintf(bw, "\n    (node1 %s %s)", num(r.Node1.X), num(r.Node1.Y))
		}
		if r.Node2 != nil {
			fmt.Fprintf(bw, " (node2 %s %s)", num(r.Node2.X), num(r.Node2.Y))
		}
		bw.WriteString(")\n")
	}
	bw.WriteString(")\n")
	return bw.Flush()
}

// ReadSheet parses a sheet written by WriteSheet.
func ReadSheet(r io.Reader) ([]Record, error) {
	exprs, err := sexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("store: parse sheet: %w", err)
	}
	if len(exprs) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrBadSheet)
	}
	root := listItems(exprs[0])
	if len(root) == 0 || atom(root[0]) != sheetTag {
		return nil, fmt.Errorf("%w: expected (%s ...)", ErrBadSheet, sheetTag)
	}

	var records []Record
	for _, item := range root[1:] {
		fields := listItems(item)
		if len(fields) == 0 {
			continue
		}
		switch atom(fields[0]) {
		case "version":
			v, err := floatAt(fields, 1)
			if err != nil {
				return nil, fmt.Errorf("%w: version: %v", ErrBadSheet, err)
			}
			if int(v) != SheetVersion {
				return nil, fmt.Errorf("%w: unsupported version %g", ErrBadSheet, v)
			}
		case "component":
			rec, err := readComponent(fields[1:])
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

func readComponent(fields []sexp.Sexp) (Record, error) {
	var rec Record
	for _, f := range fields {
		items := listItems(f)
		if len(items) == 0 {
			continue
		}
		var err error
		switch key := atom(items[0]); key {
		case "type":
			rec.Type, err = atomAt(items, 1)
		case "subtype":
			rec.Subtype, err = atomAt(items, 1)
		case "text":
			var raw string
			if raw, err = atomAt(items, 1); err == nil {
				rec.Text, err = url.PathUnescape(raw)
			}
		case "at":
			var p geom.Point
			p, err = pointAt(items)
			rec.X, rec.Y = p.X, p.Y
		case "angle":
			rec.Angle, err = floatAt(items, 1)
		case "seed":
			var s string
			if s, err = atomAt(items, 1); err == nil {
				rec.Seed, err = strconv.ParseInt(s, 10, 64)
			}
		case "node1", "node2":
			var p geom.Point
			if p, err = pointAt(items); err == nil {
				if key == "node1" {
					rec.Node1 = &p
				} else {
					rec.Node2 = &p
				}
			}
		}
		if err != nil {
			return Record{}, fmt.Errorf("%w: component %s: %v", ErrBadSheet, atom(items[0]), err)
		}
	}
	if rec.Type == "" || rec.Subtype == "" {
		return Record{}, fmt.Errorf("%w: component without type/subtype", ErrBadSheet)
	}
	return rec, nil
}

// listItems flattens an s-expression list into its elements.
func listItems(s sexp.Sexp) []sexp.Sexp {
	var items []sexp.Sexp
	if s == nil || s.IsLeaf() {
		return items
	}
	for s != nil {
		n := s.LeafCount()
		if n == 0 {
			break
		}
		if head := s.Head(); head != nil {
			items = append(items, head)
		}
		if n <= 1 {
			break
		}
		s = s.Tail()
		if s == nil || s.IsLeaf() {
			break
		}
	}
	return items
}

// atom returns the text of a leaf.
func atom(s sexp.Sexp) string {
	if s == nil || !s.IsLeaf() {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(s))
}

func atomAt(items []sexp.Sexp, i int) (string, error) {
	if i >= len(items) || !items[i].IsLeaf() {
		return "", fmt.Errorf("missing value at %d", i)
	}
	return atom(items[i]), nil
}

func floatAt(items []sexp.Sexp, i int) (float64, error) {
	s, err := atomAt(items, i)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}

func pointAt(items []sexp.Sexp) (geom.Point, error) {
	x, err := floatAt(items, 1)
	if err != nil {
		return geom.Point{}, err
	}
	y, err := floatAt(items, 2)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(x, y), nil
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

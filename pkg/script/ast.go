package script

import "github.com/alecthomas/participle/v2/lexer"

// Script is a sequence of editor steps:
//
//	tool resistor/zigzag
//	drag (400, 300) to (403, 352)
//	place label/tag (100, 100) angle 90 text "VCC"
//	expect 2
type Script struct {
	Steps []*Step `@@*`
}

// Step is one command. Exactly one field is set.
type Step struct {
	Pos lexer.Position

	Tool     *string     `  "tool" @Kind`
	Press    *Coord      `| "press" @@`
	Move     *Coord      `| "move" @@`
	Release  *Coord      `| "release" @@`
	Drag     *DragStep   `| @@`
	DblClick *Coord      `| "dblclick" @@`
	Type     *string     `| "type" @String`
	Commit   bool        `| @"commit"`
	Delete   *DeleteStep `| @@`
	Clear    bool        `| @"clear"`
	Place    *PlaceStep  `| @@`
	Expect   *int        `| "expect" @Number`
}

// Coord is a point in canvas coordinates, written "x y" or "(x, y)".
type Coord struct {
	X float64 `"("? @Number ","?`
	Y float64 `@Number ")"?`
}

// DragStep presses at From, moves through Via and releases at To.
type DragStep struct {
	From *Coord   `"drag" @@`
	Via  []*Coord `( "via" @@ )*`
	To   *Coord   `"to" @@`
}

// DeleteStep removes the selection or a component by id.
type DeleteStep struct {
	Selected bool `"delete" ( @"selected"`
	ID       *int `        | @Number )`
}

// PlaceStep adds a component without going through gestures.
// Resistors need "to" for their second terminal.
type PlaceStep struct {
	Kind  string   `"place" @Kind`
	At    *Coord   `@@`
	To    *Coord   `( "to" @@ )?`
	Angle *float64 `( "angle" @Number )?`
	Text  *string  `( "text" @String )?`
	Seed  *int64   `( "seed" @Number )?`
}

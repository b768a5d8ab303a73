package navigation

import (
	"strconv"
	"strings"

	"github.com/dshills/gridnav/internal/reference"
)

var directions = map[string]Direction{
	"left":  Left,
	"right": Right,
	"up":    Up,
	"down":  Down,
}

// Parse reads one navigation command:
//
//	left column | right column | up row | down row
//	extend-left column | ... | extend-down row
//	left 10px | ... | extend-down -20px
//	select cell A1 | select column B | select row 3
//
// Words are case sensitive and separated by whitespace. Pixel amounts may be
// negative but never carry a "+" sign.
func Parse(text string) (Navigation, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, &CommandError{Text: text, Message: "empty command"}
	}
	if fields[0] == "select" {
		return parseSelect(text, fields)
	}
	if len(fields) != 2 {
		return nil, &CommandError{Text: text, Message: "expected <direction> <column|row|Npx>"}
	}

	word, extend := strings.CutPrefix(fields[0], "extend-")
	dir, ok := directions[word]
	if !ok {
		return nil, &CommandError{Text: text, Message: "unknown direction " + strconv.Quote(fields[0])}
	}

	switch arg := fields[1]; {
	case arg == "column" || arg == "row":
		if arg != dir.unit() {
			return nil, &CommandError{Text: text, Message: dir.String() + " moves by " + dir.unit()}
		}
		return NewUnit(dir, extend), nil
	case strings.HasSuffix(arg, "px"):
		amount, err := parseAmount(strings.TrimSuffix(arg, "px"))
		if err != nil {
			return nil, &CommandError{Text: text, Message: "invalid pixel amount", Err: err}
		}
		return NewPixels(dir, amount, extend), nil
	default:
		return nil, &CommandError{Text: text, Message: "expected column, row or Npx, got " + strconv.Quote(arg)}
	}
}

// parseAmount accepts an optional leading "-" followed by digits.
func parseAmount(s string) (int, error) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

func parseSelect(text string, fields []string) (Navigation, error) {
	if len(fields) != 3 {
		return nil, &CommandError{Text: text, Message: "expected select <cell|column|row> <reference>"}
	}

	var (
		target reference.Selection
		err    error
	)
	switch fields[1] {
	case "cell":
		target, err = reference.ParseCell(fields[2])
	case "column":
		target, err = reference.ParseColumn(fields[2])
	case "row":
		target, err = reference.ParseRow(fields[2])
	default:
		return nil, &CommandError{Text: text, Message: "cannot select " + strconv.Quote(fields[1])}
	}
	if err != nil {
		return nil, &CommandError{Text: text, Message: "invalid " + fields[1], Err: err}
	}
	return Select{target: target}, nil
}

// ParseList reads comma separated commands. Blank text is the empty list.
func ParseList(text string) (List, error) {
	if strings.TrimSpace(text) == "" {
		return List{}, nil
	}
	parts := strings.Split(text, ",")
	items := make([]Navigation, 0, len(parts))
	for _, part := range parts {
		n, err := Parse(part)
		if err != nil {
			return List{}, err
		}
		items = append(items, n)
	}
	return List{items: items}, nil
}

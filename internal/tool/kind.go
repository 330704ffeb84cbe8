// Package tool routes pointer gestures to the active drawing tool.
package tool

import (
	"fmt"
	"strings"
)

type Kind uint8

const (
	Draw Kind = iota
	Rectangle
	Select
	Lasso
)

var kindNames = [...]string{
	Draw:      "draw",
	Rectangle: "rectangle",
	Select:    "select",
	Lasso:     "lasso",
}

// Kinds lists every tool in toolbar order.
func Kinds() []Kind { return []Kind{Draw, Rectangle, Select, Lasso} }

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind accepts a tool name in any case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return Draw, fmt.Errorf("unknown tool %q", s)
}

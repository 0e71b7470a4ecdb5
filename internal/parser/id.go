// Package parser provides argument and timestamp parsing for ctt.
package parser

import (
	"strconv"
	"strings"
)

// ParseCompanyID parses a company id argument.
func ParseCompanyID(arg string) (int64, error) {
	return parseID("company", arg)
}

// ParseCommentID parses a note id argument.
func ParseCommentID(arg string) (int64, error) {
	return parseID("note", arg)
}

func parseID(kind, arg string) (int64, error) {
	arg = strings.TrimPrefix(strings.TrimSpace(arg), "#")
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, &IDError{Kind: kind, Input: arg}
	}
	return id, nil
}

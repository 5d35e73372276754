package identify

import (
	"errors"
	"fmt"
	stdlib "regexp"

	gore2 "github.com/wasilibs/go-re2"
)

const (
	EngineStdlib = "stdlib"
	EngineRE2    = "re2"
)

var ErrUnknownEngine = errors.New("unknown regex engine")

// matcher is satisfied by both *stdlib.Regexp and *gore2.Regexp.
type matcher interface {
	MatchString(s string) bool
	FindAllString(s string, n int) []string
	String() string
}

func compile(engine, expr string) (matcher, error) {
	switch engine {
	case EngineStdlib, "":
		return stdlib.Compile(expr)
	case EngineRE2:
		return gore2.Compile(expr)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, engine)
	}
}

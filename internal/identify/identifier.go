package identify

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/h2non/filetype"

	"github.com/lemmeknow/lemmeknow-cli/internal/config"
	"github.com/lemmeknow/lemmeknow-cli/internal/logging"
)

// Match is one identification: the matched text and the pattern it matched.
type Match struct {
	Text string         `json:"text"`
	Data config.Pattern `json:"data"`
}

// Options narrows the pattern database and selects how text is matched.
type Options struct {
	MinRarity    float64
	MaxRarity    float64
	Tags         []string
	ExcludeTags  []string
	Boundaryless bool
	Engine       string
}

func DefaultOptions() Options {
	return Options{MinRarity: 0.1, MaxRarity: 1, Engine: EngineStdlib}
}

func (o Options) validate() error {
	if o.MinRarity < 0 || o.MinRarity > 1 {
		return fmt.Errorf("min rarity %v out of range [0, 1]", o.MinRarity)
	}
	if o.MaxRarity < 0 || o.MaxRarity > 1 {
		return fmt.Errorf("max rarity %v out of range [0, 1]", o.MaxRarity)
	}
	if o.MinRarity > o.MaxRarity {
		return errors.New("min rarity is greater than max rarity")
	}
	switch o.Engine {
	case EngineStdlib, EngineRE2, "":
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEngine, o.Engine)
	}
	return nil
}

func (o Options) selects(p config.Pattern) bool {
	if p.Rarity < o.MinRarity || p.Rarity > o.MaxRarity {
		return false
	}
	if len(o.Tags) > 0 && !p.HasTag(o.Tags...) {
		return false
	}
	return !p.HasTag(o.ExcludeTags...)
}

type compiled struct {
	pattern config.Pattern
	// anchored must match the whole input, loose finds occurrences anywhere.
	anchored matcher
	loose    matcher
}

type Identifier struct {
	opts     Options
	patterns []compiled
	byName   map[string]int
}

// New compiles the patterns of cfg selected by opts, ordered by descending rarity.
func New(cfg config.Config, opts Options) (*Identifier, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	id := &Identifier{opts: opts, byName: map[string]int{}}
	for _, p := range cfg.Patterns {
		if !opts.selects(p) {
			continue
		}
		core := stripAnchors(p.Regex)
		anchored, err := compile(opts.Engine, "^(?:"+core+")$")
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p.Name, err)
		}
		loose, err := compile(opts.Engine, core)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p.Name, err)
		}
		id.patterns = append(id.patterns, compiled{pattern: p, anchored: anchored, loose: loose})
	}
	sort.SliceStable(id.patterns, func(i, j int) bool {
		return id.patterns[i].pattern.Rarity > id.patterns[j].pattern.Rarity
	})
	for i, c := range id.patterns {
		id.byName[c.pattern.Name] = i
	}
	logging.Debug().Int("patterns", len(id.patterns)).Str("engine", opts.Engine).Bool("boundaryless", opts.Boundaryless).Msg("identifier ready")
	return id, nil
}

// Identify returns the matches for text, in pattern order.
func (id *Identifier) Identify(text string) []Match {
	return id.identify(text, id.opts.Boundaryless)
}

// ErrBinaryFile is returned by IdentifyFile for files of a known binary type.
var ErrBinaryFile = errors.New("not a text file")

// IdentifyFile identifies the contents of the file at path. File contents are
// always searched boundaryless.
func (id *Identifier) IdentifyFile(path string) ([]Match, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if kind, _ := filetype.Match(b); kind != filetype.Unknown {
		return nil, fmt.Errorf("%s (%s): %w", path, kind.MIME.Value, ErrBinaryFile)
	}
	return id.identify(string(b), true), nil
}

func (id *Identifier) identify(text string, boundaryless bool) []Match {
	var out []Match
	for _, c := range id.patterns {
		if !boundaryless {
			if c.anchored.MatchString(text) {
				out = append(out, Match{Text: text, Data: c.pattern})
			}
			continue
		}
		for _, m := range c.loose.FindAllString(text, -1) {
			if m == "" {
				continue
			}
			out = append(out, Match{Text: m, Data: c.pattern})
		}
	}
	logging.Debug().Int("matches", len(out)).Int("length", len(text)).Msg("identified")
	return out
}

// Patterns returns the selected patterns in evaluation order.
func (id *Identifier) Patterns() []config.Pattern {
	out := make([]config.Pattern, len(id.patterns))
	for i, c := range id.patterns {
		out[i] = c.pattern
	}
	return out
}

func (id *Identifier) Lookup(name string) (config.Pattern, bool) {
	i, ok := id.byName[name]
	if !ok {
		return config.Pattern{}, false
	}
	return id.patterns[i].pattern, true
}

// stripAnchors drops one leading ^ and one unescaped trailing $. A $ is
// escaped when an odd number of backslashes precede it.
func stripAnchors(expr string) string {
	expr = strings.TrimPrefix(expr, "^")
	if !strings.HasSuffix(expr, "$") {
		return expr
	}
	body := expr[:len(expr)-1]
	if n := len(body) - len(strings.TrimRight(body, `\`)); n%2 == 0 {
		return body
	}
	return expr
}

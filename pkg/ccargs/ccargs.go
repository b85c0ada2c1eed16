// Package ccargs parses a compiler invocation's argument list into
// human-readable include, define, and leftover-option reports.
package ccargs

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dmlevin/srctidy/pkg/errors"
)

// Define is a single -D entry. Value is meaningful only when HasValue is set.
type Define struct {
	Value    string
	HasValue bool
}

// Result is the classified argument list. Sets are deduplicated.
type Result struct {
	Includes       map[string]struct{}
	SystemIncludes map[string]struct{}
	Defines        map[string]Define
	Others         map[string]struct{}
}

// optArity lists options whose trailing arguments should be folded into the
// option itself rather than classified.
var optArity = map[string]int{
	"-o":  1,
	"-MF": 1,
}

// Parse classifies args. When curdir is non-empty, include paths under it are
// shown relative to it.
func Parse(args []string, curdir string) (*Result, error) {
	if curdir != "" && !strings.HasSuffix(curdir, "/") {
		curdir += "/"
	}

	r := &Result{
		Includes:       make(map[string]struct{}),
		SystemIncludes: make(map[string]struct{}),
		Defines:        make(map[string]Define),
		Others:         make(map[string]struct{}),
	}

	i := 0
	next := func() (string, error) {
		if i == len(args) {
			return "", errors.New(errors.ErrInvalidInput, "not enough arguments")
		}
		value := args[i]
		i++
		return value, nil
	}

	relInclude := func(include string) string {
		if curdir != "" && strings.HasPrefix(include, curdir) {
			return include[len(curdir):]
		}
		return include
	}

	for i < len(args) {
		arg := args[i]
		i++

		switch {
		case strings.HasPrefix(arg, "-I"):
			include := arg[2:]
			if include == "" {
				var err error
				if include, err = next(); err != nil {
					return nil, err
				}
			}
			r.Includes[relInclude(include)] = struct{}{}

		case arg == "-isystem":
			include, err := next()
			if err != nil {
				return nil, err
			}
			r.SystemIncludes[relInclude(include)] = struct{}{}

		case strings.HasPrefix(arg, "-D"):
			define := arg[2:]
			if define == "" {
				var err error
				if define, err = next(); err != nil {
					return nil, err
				}
			}
			key, value, hasValue := strings.Cut(define, "=")
			r.Defines[key] = Define{Value: value, HasValue: hasValue}

		default:
			arity, known := optArity[arg]
			if !known {
				r.Others[arg] = struct{}{}
				continue
			}
			parts := []string{arg}
			for n := 0; n < arity; n++ {
				value, err := next()
				if err != nil {
					return nil, err
				}
				parts = append(parts, value)
			}
			r.Others[strings.Join(parts, " ")] = struct{}{}
		}
	}

	return r, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RenderPlain writes the classic indented report.
func (r *Result) RenderPlain(w io.Writer) {
	if len(r.Includes) > 0 {
		fmt.Fprintf(w, "\nIncludes: %d\n", len(r.Includes))
		for _, include := range sortedKeys(r.Includes) {
			fmt.Fprintf(w, "    %s\n", include)
		}
	}

	if len(r.SystemIncludes) > 0 {
		fmt.Fprintf(w, "\nSystem Includes: %d\n", len(r.SystemIncludes))
		for _, include := range sortedKeys(r.SystemIncludes) {
			fmt.Fprintf(w, "    %s\n", include)
		}
	}

	if len(r.Defines) > 0 {
		fmt.Fprintf(w, "\nDefines: %d\n", len(r.Defines))
		keys := sortedKeys(r.Defines)
		maxKeyLen := 0
		for _, key := range keys {
			if len(key) > maxKeyLen {
				maxKeyLen = len(key)
			}
		}
		for _, key := range keys {
			define := r.Defines[key]
			if define.HasValue {
				fmt.Fprintf(w, "    %-*s = %s\n", maxKeyLen, key, define.Value)
			} else {
				fmt.Fprintf(w, "    %s\n", key)
			}
		}
	}

	if len(r.Others) > 0 {
		fmt.Fprintf(w, "\nOther arguments: %d\n", len(r.Others))
		for _, other := range sortedKeys(r.Others) {
			fmt.Fprintf(w, "    %s\n", other)
		}
	}
}

// RenderIDE writes the report as a YAML-ish fragment suitable for pasting
// into an IDE configuration manifest.
func (r *Result) RenderIDE(w io.Writer) {
	if len(r.Includes) > 0 {
		fmt.Fprintf(w, "\nIncludes: %d\n\n", len(r.Includes))
		for _, include := range sortedKeys(r.Includes) {
			fmt.Fprintf(w, "  - %s\n", filepath.Clean(include))
		}
	}

	if len(r.SystemIncludes) > 0 {
		fmt.Fprintf(w, "\nSystem Includes: %d\n\n", len(r.SystemIncludes))
		for _, include := range sortedKeys(r.SystemIncludes) {
			fmt.Fprintf(w, "  - %s\n", filepath.Clean(include))
		}
	}

	if len(r.Defines) > 0 {
		fmt.Fprintf(w, "\nDefines: %d\n\n", len(r.Defines))
		for _, key := range sortedKeys(r.Defines) {
			define := r.Defines[key]
			if define.HasValue {
				fmt.Fprintf(w, "  %s: %s\n", key, define.Value)
			} else {
				fmt.Fprintf(w, "  %s:\n", key)
			}
		}
	}
}

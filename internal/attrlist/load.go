package attrlist

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

//go:embed schema.cue
var schemaSource string

// Load error codes, shared with the CLI.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E005" // Source file not found
	ErrCodeLoadFailed  = "E004" // CUE compile failed
	ErrCodeBuildFailed = "E006" // Schema unification failed
	ErrCodeNoList      = "E003" // No attributes list in source
)

// Entry is one canonical spelling and the Go identifier of its constant.
type Entry struct {
	Name  string    `json:"name"`
	Ident string    `json:"ident"`
	Pos   token.Pos `json:"-"`
}

// List is a loaded source list, in declaration order.
type List struct {
	Path    string
	Entries []Entry
}

// Names returns the canonical spellings in order.
func (l *List) Names() []string {
	names := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		names[i] = e.Name
	}
	return names
}

// LoadError represents an error that occurred while loading a source list.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load reads the CUE source list at path and checks it against the entry schema.
// It does not run Validate; callers decide whether to stop at load errors only.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("source list not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading source list: %v", err)}
	}
	return Parse(path, data)
}

// Parse is Load over in-memory source. path is used for positions only.
func Parse(path string, data []byte) (*List, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("compiling schema: %v", err)}
	}

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("compiling source list: %v", err), Pos: firstPos(err)}
	}

	listVal := value.LookupPath(cue.ParsePath("attributes"))
	if !listVal.Exists() {
		return nil, &LoadError{Code: ErrCodeNoList, Message: fmt.Sprintf("no attributes list in %s", path)}
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("checking source list: %v", err), Pos: firstPos(err)}
	}

	iter, err := listVal.List()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating attributes: %v", err), Pos: listVal.Pos()}
	}

	result := &List{Path: path}
	for iter.Next() {
		v := iter.Value()
		name, err := v.LookupPath(cue.ParsePath("name")).String()
		if err != nil {
			return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("attributes[%s].name: %v", iter.Selector(), err), Pos: v.Pos()}
		}
		ident, err := v.LookupPath(cue.ParsePath("ident")).String()
		if err != nil {
			return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("attributes[%s].ident: %v", iter.Selector(), err), Pos: v.Pos()}
		}
		result.Entries = append(result.Entries, Entry{Name: name, Ident: ident, Pos: v.Pos()})
	}

	return result, nil
}

// firstPos returns the first position attached to a CUE error.
func firstPos(err error) token.Pos {
	for _, p := range cueerrors.Positions(err) {
		if p.IsValid() {
			return p
		}
	}
	return token.NoPos
}

package catalog

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// schema is the closed CUE shape every `system` value is unified with.
const schema = `
#System: {
	name: string & !=""
	axes?: [...string & !=""]
	units?: [...{
		name: string & !=""
		axis: string & !=""
	}]
	derived?: [...{
		name: string & !=""
		of: {[string]: int & !=0}
	}]
}
`

// DecodeYAML parses a YAML definition. Unknown fields are rejected.
func DecodeYAML(data []byte) (Definition, error) {
	var def Definition
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return Definition{}, defErr(ErrDecode, "yaml", "empty definition")
		}
		return Definition{}, &DefinitionError{Code: ErrDecode, Field: "yaml", Message: "failed to parse YAML", Err: err}
	}
	return def, nil
}

// DecodeCUE parses a CUE definition from the `system` field of data and
// validates it against the closed #System schema.
func DecodeCUE(data []byte, filename string) (Definition, error) {
	ctx := cuecontext.New()

	schemaVal := ctx.CompileString(schema, cue.Filename("catalog-schema.cue"))
	if err := schemaVal.Err(); err != nil {
		return Definition{}, formatCUEError(err)
	}

	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return Definition{}, formatCUEError(err)
	}

	sys := v.LookupPath(cue.ParsePath("system"))
	if !sys.Exists() {
		return Definition{}, defErr(ErrDecode, "system", "system is required")
	}

	unified := schemaVal.LookupPath(cue.ParsePath("#System")).Unify(sys)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Definition{}, formatCUEError(err)
	}

	var def Definition
	if err := unified.Decode(&def); err != nil {
		return Definition{}, formatCUEError(err)
	}
	return def, nil
}

// ParseYAML decodes and builds a YAML definition.
func ParseYAML(data []byte, opts ...Option) (*Catalog, error) {
	def, err := DecodeYAML(data)
	if err != nil {
		return nil, err
	}
	return Build(def, opts...)
}

// ParseCUE decodes and builds a CUE definition.
func ParseCUE(data []byte, filename string, opts ...Option) (*Catalog, error) {
	def, err := DecodeCUE(data, filename)
	if err != nil {
		return nil, err
	}
	return Build(def, opts...)
}

// LoadFile reads a definition file, choosing the decoder by extension
// (.yaml, .yml or .cue).
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DefinitionError{Code: ErrDecode, Field: "file", Message: "failed to read definition file", Err: err}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data, opts...)
	case ".cue":
		return ParseCUE(data, path, opts...)
	default:
		return nil, defErr(ErrUnsupportedFile, "file", "unsupported definition file %q (want .yaml, .yml or .cue)", path)
	}
}

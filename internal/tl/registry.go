package tl

// Reserved constructor tags shared by every version.
const (
	TagVector    uint32 = 0x1cb5c415
	TagBoolTrue  uint32 = 0x997275b5
	TagBoolFalse uint32 = 0xbc799737
	TagNull      uint32 = 0x56730bcc
)

// Kind selects how one recipe field is read from the wire.
type Kind int

const (
	// KindInt32 is a little-endian signed 32-bit integer.
	KindInt32 Kind = iota
	// KindInt64 is a little-endian signed 64-bit integer.
	KindInt64
	// KindDouble is a little-endian IEEE 754 double.
	KindDouble
	// KindBool is one of the two reserved boolean tags.
	KindBool
	// KindBytes is a length-prefixed byte string padded to 4 bytes.
	KindBytes
	// KindObject is a nested object, tag-dispatched recursively.
	KindObject
	// KindVector is a marker tag, a 32-bit count, then that many elements
	// of the element kind.
	KindVector
	// KindBare is a nested object decoded without its own tag; the parent
	// recipe fixes the permitted type.
	KindBare
)

// FieldDef is one (name, kind) entry of a recipe. Elem is set for
// KindVector (the element kind; KindBare elements also need Bare set) and
// Bare is set for KindBare fields.
type FieldDef struct {
	Name string
	Kind Kind
	Elem Kind
	Bare *Recipe
}

// Recipe is the ordered field list attached to one constructor tag. A recipe
// consumes exactly the bytes belonging to its constructor.
type Recipe struct {
	Name   string
	Fields []FieldDef
}

// Registry maps (version, constructor tag) to recipes. It is populated once
// at startup from the built-in version tables and read-only afterwards, so
// sharing it across concurrent decodes needs no locking.
type Registry struct {
	versions map[string]map[uint32]*Recipe
}

// NewRegistry returns an empty registry. Most callers want Default instead.
func NewRegistry() *Registry {
	return &Registry{versions: make(map[string]map[uint32]*Recipe)}
}

// Register adds a version's constructor table. Later calls for the same
// version extend it; a duplicate tag within one version panics, since the
// tables are static program data and a collision is a programming error.
func (r *Registry) Register(version string, table map[uint32]*Recipe) {
	dst := r.versions[version]
	if dst == nil {
		dst = make(map[uint32]*Recipe, len(table))
		r.versions[version] = dst
	}
	for tag, recipe := range table {
		if _, dup := dst[tag]; dup {
			panic("tl: duplicate constructor tag in version table")
		}
		dst[tag] = recipe
	}
}

// Versions lists the registered version selectors.
func (r *Registry) Versions() []string {
	out := make([]string, 0, len(r.versions))
	for v := range r.versions {
		out = append(out, v)
	}
	return out
}

// HasVersion reports whether a schema is registered for version.
func (r *Registry) HasVersion(version string) bool {
	_, ok := r.versions[version]
	return ok
}

// Resolve returns the recipe for tag under version. Both an unregistered
// version and an unregistered tag are UnknownConstructorError; no
// closest-match schema is ever guessed.
func (r *Registry) Resolve(version string, tag uint32) (*Recipe, error) {
	table, ok := r.versions[version]
	if !ok {
		return nil, &UnknownConstructorError{Version: version}
	}
	recipe, ok := table[tag]
	if !ok {
		return nil, &UnknownConstructorError{Version: version, Tag: tag, TagKnown: true}
	}
	return recipe, nil
}

var defaultRegistry = buildDefault()

// Default returns the registry holding the built-in schemas for the
// supported app versions.
func Default() *Registry { return defaultRegistry }

func buildDefault() *Registry {
	r := NewRegistry()
	r.Register(Version550, schemaCommon())
	r.Register(Version550, schema550())
	r.Register(Version562, schemaCommon())
	r.Register(Version562, schema562())
	return r
}

package gen

const tracerName = "github.com/syssam/jgd/compiler/gen"

// Span names and attributes.
const (
	spanGenerate = "jgd.generate"
	spanEntity   = "jgd.entity"
	attrSeed     = "jgd.seed"
	attrNodes    = "jgd.nodes"
	attrEntity   = "jgd.entity"
)

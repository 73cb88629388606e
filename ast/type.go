package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types. Value nodes carry a payload; vector nodes carry children.
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeInt    = nodeTypeValue | 1
	NodeTypeSymbol = nodeTypeValue | 2
	NodeTypeString = nodeTypeValue | 4

	NodeTypeList   = nodeTypeVector | 1
	NodeTypeVector = nodeTypeVector | 2
	NodeTypeMap    = nodeTypeVector | 4
)

var nodeTypeName = map[NodeType]string{
	NodeTypeInt:    "int",
	NodeTypeSymbol: "symbol",
	NodeTypeString: "string",
	NodeTypeList:   "list",
	NodeTypeVector: "vector",
	NodeTypeMap:    "map",
}

func (nt NodeType) String() string {
	if s, ok := nodeTypeName[nt]; ok {
		return s
	}
	return ""
}

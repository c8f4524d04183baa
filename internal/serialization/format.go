package serialization

import (
	"fmt"
	"time"
)

// Format constants.
const (
	MagicBytes      = "BMLP"
	FormatVersion   = 1
	HeaderAlignment = 64 // Matrix data starts on a 64-byte boundary
	FixedHeaderSize = 52 // magic + version + flags + header size + checksum
	ChecksumSize    = 32 // SHA-256 checksum size (32 bytes)
	ChecksumOffset  = 20 // Checksum offset in the fixed header
	ElementSize     = 8  // float64
)

// Flags for the .mlp format.
const (
	FlagHasMetadata uint32 = 1 << 0 // bit 0: custom metadata included
)

// Header represents the JSON header in a .mlp file.
type Header struct {
	FormatVersion int               `json:"format_version"` // Version of the .mlp format
	Producer      string            `json:"producer"`       // Library version that wrote the file
	CreatedAt     time.Time         `json:"created_at"`     // When the file was created
	Layers        []LayerSpec       `json:"layers"`         // Topology, input layer first
	Matrices      []MatrixMeta      `json:"matrices"`       // Matrix metadata
	Metadata      map[string]string `json:"metadata"`       // Custom metadata
}

// LayerSpec describes one layer of the stored network.
type LayerSpec struct {
	Size       int    `json:"size"`
	Activation string `json:"activation"`
}

// MatrixMeta describes a matrix in the .mlp file.
type MatrixMeta struct {
	Name   string `json:"name"`   // Matrix name (e.g., "layer.1.weight")
	Rows   int    `json:"rows"`   // Row count
	Cols   int    `json:"cols"`   // Column count
	Offset int64  `json:"offset"` // Offset in the data section (bytes from start of matrix data)
	Size   int64  `json:"size"`   // Size in bytes
}

// Matrix is a named row-major float64 matrix.
type Matrix struct {
	Name string
	Rows int
	Cols int
	Data []float64 // len == Rows*Cols
}

// WeightMatrixName is the name of the inbound weight matrix of layer
// index. Layer 0 has none.
func WeightMatrixName(index int) string {
	return fmt.Sprintf("layer.%d.weight", index)
}

func dataOffset(headerSize int64) int64 {
	pos := int64(FixedHeaderSize) + headerSize
	return pos + (HeaderAlignment-(pos%HeaderAlignment))%HeaderAlignment
}

// Package connector supplies the transition cost between two dictionary
// entries' connection IDs for the desktop cost model.
package connector

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
)

// Connector reports the cost of connecting a left context (rid) to a right
// context (lid). Implementations are read-only and safe for concurrent use.
type Connector interface {
	GetTransitionCost(rid, lid uint16) int32
}

// MatrixConnector is a dense int32 connection-cost matrix loaded from a
// binary file. Indexing is row-major on rid, [rid][lid].
type MatrixConnector struct {
	costs    []int32
	rowSize  int
	fallback int32
}

// NewMatrixConnector wraps an already-loaded matrix. rowSize is the number
// of lid columns per rid row; fallback is returned for any (rid, lid) pair
// outside the matrix bounds.
func NewMatrixConnector(costs []int32, rowSize int, fallback int32) *MatrixConnector {
	return &MatrixConnector{costs: costs, rowSize: rowSize, fallback: fallback}
}

// LoadMatrixConnector reads a connection matrix file: a little-endian
// header of two uint32s (rowCount, colCount) followed by rowCount*colCount
// int32 costs in row-major order.
func LoadMatrixConnector(path string, fallback int32) (*MatrixConnector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open connection matrix %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var rows, cols uint32
	if err := binary.Read(r, binary.LittleEndian, &rows); err != nil {
		return nil, fmt.Errorf("read matrix header %s: %w", path, err)
	}
	if err := binary.Read(r, binary.LittleEndian, &cols); err != nil {
		return nil, fmt.Errorf("read matrix header %s: %w", path, err)
	}

	costs := make([]int32, int(rows)*int(cols))
	if err := binary.Read(r, binary.LittleEndian, &costs); err != nil {
		return nil, fmt.Errorf("read matrix body %s: %w", path, err)
	}
	return NewMatrixConnector(costs, int(cols), fallback), nil
}

// GetTransitionCost implements Connector.
func (c *MatrixConnector) GetTransitionCost(rid, lid uint16) int32 {
	idx := int(rid)*c.rowSize + int(lid)
	if c.rowSize == 0 || int(lid) >= c.rowSize || idx < 0 || idx >= len(c.costs) {
		return c.fallback
	}
	return c.costs[idx]
}

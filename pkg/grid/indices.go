package grid

// TriangleIndices triangulates a rows x cols lattice into two triangles per
// quad, wound topLeft, bottomLeft, bottomRight, bottomRight, topRight, topLeft.
func TriangleIndices(rows, cols int) []uint32 {
	if rows < 2 || cols < 2 {
		return nil
	}
	indices := make([]uint32, 0, (rows-1)*(cols-1)*6)
	for u := 0; u < rows-1; u++ {
		for v := 0; v < cols-1; v++ {
			topLeft := uint32(u*cols + v)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(cols)
			bottomRight := bottomLeft + 1

			indices = append(indices,
				topLeft, bottomLeft, bottomRight,
				bottomRight, topRight, topLeft,
			)
		}
	}
	return indices
}

// LineIndices returns the axis-aligned lattice lines of a rows x cols
// lattice as index pairs: first every segment along the rows axis, then
// every segment along the columns axis. No diagonals.
func LineIndices(rows, cols int) []uint32 {
	if rows < 1 || cols < 1 {
		return nil
	}
	indices := make([]uint32, 0, 2*(cols*(rows-1)+rows*(cols-1)))

	for v := 0; v < cols; v++ {
		for u := 0; u < rows-1; u++ {
			top := uint32(u*cols + v)
			indices = append(indices, top, top+uint32(cols))
		}
	}

	for u := 0; u < rows; u++ {
		for v := 0; v < cols-1; v++ {
			left := uint32(u*cols + v)
			indices = append(indices, left, left+1)
		}
	}

	return indices
}

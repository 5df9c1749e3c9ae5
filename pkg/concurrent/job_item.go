package concurrent

import (
	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
)

// MatrixCellParam satu sel cost matrix many-to-many.
type MatrixCellParam struct {
	Row    int
	Col    int
	Source datastructure.NodeID
	Target datastructure.NodeID
}

func NewMatrixCellParam(row, col int, source, target datastructure.NodeID) MatrixCellParam {
	return MatrixCellParam{
		Row:    row,
		Col:    col,
		Source: source,
		Target: target,
	}
}

type JobI interface {
	MatrixCellParam | int
}

type Job[T JobI] struct {
	ID      int
	JobItem T
}
type JobFunc[T JobI, G any] func(job T) G

package table

import (
	"encoding/binary"
	"sort"
)

const (
	// emptyEntry marks a missing transition.
	emptyEntry = -1
	// noOwner marks a slot of the displaced entries that no row occupies.
	noOwner = -1
)

// uniqueRows merges identical rows of a table having colCount columns. It returns the distinct rows and,
// for each original row, the index of its distinct row.
func uniqueRows(entries []int, colCount int) ([]int, []int) {
	rowCount := len(entries) / colCount
	var unique []int
	rowNums := make([]int, rowCount)
	hash2RowNum := map[string]int{}
	for row := 0; row < rowCount; row++ {
		r := entries[row*colCount : (row+1)*colCount]
		buf := make([]byte, 0, colCount*binary.MaxVarintLen64)
		for _, e := range r {
			buf = binary.AppendVarint(buf, int64(e))
		}
		num, ok := hash2RowNum[string(buf)]
		if !ok {
			num = len(hash2RowNum)
			hash2RowNum[string(buf)] = num
			unique = append(unique, r...)
		}
		rowNums[row] = num
	}
	return unique, rowNums
}

type rowInfo struct {
	rowNum   int
	nonEmpty []int
}

// displaceRows overlays the rows of a sparse table so that their non-empty entries never collide. Row r
// occupies the slots displacement[r]+col, and owners records which row each slot belongs to.
func displaceRows(entries []int, colCount int) (displaced []int, owners []int, displacement []int) {
	rowCount := len(entries) / colCount
	rows := make([]rowInfo, rowCount)
	for row := 0; row < rowCount; row++ {
		rows[row].rowNum = row
		for col := 0; col < colCount; col++ {
			if entries[row*colCount+col] != emptyEntry {
				rows[row].nonEmpty = append(rows[row].nonEmpty, col)
			}
		}
	}
	// Placing dense rows first leaves the gaps to the sparse ones.
	sort.SliceStable(rows, func(i, j int) bool {
		return len(rows[i].nonEmpty) > len(rows[j].nonEmpty)
	})

	displaced = make([]int, len(entries))
	owners = make([]int, len(entries))
	for i := range displaced {
		displaced[i] = emptyEntry
		owners[i] = noOwner
	}
	displacement = make([]int, rowCount)
	bottom := colCount
	next := 0
	for _, r := range rows {
		if len(r.nonEmpty) == 0 {
			continue
		}
		d := next
		for collides(displaced, d, r.nonEmpty) {
			d++
		}
		displacement[r.rowNum] = d
		for _, col := range r.nonEmpty {
			displaced[d+col] = entries[r.rowNum*colCount+col]
			owners[d+col] = r.rowNum
		}
		if d+colCount > bottom {
			bottom = d + colCount
		}
		next = d + 1
	}
	return displaced[:bottom], owners[:bottom], displacement
}

func collides(displaced []int, d int, cols []int) bool {
	for _, col := range cols {
		if displaced[d+col] != emptyEntry {
			return true
		}
	}
	return false
}

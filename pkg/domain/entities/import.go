package entities

// ImportRow is one parsed row of an external import feed. Rows exist only
// for the duration of an import run.
type ImportRow struct {
	SKU        SKU
	Assignment SupplierAssignment
}

// ImportGroup is the set of assignments an import feed carries for one SKU,
// normalized so the primary invariant already holds.
type ImportGroup struct {
	SKU         SKU
	Assignments AssignmentList
}

// ImportBatch holds an import run's groups in first-appearance order, so
// commits happen in a deterministic order.
type ImportBatch struct {
	Groups    []ImportGroup
	TotalRows int
}

// GroupRows partitions rows by SKU, preserving the order in which each SKU
// first appears, and normalizes every group.
func GroupRows(rows []ImportRow) ImportBatch {
	index := make(map[SKU]int)
	var groups []ImportGroup

	for _, row := range rows {
		i, ok := index[row.SKU]
		if !ok {
			i = len(groups)
			index[row.SKU] = i
			groups = append(groups, ImportGroup{SKU: row.SKU})
		}
		groups[i].Assignments = append(groups[i].Assignments, row.Assignment)
	}

	for i := range groups {
		groups[i].Assignments = groups[i].Assignments.Normalize()
	}

	return ImportBatch{Groups: groups, TotalRows: len(rows)}
}

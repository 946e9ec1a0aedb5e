// Package validate holds the aggregate pre-checkout constraints. The client
// runs the same checks before offering payment; the server repeats them so a
// bypassed client cannot buy a merge it could never receive.
package validate

import "fmt"

const (
	MaxFiles          = 20
	MaxTotalPages     = 500
	MaxTotalSizeBytes = 100 << 20
)

// FileStat describes one selected input file.
type FileStat struct {
	Name  string
	Size  int64
	Pages int
}

// Aggregate checks the combined constraints across all selected files and
// returns every violation, not just the first.
func Aggregate(files []FileStat) []string {
	var violations []string

	if len(files) == 0 {
		violations = append(violations, "at least one file is required")
		return violations
	}
	if len(files) > MaxFiles {
		violations = append(violations, fmt.Sprintf("too many files: %d (max %d)", len(files), MaxFiles))
	}

	var totalPages int
	var totalSize int64
	for _, f := range files {
		totalPages += f.Pages
		totalSize += f.Size
	}
	if totalPages > MaxTotalPages {
		violations = append(violations, fmt.Sprintf("too many pages: %d (max %d)", totalPages, MaxTotalPages))
	}
	if totalSize > MaxTotalSizeBytes {
		violations = append(violations, fmt.Sprintf("combined size %d bytes exceeds %d byte limit", totalSize, int64(MaxTotalSizeBytes)))
	}

	return violations
}

// CheckCounts validates the file/page counts reported at checkout time.
func CheckCounts(fileCount, totalPages int) error {
	if fileCount < 1 {
		return fmt.Errorf("fileCount must be at least 1")
	}
	if fileCount > MaxFiles {
		return fmt.Errorf("fileCount %d exceeds maximum of %d", fileCount, MaxFiles)
	}
	if totalPages < 0 {
		return fmt.Errorf("totalPages must not be negative")
	}
	if totalPages > MaxTotalPages {
		return fmt.Errorf("totalPages %d exceeds maximum of %d", totalPages, MaxTotalPages)
	}
	return nil
}

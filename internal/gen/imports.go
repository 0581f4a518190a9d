package gen

import (
	"slices"

	"mixin-generator/internal/common"
	"mixin-generator/internal/model"
)

// ComputeImports returns the sorted, distinct qualified names to import into
// an artifact of package pkg. Direct members of pkg and names without a
// package are dropped since they resolve without an import.
func ComputeImports(pkg string, refs []model.TypeID) []string {
	seen := make(map[string]struct{}, len(refs))
	out := make([]string, 0, len(refs))

	for _, ref := range refs {
		if ref.Package == "" {
			continue
		}

		qualified := ref.String()
		if common.IsBareMember(pkg, qualified) {
			continue
		}

		if _, ok := seen[qualified]; ok {
			continue
		}

		seen[qualified] = struct{}{}
		out = append(out, qualified)
	}

	slices.Sort(out)

	return out
}

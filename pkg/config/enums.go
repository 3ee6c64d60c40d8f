package config

//go:generate go run github.com/dmarkham/enumer -type=RenameAndRepairCost -trimprefix=RenameAndRepairCost -transform=upper -text -output=rename_and_repair_cost_enumer.go
//go:generate go run github.com/dmarkham/enumer -type=FreeRenames -trimprefix=FreeRenames -transform=snake-upper -text -output=free_renames_enumer.go

// RenameAndRepairCost controls how the prior work penalty applies to
// operations that only rename or repair an item.
type RenameAndRepairCost int

const (
	// RenameAndRepairCostVanilla adds the penalty; operations become impossible
	// once the too expensive limit is exceeded.
	RenameAndRepairCostVanilla RenameAndRepairCost = iota

	// RenameAndRepairCostFixed ignores the penalty entirely.
	RenameAndRepairCostFixed

	// RenameAndRepairCostLimited adds the penalty but keeps the total just
	// below the too expensive limit.
	RenameAndRepairCostLimited
)

// FreeRenames selects which items can be renamed without a level cost.
type FreeRenames int

const (
	FreeRenamesNever FreeRenames = iota
	FreeRenamesAllItems
	FreeRenamesNameTagsOnly
)

// Allows reports whether renaming an item is free under this setting.
func (f FreeRenames) Allows(isNameTag bool) bool {
	switch f {
	case FreeRenamesAllItems:
		return true
	case FreeRenamesNameTagsOnly:
		return isNameTag
	default:
		return false
	}
}

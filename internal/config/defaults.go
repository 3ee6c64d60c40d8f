package config

import (
	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
)

// SchemaVersion is the version written into new settings files.
const SchemaVersion = "1.0.0"

// DefaultConfig returns the settings used when no source overrides them.
func DefaultConfig() *pkgconfig.Config {
	return &pkgconfig.Config{
		PriorWorkPenalty: &pkgconfig.PriorWorkPenaltyConfig{
			PriorWorkPenalty:                pkgconfig.DefaultPriorWorkPenalty,
			MaximumPriorWorkPenaltyIncrease: pkgconfig.DefaultMaximumPriorWorkPenaltyIncrease,
			RenameAndRepairCosts:            pkgconfig.DefaultRenameAndRepairCosts,
			PenaltyFreeRenamesAndRepairs:    pkgconfig.DefaultPenaltyFreeRenamesAndRepairs,
			PenaltyFreeEnchantsForBooks:     pkgconfig.DefaultPenaltyFreeEnchantsForBooks,
		},
		Costs: &pkgconfig.CostsConfig{
			TooExpensiveLimit:                    pkgconfig.DefaultTooExpensiveLimit,
			FreeRenames:                          pkgconfig.DefaultFreeRenames,
			CommonEnchantmentMultiplier:          pkgconfig.DefaultCommonEnchantmentMultiplier,
			UncommonEnchantmentMultiplier:        pkgconfig.DefaultUncommonEnchantmentMultiplier,
			RareEnchantmentMultiplier:            pkgconfig.DefaultRareEnchantmentMultiplier,
			VeryRareEnchantmentMultiplier:        pkgconfig.DefaultVeryRareEnchantmentMultiplier,
			HalvedBookCosts:                      pkgconfig.DefaultHalvedBookCosts,
			RepairWithMaterialUnitCost:           pkgconfig.DefaultRepairWithMaterialUnitCost,
			RepairWithMaterialRestoredDurability: pkgconfig.DefaultRepairWithMaterialRestoredDurability,
			RepairWithOtherItemCost:              pkgconfig.DefaultRepairWithOtherItemCost,
			RepairWithOtherItemBonusDurability:   pkgconfig.DefaultRepairWithOtherItemBonusDurability,
		},
		Miscellaneous: &pkgconfig.MiscellaneousConfig{
			AnvilRepairing:             pkgconfig.DefaultAnvilRepairing,
			EditNameTagsNoAnvil:        pkgconfig.DefaultEditNameTagsNoAnvil,
			AnvilBreakChance:           pkgconfig.DefaultAnvilBreakChance,
			RiskFreeAnvilRenaming:      pkgconfig.DefaultRiskFreeAnvilRenaming,
			RenamingSupportsFormatting: pkgconfig.DefaultRenamingSupportsFormatting,
			NameTagsDropFromMobs:       pkgconfig.DefaultNameTagsDropFromMobs,
			DisableVanillaAnvil:        pkgconfig.DefaultDisableVanillaAnvil,
		},
	}
}

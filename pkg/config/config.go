// Package config provides the settings schema for anvil cost rules.
package config

import "github.com/smykla-labs/anvilcost/pkg/penalty"

// Config represents the root settings document.
type Config struct {
	// Version is the schema revision the document was written for.
	// Optional; when set it must be a semantic version compatible with ^1.
	Version string `json:"version,omitempty" toml:"version,omitempty" yaml:"version,omitempty"`

	// PriorWorkPenalty groups the settings controlling how repeated work on an
	// item raises the cost of later operations.
	PriorWorkPenalty *PriorWorkPenaltyConfig `json:"prior_work_penalty,omitempty" toml:"prior_work_penalty" yaml:"prior_work_penalty,omitempty"`

	// Costs groups the level costs and multipliers of anvil operations.
	Costs *CostsConfig `json:"costs,omitempty" toml:"costs" yaml:"costs,omitempty"`

	// Miscellaneous groups feature toggles that do not affect costs.
	Miscellaneous *MiscellaneousConfig `json:"miscellaneous,omitempty" toml:"miscellaneous" yaml:"miscellaneous,omitempty"`
}

// PriorWorkPenaltyConfig contains the prior work penalty settings.
type PriorWorkPenaltyConfig struct {
	// PriorWorkPenalty selects the penalty transform.
	// Default: LIMITED
	PriorWorkPenalty penalty.Policy `json:"prior_work_penalty" toml:"prior_work_penalty" yaml:"prior_work_penalty"`

	// MaximumPriorWorkPenaltyIncrease caps every increase under LIMITED.
	// Default: 4
	MaximumPriorWorkPenaltyIncrease int `json:"maximum_prior_work_penalty_increase" toml:"maximum_prior_work_penalty_increase" yaml:"maximum_prior_work_penalty_increase"`

	// RenameAndRepairCosts controls whether renames and repairs pay the penalty.
	// Default: FIXED
	RenameAndRepairCosts RenameAndRepairCost `json:"rename_and_repair_costs" toml:"rename_and_repair_costs" yaml:"rename_and_repair_costs"`

	// Default: true
	PenaltyFreeRenamesAndRepairs bool `json:"penalty_free_renames_and_repairs" toml:"penalty_free_renames_and_repairs" yaml:"penalty_free_renames_and_repairs"`

	// Default: true
	PenaltyFreeEnchantsForBooks bool `json:"penalty_free_enchants_for_books" toml:"penalty_free_enchants_for_books" yaml:"penalty_free_enchants_for_books"`
}

// CostsConfig contains cost and multiplier settings.
type CostsConfig struct {
	// TooExpensiveLimit is the level cost at which operations are refused.
	// -1 disables the limit.
	// Default: -1
	TooExpensiveLimit int `json:"too_expensive_limit" toml:"too_expensive_limit" yaml:"too_expensive_limit"`

	// Default: ALL_ITEMS
	FreeRenames FreeRenames `json:"free_renames" toml:"free_renames" yaml:"free_renames"`

	CommonEnchantmentMultiplier   int `json:"common_enchantment_multiplier" toml:"common_enchantment_multiplier" yaml:"common_enchantment_multiplier"`
	UncommonEnchantmentMultiplier int `json:"uncommon_enchantment_multiplier" toml:"uncommon_enchantment_multiplier" yaml:"uncommon_enchantment_multiplier"`
	RareEnchantmentMultiplier     int `json:"rare_enchantment_multiplier" toml:"rare_enchantment_multiplier" yaml:"rare_enchantment_multiplier"`
	VeryRareEnchantmentMultiplier int `json:"very_rare_enchantment_multiplier" toml:"very_rare_enchantment_multiplier" yaml:"very_rare_enchantment_multiplier"`

	// Default: true
	HalvedBookCosts bool `json:"halved_book_costs" toml:"halved_book_costs" yaml:"halved_book_costs"`

	RepairWithMaterialUnitCost           int     `json:"repair_with_material_unit_cost" toml:"repair_with_material_unit_cost" yaml:"repair_with_material_unit_cost"`
	RepairWithMaterialRestoredDurability float64 `json:"repair_with_material_restored_durability" toml:"repair_with_material_restored_durability" yaml:"repair_with_material_restored_durability"`
	RepairWithOtherItemCost              int     `json:"repair_with_other_item_cost" toml:"repair_with_other_item_cost" yaml:"repair_with_other_item_cost"`
	RepairWithOtherItemBonusDurability   float64 `json:"repair_with_other_item_bonus_durability" toml:"repair_with_other_item_bonus_durability" yaml:"repair_with_other_item_bonus_durability"`
}

// MiscellaneousConfig contains feature toggles.
type MiscellaneousConfig struct {
	AnvilRepairing             bool    `json:"anvil_repairing" toml:"anvil_repairing" yaml:"anvil_repairing"`
	EditNameTagsNoAnvil        bool    `json:"edit_name_tags_no_anvil" toml:"edit_name_tags_no_anvil" yaml:"edit_name_tags_no_anvil"`
	AnvilBreakChance           float64 `json:"anvil_break_chance" toml:"anvil_break_chance" yaml:"anvil_break_chance"`
	RiskFreeAnvilRenaming      bool    `json:"risk_free_anvil_renaming" toml:"risk_free_anvil_renaming" yaml:"risk_free_anvil_renaming"`
	RenamingSupportsFormatting bool    `json:"renaming_supports_formatting" toml:"renaming_supports_formatting" yaml:"renaming_supports_formatting"`
	NameTagsDropFromMobs       bool    `json:"name_tags_drop_from_mobs" toml:"name_tags_drop_from_mobs" yaml:"name_tags_drop_from_mobs"`
	DisableVanillaAnvil        bool    `json:"disable_vanilla_anvil" toml:"disable_vanilla_anvil" yaml:"disable_vanilla_anvil"`
}

// GetPriorWorkPenalty returns the prior work penalty group, creating it if it doesn't exist.
func (c *Config) GetPriorWorkPenalty() *PriorWorkPenaltyConfig {
	if c.PriorWorkPenalty == nil {
		c.PriorWorkPenalty = &PriorWorkPenaltyConfig{}
	}

	return c.PriorWorkPenalty
}

// GetCosts returns the costs group, creating it if it doesn't exist.
func (c *Config) GetCosts() *CostsConfig {
	if c.Costs == nil {
		c.Costs = &CostsConfig{}
	}

	return c.Costs
}

// GetMiscellaneous returns the miscellaneous group, creating it if it doesn't exist.
func (c *Config) GetMiscellaneous() *MiscellaneousConfig {
	if c.Miscellaneous == nil {
		c.Miscellaneous = &MiscellaneousConfig{}
	}

	return c.Miscellaneous
}

// IsTooExpensiveLimitEnabled reports whether operations can be refused for cost.
func (c *CostsConfig) IsTooExpensiveLimitEnabled() bool {
	return c.TooExpensiveLimit != TooExpensiveLimitDisabled
}

package config

import (
	"strings"

	"github.com/smykla-labs/anvilcost/pkg/penalty"
)

// Group names of the settings document.
const (
	GroupPriorWorkPenalty = "prior_work_penalty"
	GroupCosts            = "costs"
	GroupMiscellaneous    = "miscellaneous"
)

// TooExpensiveLimitDisabled disables the too expensive limit.
const TooExpensiveLimitDisabled = -1

// Default values. Vanilla equivalents are noted where they differ.
const (
	DefaultPriorWorkPenalty                = penalty.PolicyLimited
	DefaultMaximumPriorWorkPenaltyIncrease = 4
	DefaultRenameAndRepairCosts            = RenameAndRepairCostFixed
	DefaultPenaltyFreeRenamesAndRepairs    = true
	DefaultPenaltyFreeEnchantsForBooks     = true

	DefaultTooExpensiveLimit                    = TooExpensiveLimitDisabled // vanilla: 40
	DefaultFreeRenames                          = FreeRenamesAllItems
	DefaultCommonEnchantmentMultiplier          = 1
	DefaultUncommonEnchantmentMultiplier        = 2
	DefaultRareEnchantmentMultiplier            = 4
	DefaultVeryRareEnchantmentMultiplier        = 8
	DefaultHalvedBookCosts                      = true
	DefaultRepairWithMaterialUnitCost           = 1
	DefaultRepairWithMaterialRestoredDurability = 0.25
	DefaultRepairWithOtherItemCost              = 2
	DefaultRepairWithOtherItemBonusDurability   = 0.12

	DefaultAnvilRepairing             = true
	DefaultEditNameTagsNoAnvil        = true
	DefaultAnvilBreakChance           = 0.05 // vanilla: 0.12
	DefaultRiskFreeAnvilRenaming      = true
	DefaultRenamingSupportsFormatting = true
	DefaultNameTagsDropFromMobs       = false
	DefaultDisableVanillaAnvil        = true
)

// FieldKind is the value type of a setting.
type FieldKind string

const (
	KindEnum  FieldKind = "enum"
	KindInt   FieldKind = "int"
	KindFloat FieldKind = "float"
	KindBool  FieldKind = "bool"
)

// Field describes one leaf setting of the document.
type Field struct {
	// Group is the top-level table the field belongs to.
	Group string

	// Key is the field name within its group.
	Key string

	// Description holds human readable lines, written as comments.
	Description []string

	Kind FieldKind

	// Default is the value used when no source sets the field.
	Default any

	// Min and Max bound numeric fields; nil means unbounded.
	Min *float64
	Max *float64

	// Choices lists the accepted names of an enum field.
	Choices []string

	// Get extracts the field's current value from a config.
	Get func(cfg *Config) any
}

// Path returns the dotted key of the field, e.g. "costs.free_renames".
func (f Field) Path() string {
	return f.Group + "." + f.Key
}

// HasRange reports whether the field declares a numeric bound.
func (f Field) HasRange() bool {
	return f.Min != nil || f.Max != nil
}

// Schema returns metadata for every setting in document order.
func Schema() []Field {
	return schema
}

// Groups returns the group names in document order.
func Groups() []string {
	return []string{GroupPriorWorkPenalty, GroupCosts, GroupMiscellaneous}
}

// Lookup finds a field by its dotted path.
func Lookup(path string) (Field, bool) {
	for _, f := range schema {
		if f.Path() == path {
			return f, true
		}
	}

	return Field{}, false
}

// FieldsIn returns the fields of one group in document order.
func FieldsIn(group string) []Field {
	var fields []Field

	for _, f := range schema {
		if f.Group == group {
			fields = append(fields, f)
		}
	}

	return fields
}

func bound(v float64) *float64 {
	return &v
}

func choices[T interface{ String() string }](values []T) []string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, v.String())
	}

	return names
}

var schema = []Field{
	{
		Group: GroupPriorWorkPenalty,
		Key:   "prior_work_penalty",
		Description: []string{
			"Controls how working an item in the anvil multiple times affects the cost of future operations.",
			"LIMITED: Penalty doubles every time an item is worked, but every increase cannot exceed a given limit.",
			"VANILLA: Penalty doubles every time an item is worked.",
			"NONE: Penalty is disabled by staying at 0 and does not increase.",
		},
		Kind:    KindEnum,
		Default: DefaultPriorWorkPenalty,
		Choices: choices(penalty.PolicyValues()),
		Get:     func(c *Config) any { return c.GetPriorWorkPenalty().PriorWorkPenalty },
	},
	{
		Group: GroupPriorWorkPenalty,
		Key:   "maximum_prior_work_penalty_increase",
		Description: []string{
			`Value to use when "prior_work_penalty" is set to "LIMITED". Every subsequent operation will increase at most by this value in levels.`,
		},
		Kind:    KindInt,
		Default: DefaultMaximumPriorWorkPenaltyIncrease,
		Min:     bound(1),
		Get:     func(c *Config) any { return c.GetPriorWorkPenalty().MaximumPriorWorkPenaltyIncrease },
	},
	{
		Group: GroupPriorWorkPenalty,
		Key:   "rename_and_repair_costs",
		Description: []string{
			"FIXED: When renaming / repairing, ignore any prior work penalty on the item. Makes prior work penalty only relevant when new enchantments are added.",
			"LIMITED: When renaming / repairing cost exceeds max anvil repair cost, limit cost just below max cost.",
			"VANILLA: Renaming / repairing increase with prior work penalty and will no longer be possible when max cost is exceeded.",
		},
		Kind:    KindEnum,
		Default: DefaultRenameAndRepairCosts,
		Choices: choices(RenameAndRepairCostValues()),
		Get:     func(c *Config) any { return c.GetPriorWorkPenalty().RenameAndRepairCosts },
	},
	{
		Group:       GroupPriorWorkPenalty,
		Key:         "penalty_free_renames_and_repairs",
		Description: []string{"Prevents the prior work penalty from increasing when the item has only been renamed or repaired."},
		Kind:        KindBool,
		Default:     DefaultPenaltyFreeRenamesAndRepairs,
		Get:         func(c *Config) any { return c.GetPriorWorkPenalty().PenaltyFreeRenamesAndRepairs },
	},
	{
		Group:       GroupPriorWorkPenalty,
		Key:         "penalty_free_enchants_for_books",
		Description: []string{"Prevents the prior work penalty from increasing when combining two enchanted books."},
		Kind:        KindBool,
		Default:     DefaultPenaltyFreeEnchantsForBooks,
		Get:         func(c *Config) any { return c.GetPriorWorkPenalty().PenaltyFreeEnchantsForBooks },
	},
	{
		Group: GroupCosts,
		Key:   "too_expensive_limit",
		Description: []string{
			"Max cost of enchantment level allowed to be spent in an anvil. Every operation exceeding the limit will show as 'Too Expensive!' and will be disallowed.",
			"If set to '-1' the limit is disabled.",
			"Set to '40' enchantment levels in vanilla.",
		},
		Kind:    KindInt,
		Default: DefaultTooExpensiveLimit,
		Min:     bound(TooExpensiveLimitDisabled),
		Get:     func(c *Config) any { return c.GetCosts().TooExpensiveLimit },
	},
	{
		Group:       GroupCosts,
		Key:         "free_renames",
		Description: []string{"Renaming any item in an anvil no longer costs any enchantment levels at all. Can be restricted to only name tags."},
		Kind:        KindEnum,
		Default:     DefaultFreeRenames,
		Choices:     choices(FreeRenamesValues()),
		Get:         func(c *Config) any { return c.GetCosts().FreeRenames },
	},
	{
		Group:       GroupCosts,
		Key:         "common_enchantment_multiplier",
		Description: []string{"Multiplier for each level of a common enchantment being applied."},
		Kind:        KindInt,
		Default:     DefaultCommonEnchantmentMultiplier,
		Min:         bound(1),
		Get:         func(c *Config) any { return c.GetCosts().CommonEnchantmentMultiplier },
	},
	{
		Group:       GroupCosts,
		Key:         "uncommon_enchantment_multiplier",
		Description: []string{"Multiplier for each level of a uncommon enchantment being applied."},
		Kind:        KindInt,
		Default:     DefaultUncommonEnchantmentMultiplier,
		Min:         bound(1),
		Get:         func(c *Config) any { return c.GetCosts().UncommonEnchantmentMultiplier },
	},
	{
		Group:       GroupCosts,
		Key:         "rare_enchantment_multiplier",
		Description: []string{"Multiplier for each level of a rare enchantment being applied."},
		Kind:        KindInt,
		Default:     DefaultRareEnchantmentMultiplier,
		Min:         bound(1),
		Get:         func(c *Config) any { return c.GetCosts().RareEnchantmentMultiplier },
	},
	{
		Group:       GroupCosts,
		Key:         "very_rare_enchantment_multiplier",
		Description: []string{"Multiplier for each level of a very rare enchantment being applied."},
		Kind:        KindInt,
		Default:     DefaultVeryRareEnchantmentMultiplier,
		Min:         bound(1),
		Get:         func(c *Config) any { return c.GetCosts().VeryRareEnchantmentMultiplier },
	},
	{
		Group:       GroupCosts,
		Key:         "halved_book_costs",
		Description: []string{"Costs for applying enchantments from enchanted books are halved."},
		Kind:        KindBool,
		Default:     DefaultHalvedBookCosts,
		Get:         func(c *Config) any { return c.GetCosts().HalvedBookCosts },
	},
	{
		Group:       GroupCosts,
		Key:         "repair_with_material_unit_cost",
		Description: []string{"The additional cost in levels for each valid repair material an item is repaired with."},
		Kind:        KindInt,
		Default:     DefaultRepairWithMaterialUnitCost,
		Min:         bound(0),
		Get:         func(c *Config) any { return c.GetCosts().RepairWithMaterialUnitCost },
	},
	{
		Group:       GroupCosts,
		Key:         "repair_with_material_restored_durability",
		Description: []string{"Restored percentage of full durability for an item after repairing with a single valid repair material."},
		Kind:        KindFloat,
		Default:     DefaultRepairWithMaterialRestoredDurability,
		Min:         bound(0),
		Max:         bound(1),
		Get:         func(c *Config) any { return c.GetCosts().RepairWithMaterialRestoredDurability },
	},
	{
		Group:       GroupCosts,
		Key:         "repair_with_other_item_cost",
		Description: []string{"The additional cost in levels for combining an item with another item of the same kind when the first item is not fully repaired."},
		Kind:        KindInt,
		Default:     DefaultRepairWithOtherItemCost,
		Min:         bound(0),
		Get:         func(c *Config) any { return c.GetCosts().RepairWithOtherItemCost },
	},
	{
		Group:       GroupCosts,
		Key:         "repair_with_other_item_bonus_durability",
		Description: []string{"Percentage of full durability given as a bonus for an item after combining an item with another item of the same kind."},
		Kind:        KindFloat,
		Default:     DefaultRepairWithOtherItemBonusDurability,
		Min:         bound(0),
		Max:         bound(1),
		Get:         func(c *Config) any { return c.GetCosts().RepairWithOtherItemBonusDurability },
	},
	{
		Group:       GroupMiscellaneous,
		Key:         "anvil_repairing",
		Description: []string{"Allow using iron blocks to repair an anvil by one damage stage. Can be automated using dispensers."},
		Kind:        KindBool,
		Default:     DefaultAnvilRepairing,
		Get:         func(c *Config) any { return c.GetMiscellaneous().AnvilRepairing },
	},
	{
		Group:       GroupMiscellaneous,
		Key:         "edit_name_tags_no_anvil",
		Description: []string{"Edit name tags without cost nor anvil, simply by sneak + right-clicking."},
		Kind:        KindBool,
		Default:     DefaultEditNameTagsNoAnvil,
		Get:         func(c *Config) any { return c.GetMiscellaneous().EditNameTagsNoAnvil },
	},
	{
		Group:       GroupMiscellaneous,
		Key:         "anvil_break_chance",
		Description: []string{"Chance the anvil will break into chipped or damaged variant, or break completely after using. Value is set to 0.12 in vanilla."},
		Kind:        KindFloat,
		Default:     DefaultAnvilBreakChance,
		Min:         bound(0),
		Max:         bound(1),
		Get:         func(c *Config) any { return c.GetMiscellaneous().AnvilBreakChance },
	},
	{
		Group:       GroupMiscellaneous,
		Key:         "risk_free_anvil_renaming",
		Description: []string{"Solely renaming items in an anvil will never cause the anvil to break."},
		Kind:        KindBool,
		Default:     DefaultRiskFreeAnvilRenaming,
		Get:         func(c *Config) any { return c.GetMiscellaneous().RiskFreeAnvilRenaming },
	},
	{
		Group: GroupMiscellaneous,
		Key:   "renaming_supports_formatting",
		Description: []string{
			"The naming field in anvils and the name tag gui will support formatting codes for setting custom text colors and styles.",
			"Check out the Minecraft Wiki for all available formatting codes and their usage: https://minecraft.fandom.com/wiki/Formatting_codes#Usage",
		},
		Kind:    KindBool,
		Default: DefaultRenamingSupportsFormatting,
		Get:     func(c *Config) any { return c.GetMiscellaneous().RenamingSupportsFormatting },
	},
	{
		Group:       GroupMiscellaneous,
		Key:         "name_tags_drop_from_mobs",
		Description: []string{"Mobs that have a custom name drop a name tag with that name on death."},
		Kind:        KindBool,
		Default:     DefaultNameTagsDropFromMobs,
		Get:         func(c *Config) any { return c.GetMiscellaneous().NameTagsDropFromMobs },
	},
	{
		Group:       GroupMiscellaneous,
		Key:         "disable_vanilla_anvil",
		Description: []string{"Leftover vanilla anvils in a world become unusable until they are broken and replaced."},
		Kind:        KindBool,
		Default:     DefaultDisableVanillaAnvil,
		Get:         func(c *Config) any { return c.GetMiscellaneous().DisableVanillaAnvil },
	},
}

// EnvKey returns the environment variable name for a field path, e.g.
// "costs.free_renames" with prefix "ANVILCOST_" yields
// "ANVILCOST_COSTS_FREE_RENAMES".
func EnvKey(prefix, path string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(path, ".", "_"))
}

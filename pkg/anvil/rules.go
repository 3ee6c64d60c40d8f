package anvil

import (
	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/anvilcost/pkg/config"
	"github.com/smykla-labs/anvilcost/pkg/penalty"
)

// Rules answers cost questions from an immutable copy of the settings.
// It is safe for concurrent use.
type Rules struct {
	priorWork config.PriorWorkPenaltyConfig
	costs     config.CostsConfig
	misc      config.MiscellaneousConfig
}

// NewRules snapshots cfg. Later changes to cfg do not affect the rules.
func NewRules(cfg *config.Config) *Rules {
	return &Rules{
		priorWork: *cfg.GetPriorWorkPenalty(),
		costs:     *cfg.GetCosts(),
		misc:      *cfg.GetMiscellaneous(),
	}
}

// Policy returns the active prior work penalty.
func (r *Rules) Policy() penalty.Policy {
	return r.priorWork.PriorWorkPenalty
}

// MaxIncrease returns the cap used by the LIMITED policy.
func (r *Rules) MaxIncrease() int {
	return r.priorWork.MaximumPriorWorkPenaltyIncrease
}

// PriorWorkCost returns the penalty charged for an item carrying counter.
func (r *Rules) PriorWorkCost(counter int) (int, error) {
	return penalty.Apply(r.priorWork.PriorWorkPenalty, counter, r.priorWork.MaximumPriorWorkPenaltyIncrease)
}

// NextRepairCost returns the counter to store on the item after op.
func (r *Rules) NextRepairCost(counter int, op Operation) (int, error) {
	if counter < 0 {
		return 0, errors.Wrapf(penalty.ErrInvalidArgument, "repair cost counter %d is negative", counter)
	}

	switch op {
	case OperationRename, OperationRepair:
		if r.priorWork.PenaltyFreeRenamesAndRepairs {
			return counter, nil
		}
	case OperationCombineBooks:
		if r.priorWork.PenaltyFreeEnchantsForBooks {
			return counter, nil
		}
	case OperationEnchant:
	default:
		return 0, errors.Wrapf(penalty.ErrInvalidArgument, "unknown operation %s", op)
	}

	if r.priorWork.PriorWorkPenalty == penalty.PolicyNone {
		return counter, nil
	}

	return penalty.NextCounter(counter), nil
}

// RenameOrRepairCost returns the level cost of renaming or repairing an item
// whose own cost is base.
//
// Under LIMITED the penalty never pushes the total to the too expensive limit;
// a base cost that is already over the limit is left for IsTooExpensive.
func (r *Rules) RenameOrRepairCost(base, counter int) (int, error) {
	if base < 0 {
		return 0, errors.Wrapf(penalty.ErrInvalidArgument, "base cost %d is negative", base)
	}

	switch r.priorWork.RenameAndRepairCosts {
	case config.RenameAndRepairCostFixed:
		return base, nil
	case config.RenameAndRepairCostVanilla, config.RenameAndRepairCostLimited:
	default:
		return 0, errors.Wrapf(penalty.ErrInvalidArgument,
			"unknown rename and repair cost %s", r.priorWork.RenameAndRepairCosts)
	}

	prior, err := r.PriorWorkCost(counter)
	if err != nil {
		return 0, err
	}

	cost := base + prior

	if r.priorWork.RenameAndRepairCosts == config.RenameAndRepairCostLimited &&
		r.costs.IsTooExpensiveLimitEnabled() {
		cost = min(cost, max(base, r.costs.TooExpensiveLimit-1))
	}

	return cost, nil
}

// IsTooExpensive reports whether an operation costing cost levels is refused.
func (r *Rules) IsTooExpensive(cost int) bool {
	return r.costs.IsTooExpensiveLimitEnabled() && cost >= r.costs.TooExpensiveLimit
}

// IsRenameFree reports whether renaming costs no levels.
func (r *Rules) IsRenameFree(isNameTag bool) bool {
	return r.costs.FreeRenames.Allows(isNameTag)
}

// EnchantmentMultiplier returns the per-level cost of an enchantment of rarity.
func (r *Rules) EnchantmentMultiplier(rarity Rarity) (int, error) {
	switch rarity {
	case RarityCommon:
		return r.costs.CommonEnchantmentMultiplier, nil
	case RarityUncommon:
		return r.costs.UncommonEnchantmentMultiplier, nil
	case RarityRare:
		return r.costs.RareEnchantmentMultiplier, nil
	case RarityVeryRare:
		return r.costs.VeryRareEnchantmentMultiplier, nil
	default:
		return 0, errors.Wrapf(penalty.ErrInvalidArgument, "unknown rarity %s", rarity)
	}
}

// EnchantmentCost returns the cost of applying level levels of an enchantment.
// Books pay half the multiplier, at least 1, when halved book costs are on.
func (r *Rules) EnchantmentCost(rarity Rarity, level int, fromBook bool) (int, error) {
	if level < 0 {
		return 0, errors.Wrapf(penalty.ErrInvalidArgument, "enchantment level %d is negative", level)
	}

	multiplier, err := r.EnchantmentMultiplier(rarity)
	if err != nil {
		return 0, err
	}

	if fromBook && r.costs.HalvedBookCosts {
		multiplier = max(1, multiplier/2)
	}

	return multiplier * level, nil
}

// MaterialRepairCost returns the extra cost of repairing with units of material.
func (r *Rules) MaterialRepairCost(units int) (int, error) {
	if units < 0 {
		return 0, errors.Wrapf(penalty.ErrInvalidArgument, "material units %d is negative", units)
	}

	return units * r.costs.RepairWithMaterialUnitCost, nil
}

// MaterialRepairAmount returns the durability restored by one unit of material.
func (r *Rules) MaterialRepairAmount(maxDurability int) int {
	return int(float64(maxDurability) * r.costs.RepairWithMaterialRestoredDurability)
}

// CombineRepairCost returns the extra cost of repairing with a second item.
func (r *Rules) CombineRepairCost() int {
	return r.costs.RepairWithOtherItemCost
}

// CombineBonusDurability returns the bonus durability granted when combining
// two damaged items of the same kind.
func (r *Rules) CombineBonusDurability(maxDurability int) int {
	return int(float64(maxDurability) * r.costs.RepairWithOtherItemBonusDurability)
}

// ShouldBreak decides whether the anvil takes damage. roll is a uniform random
// value in [0, 1).
func (r *Rules) ShouldBreak(roll float64, renameOnly bool) bool {
	if renameOnly && r.misc.RiskFreeAnvilRenaming {
		return false
	}

	return roll < r.misc.AnvilBreakChance
}

package config_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/anvilcost/internal/config"
	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
	"github.com/smykla-labs/anvilcost/pkg/penalty"
)

var _ = Describe("Validator", func() {
	var (
		validator *config.Validator
		cfg       *pkgconfig.Config
	)

	BeforeEach(func() {
		validator = config.NewValidator()
		cfg = config.DefaultConfig()
	})

	It("should accept the defaults", func() {
		Expect(validator.Validate(cfg)).To(Succeed())
	})

	It("should accept boundary values", func() {
		cfg.PriorWorkPenalty.MaximumPriorWorkPenaltyIncrease = 1
		cfg.Costs.TooExpensiveLimit = -1
		cfg.Costs.RepairWithMaterialUnitCost = 0
		cfg.Costs.RepairWithMaterialRestoredDurability = 1
		cfg.Miscellaneous.AnvilBreakChance = 0

		Expect(validator.Validate(cfg)).To(Succeed())
	})

	DescribeTable("rejects out of range values",
		func(mutate func(*pkgconfig.Config), path string) {
			mutate(cfg)

			err := validator.Validate(cfg)
			Expect(errors.Is(err, config.ErrValidationFailed)).To(BeTrue())

			var validationErr *config.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Errors).To(HaveLen(1))
			Expect(validationErr.Errors[0].Path).To(Equal(path))
		},
		Entry("maximum increase below 1",
			func(c *pkgconfig.Config) { c.PriorWorkPenalty.MaximumPriorWorkPenaltyIncrease = 0 },
			"prior_work_penalty.maximum_prior_work_penalty_increase"),
		Entry("too expensive limit below -1",
			func(c *pkgconfig.Config) { c.Costs.TooExpensiveLimit = -2 },
			"costs.too_expensive_limit"),
		Entry("common multiplier below 1",
			func(c *pkgconfig.Config) { c.Costs.CommonEnchantmentMultiplier = 0 },
			"costs.common_enchantment_multiplier"),
		Entry("rare multiplier below 1",
			func(c *pkgconfig.Config) { c.Costs.RareEnchantmentMultiplier = 0 },
			"costs.rare_enchantment_multiplier"),
		Entry("negative material unit cost",
			func(c *pkgconfig.Config) { c.Costs.RepairWithMaterialUnitCost = -1 },
			"costs.repair_with_material_unit_cost"),
		Entry("restored durability above 1",
			func(c *pkgconfig.Config) { c.Costs.RepairWithMaterialRestoredDurability = 1.5 },
			"costs.repair_with_material_restored_durability"),
		Entry("negative bonus durability",
			func(c *pkgconfig.Config) { c.Costs.RepairWithOtherItemBonusDurability = -0.1 },
			"costs.repair_with_other_item_bonus_durability"),
		Entry("break chance above 1",
			func(c *pkgconfig.Config) { c.Miscellaneous.AnvilBreakChance = 2 },
			"miscellaneous.anvil_break_chance"),
		Entry("unknown policy",
			func(c *pkgconfig.Config) { c.PriorWorkPenalty.PriorWorkPenalty = penalty.Policy(9) },
			"prior_work_penalty.prior_work_penalty"),
		Entry("unknown free renames",
			func(c *pkgconfig.Config) { c.Costs.FreeRenames = pkgconfig.FreeRenames(-1) },
			"costs.free_renames"),
		Entry("unsupported version",
			func(c *pkgconfig.Config) { c.Version = "2.0.0" },
			"version"),
		Entry("malformed version",
			func(c *pkgconfig.Config) { c.Version = "one" },
			"version"),
	)

	It("should report every violation at once", func() {
		cfg.PriorWorkPenalty.MaximumPriorWorkPenaltyIncrease = 0
		cfg.Costs.UncommonEnchantmentMultiplier = 0
		cfg.Miscellaneous.AnvilBreakChance = 1.2

		err := validator.Validate(cfg)

		var validationErr *config.ValidationError
		Expect(errors.As(err, &validationErr)).To(BeTrue())
		Expect(validationErr.Errors).To(HaveLen(3))
		Expect(err.Error()).To(ContainSubstring("costs.uncommon_enchantment_multiplier: 0 is below the minimum 1"))
	})

	It("should accept compatible versions", func() {
		cfg.Version = "1.4.2"
		Expect(validator.Validate(cfg)).To(Succeed())
	})
})

package anvil_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/anvilcost/internal/config"
	"github.com/smykla-labs/anvilcost/pkg/anvil"
	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
	"github.com/smykla-labs/anvilcost/pkg/penalty"
)

var _ = Describe("Rules", func() {
	var cfg *pkgconfig.Config

	BeforeEach(func() {
		cfg = config.DefaultConfig()
	})

	It("should snapshot the settings", func() {
		rules := anvil.NewRules(cfg)
		cfg.PriorWorkPenalty.PriorWorkPenalty = penalty.PolicyNone

		Expect(rules.Policy()).To(Equal(penalty.PolicyLimited))
		Expect(rules.MaxIncrease()).To(Equal(4))
	})

	It("should accept a config with missing groups", func() {
		rules := anvil.NewRules(&pkgconfig.Config{})
		Expect(rules.IsTooExpensive(1000)).To(BeTrue())
	})

	Describe("PriorWorkCost", func() {
		It("should apply the configured policy and cap", func() {
			cfg.PriorWorkPenalty.MaximumPriorWorkPenaltyIncrease = 2
			rules := anvil.NewRules(cfg)

			Expect(rules.PriorWorkCost(7)).To(Equal(5))
		})

		It("should surface an invalid cap", func() {
			cfg.PriorWorkPenalty.MaximumPriorWorkPenaltyIncrease = 0

			_, err := anvil.NewRules(cfg).PriorWorkCost(7)
			Expect(errors.Is(err, penalty.ErrInvalidArgument)).To(BeTrue())
		})
	})

	Describe("NextRepairCost", func() {
		DescribeTable("grows the counter per operation",
			func(renamesFree, booksFree bool, op anvil.Operation, expected int) {
				cfg.PriorWorkPenalty.PenaltyFreeRenamesAndRepairs = renamesFree
				cfg.PriorWorkPenalty.PenaltyFreeEnchantsForBooks = booksFree

				Expect(anvil.NewRules(cfg).NextRepairCost(3, op)).To(Equal(expected))
			},
			Entry("enchanting always doubles", true, true, anvil.OperationEnchant, 7),
			Entry("free rename keeps the counter", true, false, anvil.OperationRename, 3),
			Entry("free repair keeps the counter", true, false, anvil.OperationRepair, 3),
			Entry("paid rename doubles", false, false, anvil.OperationRename, 7),
			Entry("free book combine keeps the counter", false, true, anvil.OperationCombineBooks, 3),
			Entry("paid book combine doubles", false, false, anvil.OperationCombineBooks, 7),
		)

		It("should never grow the counter under NONE", func() {
			cfg.PriorWorkPenalty.PriorWorkPenalty = penalty.PolicyNone

			Expect(anvil.NewRules(cfg).NextRepairCost(0, anvil.OperationEnchant)).To(Equal(0))
		})

		It("should reject unknown operations and negative counters", func() {
			rules := anvil.NewRules(cfg)

			_, err := rules.NextRepairCost(1, anvil.Operation(99))
			Expect(errors.Is(err, penalty.ErrInvalidArgument)).To(BeTrue())

			_, err = rules.NextRepairCost(-1, anvil.OperationEnchant)
			Expect(errors.Is(err, penalty.ErrInvalidArgument)).To(BeTrue())
		})

		It("should feed the limited table when chained", func() {
			rules := anvil.NewRules(cfg)
			counter := 0

			for _, expected := range []int{0, 1, 3, 7, 11, 15} {
				Expect(rules.PriorWorkCost(counter)).To(Equal(expected))

				var err error
				counter, err = rules.NextRepairCost(counter, anvil.OperationEnchant)
				Expect(err).NotTo(HaveOccurred())
			}
		})
	})

	Describe("RenameOrRepairCost", func() {
		It("should ignore the penalty when FIXED", func() {
			cfg.PriorWorkPenalty.RenameAndRepairCosts = pkgconfig.RenameAndRepairCostFixed

			Expect(anvil.NewRules(cfg).RenameOrRepairCost(2, 63)).To(Equal(2))
		})

		It("should add the penalty when VANILLA", func() {
			cfg.PriorWorkPenalty.RenameAndRepairCosts = pkgconfig.RenameAndRepairCostVanilla
			cfg.PriorWorkPenalty.PriorWorkPenalty = penalty.PolicyVanilla

			Expect(anvil.NewRules(cfg).RenameOrRepairCost(2, 63)).To(Equal(65))
		})

		Context("when LIMITED", func() {
			BeforeEach(func() {
				cfg.PriorWorkPenalty.RenameAndRepairCosts = pkgconfig.RenameAndRepairCostLimited
				cfg.PriorWorkPenalty.PriorWorkPenalty = penalty.PolicyVanilla
				cfg.Costs.TooExpensiveLimit = 40
			})

			It("should keep the cost just below the limit", func() {
				rules := anvil.NewRules(cfg)

				cost, err := rules.RenameOrRepairCost(2, 63)
				Expect(err).NotTo(HaveOccurred())
				Expect(cost).To(Equal(39))
				Expect(rules.IsTooExpensive(cost)).To(BeFalse())
			})

			It("should leave cheap operations alone", func() {
				Expect(anvil.NewRules(cfg).RenameOrRepairCost(2, 7)).To(Equal(9))
			})

			It("should not lower a base cost already over the limit", func() {
				Expect(anvil.NewRules(cfg).RenameOrRepairCost(45, 7)).To(Equal(45))
			})

			It("should behave like VANILLA without a limit", func() {
				cfg.Costs.TooExpensiveLimit = pkgconfig.TooExpensiveLimitDisabled

				Expect(anvil.NewRules(cfg).RenameOrRepairCost(2, 63)).To(Equal(65))
			})
		})

		It("should reject a negative base cost", func() {
			_, err := anvil.NewRules(cfg).RenameOrRepairCost(-1, 0)
			Expect(errors.Is(err, penalty.ErrInvalidArgument)).To(BeTrue())
		})
	})

	Describe("IsTooExpensive", func() {
		It("should never refuse when the limit is disabled", func() {
			Expect(anvil.NewRules(cfg).IsTooExpensive(1 << 20)).To(BeFalse())
		})

		It("should refuse at the limit", func() {
			cfg.Costs.TooExpensiveLimit = 40
			rules := anvil.NewRules(cfg)

			Expect(rules.IsTooExpensive(39)).To(BeFalse())
			Expect(rules.IsTooExpensive(40)).To(BeTrue())
		})
	})

	Describe("IsRenameFree", func() {
		It("should follow the free renames setting", func() {
			cfg.Costs.FreeRenames = pkgconfig.FreeRenamesNameTagsOnly
			rules := anvil.NewRules(cfg)

			Expect(rules.IsRenameFree(true)).To(BeTrue())
			Expect(rules.IsRenameFree(false)).To(BeFalse())
		})
	})

	Describe("EnchantmentCost", func() {
		DescribeTable("multiplies by rarity",
			func(rarity anvil.Rarity, level int, fromBook bool, expected int) {
				Expect(anvil.NewRules(cfg).EnchantmentCost(rarity, level, fromBook)).To(Equal(expected))
			},
			Entry("common III", anvil.RarityCommon, 3, false, 3),
			Entry("uncommon II", anvil.RarityUncommon, 2, false, 4),
			Entry("rare IV", anvil.RarityRare, 4, false, 16),
			Entry("very rare I", anvil.RarityVeryRare, 1, false, 8),
			Entry("very rare I from a book", anvil.RarityVeryRare, 1, true, 4),
			Entry("common from a book stays at 1", anvil.RarityCommon, 2, true, 2),
			Entry("uncommon III from a book", anvil.RarityUncommon, 3, true, 3),
		)

		It("should not halve book costs when disabled", func() {
			cfg.Costs.HalvedBookCosts = false

			Expect(anvil.NewRules(cfg).EnchantmentCost(anvil.RarityRare, 2, true)).To(Equal(8))
		})

		It("should use configured multipliers", func() {
			cfg.Costs.VeryRareEnchantmentMultiplier = 3

			Expect(anvil.NewRules(cfg).EnchantmentMultiplier(anvil.RarityVeryRare)).To(Equal(3))
		})

		It("should reject unknown rarities and negative levels", func() {
			rules := anvil.NewRules(cfg)

			_, err := rules.EnchantmentCost(anvil.Rarity(7), 1, false)
			Expect(errors.Is(err, penalty.ErrInvalidArgument)).To(BeTrue())

			_, err = rules.EnchantmentCost(anvil.RarityCommon, -1, false)
			Expect(errors.Is(err, penalty.ErrInvalidArgument)).To(BeTrue())
		})
	})

	Describe("repairs", func() {
		It("should charge per material unit", func() {
			Expect(anvil.NewRules(cfg).MaterialRepairCost(3)).To(Equal(3))

			_, err := anvil.NewRules(cfg).MaterialRepairCost(-3)
			Expect(errors.Is(err, penalty.ErrInvalidArgument)).To(BeTrue())
		})

		It("should restore a quarter of the durability per unit by default", func() {
			Expect(anvil.NewRules(cfg).MaterialRepairAmount(1561)).To(Equal(390))
		})

		It("should grant the combine bonus", func() {
			rules := anvil.NewRules(cfg)

			Expect(rules.CombineRepairCost()).To(Equal(2))
			Expect(rules.CombineBonusDurability(100)).To(Equal(12))
		})
	})

	Describe("ShouldBreak", func() {
		It("should never break on a risk free rename", func() {
			Expect(anvil.NewRules(cfg).ShouldBreak(0, true)).To(BeFalse())
		})

		It("should compare the roll with the break chance", func() {
			rules := anvil.NewRules(cfg)

			Expect(rules.ShouldBreak(0.04, false)).To(BeTrue())
			Expect(rules.ShouldBreak(0.05, false)).To(BeFalse())
		})

		It("should let renames break the anvil when not risk free", func() {
			cfg.Miscellaneous.RiskFreeAnvilRenaming = false

			Expect(anvil.NewRules(cfg).ShouldBreak(0.01, true)).To(BeTrue())
		})
	})
})

var _ = Describe("enums", func() {
	It("should parse rarities", func() {
		r, err := anvil.RarityString("very_rare")
		Expect(err).NotTo(HaveOccurred())
		Expect(r).To(Equal(anvil.RarityVeryRare))
	})

	It("should name operations", func() {
		Expect(anvil.OperationCombineBooks.String()).To(Equal("COMBINE_BOOKS"))
	})
})

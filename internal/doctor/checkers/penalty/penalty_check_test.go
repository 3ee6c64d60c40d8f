package penalty_test

import (
	"context"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	checkers "github.com/smykla-labs/anvilcost/internal/doctor/checkers/penalty"

	"github.com/smykla-labs/anvilcost/internal/config"
	"github.com/smykla-labs/anvilcost/internal/doctor"
	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
	"github.com/smykla-labs/anvilcost/pkg/penalty"
)

type staticSettings struct {
	cfg *pkgconfig.Config
	err error
}

func (s staticSettings) Load() (*pkgconfig.Config, error) {
	return s.cfg, s.err
}

var _ = Describe("penalty checkers", func() {
	var (
		ctx context.Context
		cfg *pkgconfig.Config
	)

	BeforeEach(func() {
		ctx = context.Background()
		cfg = config.DefaultConfig()
	})

	Describe("CurveChecker", func() {
		It("should describe the limited curve", func() {
			result := checkers.NewCurveChecker(staticSettings{cfg: cfg}).Check(ctx)

			Expect(result.IsPassed()).To(BeTrue())
			Expect(result.Message).To(Equal("LIMITED, at most +4 per operation"))
			Expect(result.Details).To(ConsistOf(
				"Penalty for 0..10 prior works: 0, 1, 3, 7, 11, 15, 19, 23, 27, 31, 35",
			))
		})

		It("should describe the vanilla curve", func() {
			cfg.PriorWorkPenalty.PriorWorkPenalty = penalty.PolicyVanilla

			result := checkers.NewCurveChecker(staticSettings{cfg: cfg}).Check(ctx)
			Expect(result.Message).To(Equal("VANILLA"))
			Expect(result.Details[0]).To(HaveSuffix("511, 1023"))
		})

		It("should pass when the penalty is disabled", func() {
			cfg.PriorWorkPenalty.PriorWorkPenalty = penalty.PolicyNone

			Expect(checkers.NewCurveChecker(staticSettings{cfg: cfg}).Check(ctx).Message).
				To(Equal("Prior work penalty disabled"))
		})

		It("should skip when settings fail to load", func() {
			result := checkers.NewCurveChecker(staticSettings{err: errors.New("boom")}).Check(ctx)

			Expect(result.Status).To(Equal(doctor.StatusSkipped))
		})
	})

	Describe("TooExpensiveChecker", func() {
		It("should skip when the limit is disabled", func() {
			result := checkers.NewTooExpensiveChecker(staticSettings{cfg: cfg}).Check(ctx)

			Expect(result.Status).To(Equal(doctor.StatusSkipped))
		})

		It("should warn when vanilla growth hits the limit quickly", func() {
			cfg.PriorWorkPenalty.PriorWorkPenalty = penalty.PolicyVanilla
			cfg.PriorWorkPenalty.RenameAndRepairCosts = pkgconfig.RenameAndRepairCostVanilla
			cfg.Costs.TooExpensiveLimit = 40

			result := checkers.NewTooExpensiveChecker(staticSettings{cfg: cfg}).Check(ctx)
			Expect(result.IsWarning()).To(BeTrue())
			Expect(result.Message).To(Equal("Items become too expensive after 6 prior works"))
			Expect(result.Details).To(HaveLen(2))
		})

		It("should pass when the limited curve stays below the limit", func() {
			cfg.Costs.TooExpensiveLimit = 40

			result := checkers.NewTooExpensiveChecker(staticSettings{cfg: cfg}).Check(ctx)
			Expect(result.IsPassed()).To(BeTrue())
		})

		It("should pass when the penalty is disabled", func() {
			cfg.PriorWorkPenalty.PriorWorkPenalty = penalty.PolicyNone
			cfg.Costs.TooExpensiveLimit = 1

			Expect(checkers.NewTooExpensiveChecker(staticSettings{cfg: cfg}).Check(ctx).IsPassed()).To(BeTrue())
		})
	})
})

package penalty_test

import (
	"math"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/anvilcost/pkg/penalty"
)

var _ = Describe("DecodePriorWorkCount", func() {
	DescribeTable("decodes vanilla counters",
		func(counter, expected int) {
			Expect(penalty.DecodePriorWorkCount(counter)).To(Equal(expected))
		},
		Entry("fresh item", 0, 0),
		Entry("worked once", 1, 1),
		Entry("worked twice", 3, 2),
		Entry("worked three times", 7, 3),
		Entry("worked six times", 63, 6),
		Entry("between vanilla values rounds down", 5, 2),
		Entry("one below the next vanilla value", 14, 3),
		Entry("one above a vanilla value", 8, 3),
	)

	It("should decode every vanilla counter back to its work count", func() {
		for n := range 30 {
			Expect(penalty.DecodePriorWorkCount(penalty.VanillaCost(n))).To(Equal(n))
		}
	})

	It("should be monotonic non-decreasing", func() {
		previous := penalty.DecodePriorWorkCount(0)

		for counter := 1; counter <= 5000; counter++ {
			current := penalty.DecodePriorWorkCount(counter)
			Expect(current).To(BeNumerically(">=", previous), "counter %d", counter)
			previous = current
		}
	})

	It("should not overflow at the largest counter", func() {
		Expect(penalty.DecodePriorWorkCount(math.MaxInt)).To(Equal(63))
	})

	It("should decode negative counters to zero", func() {
		Expect(penalty.DecodePriorWorkCount(-5)).To(Equal(0))
	})
})

var _ = Describe("LimitedCost", func() {
	It("should be zero for a fresh item regardless of the cap", func() {
		for k := 1; k <= 10; k++ {
			Expect(penalty.LimitedCost(0, k)).To(Equal(0))
		}
	})

	DescribeTable("follows the capped growth curve with a cap of 4",
		func(priorWorks, expected int) {
			Expect(penalty.LimitedCost(priorWorks, 4)).To(Equal(expected))
		},
		Entry("0 -> 1", 1, 1),
		Entry("1 -> 3", 2, 3),
		Entry("3 -> 7", 3, 7),
		Entry("7 -> 11", 4, 11),
		Entry("11 -> 15", 5, 15),
		Entry("15 -> 19", 6, 19),
	)

	It("should add the capped amount computed from the accumulator before the update", func() {
		// cap 2: 0 -> 1 (min(1,2)) -> 3 (min(2,2)) -> 5
		Expect(penalty.LimitedCost(3, 2)).To(Equal(5))
		// cap 1 is linear
		Expect(penalty.LimitedCost(7, 1)).To(Equal(7))
	})

	It("should be monotonic in the work count and never exceed vanilla", func() {
		for k := 1; k <= 16; k++ {
			previous := 0

			for n := range 25 {
				cost, err := penalty.LimitedCost(n, k)
				Expect(err).NotTo(HaveOccurred())
				Expect(cost).To(BeNumerically(">=", previous))
				Expect(cost).To(BeNumerically("<=", penalty.VanillaCost(n)))
				previous = cost
			}
		}
	})

	It("should match vanilla when the cap is never reached", func() {
		for n := range 10 {
			Expect(penalty.LimitedCost(n, 1<<20)).To(Equal(penalty.VanillaCost(n)))
		}
	})

	It("should reject a negative work count", func() {
		_, err := penalty.LimitedCost(-1, 4)
		Expect(errors.Is(err, penalty.ErrInvalidArgument)).To(BeTrue())
	})

	It("should reject a cap below 1", func() {
		_, err := penalty.LimitedCost(3, 0)
		Expect(errors.Is(err, penalty.ErrInvalidArgument)).To(BeTrue())
	})
})

var _ = Describe("Apply", func() {
	It("should always return zero under NONE", func() {
		for counter := range 200 {
			Expect(penalty.Apply(penalty.PolicyNone, counter, 4)).To(Equal(0))
		}
	})

	It("should return the counter unchanged under VANILLA", func() {
		for counter := range 200 {
			Expect(penalty.Apply(penalty.PolicyVanilla, counter, 4)).To(Equal(counter))
		}
	})

	It("should compose decode and limited cost under LIMITED", func() {
		for counter := range 300 {
			expected, err := penalty.LimitedCost(penalty.DecodePriorWorkCount(counter), 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(penalty.Apply(penalty.PolicyLimited, counter, 4)).To(Equal(expected))
		}
	})

	DescribeTable("maps vanilla counters to the limited table",
		func(counter, expected int) {
			Expect(penalty.Apply(penalty.PolicyLimited, counter, 4)).To(Equal(expected))
		},
		Entry("0 works", 0, 0),
		Entry("1 work", 1, 1),
		Entry("2 works", 3, 3),
		Entry("3 works", 7, 7),
		Entry("4 works", 15, 11),
		Entry("5 works", 31, 15),
	)

	It("should yield the next table value after one more vanilla step", func() {
		table := []int{0, 1, 3, 7, 11, 15, 19, 23}
		counter := 0

		for i := range len(table) - 1 {
			Expect(penalty.Apply(penalty.PolicyLimited, counter, 4)).To(Equal(table[i]))

			counter = penalty.NextCounter(counter)
			Expect(penalty.Apply(penalty.PolicyLimited, counter, 4)).To(Equal(table[i+1]))
		}
	})

	It("should expose the same transform as ComputePenalizedCost", func() {
		for _, policy := range penalty.PolicyValues() {
			for counter := range 64 {
				expected, err := penalty.Apply(policy, counter, 3)
				Expect(err).NotTo(HaveOccurred())
				Expect(penalty.ComputePenalizedCost(counter, policy, 3)).To(Equal(expected))
			}
		}
	})

	Context("with arguments outside the domain", func() {
		It("should reject a negative counter", func() {
			_, err := penalty.Apply(penalty.PolicyVanilla, -1, 4)
			Expect(errors.Is(err, penalty.ErrInvalidArgument)).To(BeTrue())
		})

		It("should reject a cap below 1 for every policy", func() {
			for _, policy := range penalty.PolicyValues() {
				_, err := penalty.Apply(policy, 3, 0)
				Expect(errors.Is(err, penalty.ErrInvalidArgument)).To(BeTrue())
			}
		})

		It("should reject an unknown policy", func() {
			_, err := penalty.Apply(penalty.Policy(42), 3, 4)
			Expect(errors.Is(err, penalty.ErrInvalidArgument)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("Policy(42)"))
		})
	})
})

var _ = Describe("Policy", func() {
	It("should render upper case names", func() {
		Expect(penalty.PolicyStrings()).To(Equal([]string{"NONE", "VANILLA", "LIMITED"}))
	})

	It("should parse names case-insensitively", func() {
		p, err := penalty.PolicyString("limited")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(penalty.PolicyLimited))

		p, err = penalty.PolicyString("Vanilla")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(penalty.PolicyVanilla))
	})

	It("should reject unknown names", func() {
		var p penalty.Policy
		Expect(p.UnmarshalText([]byte("DOUBLE"))).To(HaveOccurred())
	})
})

var _ = Describe("VanillaCost", func() {
	It("should equal 2^n - 1", func() {
		for n := range 20 {
			Expect(penalty.VanillaCost(n)).To(Equal(1<<n - 1))
		}
	})
})

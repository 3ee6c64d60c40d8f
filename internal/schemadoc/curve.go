package schemadoc

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/anvilcost/pkg/penalty"
)

// CurveRow is the penalty charged under each policy after Works prior works.
type CurveRow struct {
	Works   int
	Counter int
	None    int
	Vanilla int
	Limited int
}

// Curve computes the penalty for 0..works prior works, starting from a fresh
// item and growing its counter with the vanilla rule.
func Curve(works, maxIncrease int) ([]CurveRow, error) {
	if works < 0 {
		return nil, errors.Wrapf(penalty.ErrInvalidArgument, "work count %d is negative", works)
	}

	rows := make([]CurveRow, 0, works+1)
	counter := 0

	for n := 0; n <= works; n++ {
		row := CurveRow{Works: n, Counter: counter}

		for policy, dst := range map[penalty.Policy]*int{
			penalty.PolicyNone:    &row.None,
			penalty.PolicyVanilla: &row.Vanilla,
			penalty.PolicyLimited: &row.Limited,
		} {
			cost, err := penalty.Apply(policy, counter, maxIncrease)
			if err != nil {
				return nil, err
			}

			*dst = cost
		}

		rows = append(rows, row)
		counter = penalty.NextCounter(counter)
	}

	return rows, nil
}

// PenaltyCurve renders Curve as a markdown table.
func PenaltyCurve(works, maxIncrease int) (string, error) {
	rows, err := Curve(works, maxIncrease)
	if err != nil {
		return "", err
	}

	table := NewTable("Prior works", "Counter", "NONE", "VANILLA", "LIMITED (max +"+strconv.Itoa(maxIncrease)+")").
		SetAlignments(AlignRight, AlignRight, AlignRight, AlignRight, AlignRight)

	for _, row := range rows {
		table.AddRow(
			strconv.Itoa(row.Works),
			strconv.Itoa(row.Counter),
			strconv.Itoa(row.None),
			strconv.Itoa(row.Vanilla),
			strconv.Itoa(row.Limited),
		)
	}

	return table.String(), nil
}

package stats

import (
	"errors"
	"fmt"
	"math"

	moremath "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
)

// DefaultAlpha is the significance level used when callers have no
// opinion.
const DefaultAlpha = 0.05

var (
	// ErrInsufficientData rejects samples too small to estimate variance.
	ErrInsufficientData = errors.New("sample needs at least two observations")
	// ErrZeroVariance rejects sample pairs with no spread at all. The test
	// statistic and the pooled effect size are undefined there.
	ErrZeroVariance = errors.New("both samples have zero variance")
)

// PercentChange is the relative mean shift from before to after, in
// percent. A zero before-mean yields 0 rather than a division error.
func PercentChange(before, after []float64) float64 {
	beforeMean := stat.Mean(before, nil)
	afterMean := stat.Mean(after, nil)
	if beforeMean == 0 {
		return 0
	}
	return (afterMean - beforeMean) / beforeMean * 100
}

// Compare scores an independent before/after sample pair: Student's
// pooled two-sample t-test (two-tailed), Cohen's d on the pooled standard
// deviation, and the relative mean shift. Positive t means the before
// sample sat higher.
func Compare(before, after []float64, alpha float64) (domain.Comparison, error) {
	if len(before) < 2 || len(after) < 2 {
		return domain.Comparison{}, fmt.Errorf("%w: got %d before, %d after",
			ErrInsufficientData, len(before), len(after))
	}

	res, err := moremath.TwoSampleTTest(
		moremath.Sample{Xs: before},
		moremath.Sample{Xs: after},
		moremath.LocationDiffers,
	)
	if err != nil {
		if errors.Is(err, moremath.ErrZeroVariance) {
			return domain.Comparison{}, fmt.Errorf("%w: t-test undefined", ErrZeroVariance)
		}
		return domain.Comparison{}, fmt.Errorf("t-test: %w", err)
	}

	var (
		beforeMean = stat.Mean(before, nil)
		afterMean  = stat.Mean(after, nil)
		n1         = float64(len(before))
		n2         = float64(len(after))
	)
	pooledVar := ((n1-1)*stat.Variance(before, nil) + (n2-1)*stat.Variance(after, nil)) / (n1 + n2 - 2)

	return domain.Comparison{
		BeforeMean:    beforeMean,
		AfterMean:     afterMean,
		PercentChange: PercentChange(before, after),
		TStatistic:    res.T,
		PValue:        res.P,
		EffectSize:    (afterMean - beforeMean) / math.Sqrt(pooledVar),
		Significant:   res.P < alpha,
	}, nil
}

package tracking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bramburn/gnssbaseband/pkg/baseband"
)

func TestPLLConvergesToConstantInput(t *testing.T) {
	const bn = 10.0
	const ta = 1e-3

	pll := NewPLLState(bn, ta, 0)

	ip := math.Cos(math.Pi / 8)
	qp := math.Sin(math.Pi / 8)

	wantFd := (math.Pi / 8) / (2 * math.Pi * ta)

	var fd float64
	for i := 0; i < 50; i++ {
		vk := pll.Update(ip, qp)
		fd = vk / (2 * math.Pi)
		if i == 19 {
			assert.InDelta(t, wantFd, fd, 1.0, "PLL should converge within 20 epochs")
		}
	}
	assert.InDelta(t, wantFd, fd, 1.0)
}

func TestDLLCodeRateCorrectionAntisymmetricInEarlyLateSwap(t *testing.T) {
	dll := NewDLLState(0.1, 45.0, 1e-3, 0.5*(1e-3/1023))

	sp := complex(1.0, 0)
	strong := complex(0.8, 0)
	weak := complex(0.2, 0)

	vCodeA := dll.CodeRateCorrection(sp, strong, weak, 0, 0, baseband.L1FreqHz)
	vCodeB := dll.CodeRateCorrection(sp, weak, strong, 0, 0, baseband.L1FreqHz)

	assert.NotEqual(t, 0.0, vCodeA)
	assert.InDelta(t, vCodeA, -vCodeB, 1e-12)
}

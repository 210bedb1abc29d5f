package distpolicy_test

import (
	"math"
	"testing"

	"github.com/evobio-go/parnas/distpolicy"
	"github.com/stretchr/testify/assert"
)

func TestPolicy_Infinite(t *testing.T) {
	p := distpolicy.Infinite()
	assert.False(t, p.Finite())
	assert.Equal(t, 5.0, p.Cost(5))
	assert.Equal(t, 1e9, p.Cost(1e9))
}

func TestPolicy_New_Clamps(t *testing.T) {
	p, err := distpolicy.New(3)
	assert.NoError(t, err)
	assert.True(t, p.Finite())
	assert.Equal(t, 2.0, p.Cost(2))
	assert.Equal(t, 3.0, p.Cost(3))
	assert.Equal(t, 3.0, p.Cost(100))
}

func TestPolicy_New_ZeroRadius(t *testing.T) {
	p, err := distpolicy.New(0)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, p.Cost(0))
	assert.Equal(t, 0.0, p.Cost(7))
}

func TestPolicy_New_NegativeRadius(t *testing.T) {
	_, err := distpolicy.New(-1)
	assert.ErrorIs(t, err, distpolicy.ErrNegativeRadius)
}

func TestPolicy_CostCovered(t *testing.T) {
	assert.Equal(t, 0.0, distpolicy.CostCovered(math.Inf(1)))
	assert.Equal(t, 0.0, distpolicy.CostCovered(0))
}

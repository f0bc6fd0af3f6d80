package mixer

import (
	"math"
	"sync"
)

// Epsilon is the smallest energy used by LogEnergy strategy.
const Epsilon = 1e-10

// Strategy defines how values of feature frames are combined.
type Strategy interface {
	// Scale applies linear amplitude gain to a value.
	Scale(v, gain float64) float64
	// Add combines two values.
	Add(a, b float64) float64
	// Silence is the value of a frame without any input.
	Silence() float64
}

// Additive sums values linearly.
type Additive struct{}

// Scale implements Strategy.
func (Additive) Scale(v, gain float64) float64 { return v * gain }

// Add implements Strategy.
func (Additive) Add(a, b float64) float64 { return a + b }

// Silence implements Strategy.
func (Additive) Silence() float64 { return 0 }

// LogEnergy adds log-energies in linear domain, as needed for log filter
// banks.
type LogEnergy struct{}

// Scale implements Strategy. Gain is amplitude, so energy is scaled by
// its square.
func (LogEnergy) Scale(v, gain float64) float64 {
	if gain == 1 {
		return v
	}
	return v + 2*math.Log(math.Max(Epsilon, gain))
}

// Add implements Strategy.
func (LogEnergy) Add(a, b float64) float64 {
	return math.Log(math.Max(Epsilon, math.Exp(a)+math.Exp(b)))
}

// Silence implements Strategy.
func (LogEnergy) Silence() float64 { return math.Log(Epsilon) }

var strategies = struct {
	sync.RWMutex
	m map[string]Strategy
}{
	m: map[string]Strategy{
		"fbank":   LogEnergy{},
		"log-mel": LogEnergy{},
	},
}

// Register sets the mixing strategy for features of provided type.
func Register(featuresType string, s Strategy) {
	strategies.Lock()
	defer strategies.Unlock()
	strategies.m[featuresType] = s
}

// ForType returns mixing strategy for features type. Types without
// registered strategy are mixed additively.
func ForType(featuresType string) Strategy {
	strategies.RLock()
	defer strategies.RUnlock()
	if s, ok := strategies.m[featuresType]; ok {
		return s
	}
	return Additive{}
}

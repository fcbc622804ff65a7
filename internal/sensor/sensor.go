// Package sensor provides the reading sources the scanner pulls from.
package sensor

//go:generate mockgen -destination=mock_sensor.go -package=sensor -write_package_comment=false ghostradar/internal/sensor Source

import (
	"context"
	"errors"
	"math/rand"
)

// ErrSensorUnavailable is returned by a hardware-backed Source that could not
// produce a reading this time.
var ErrSensorUnavailable = errors.New("sensor unavailable")

// Source produces one integer reading per call.
type Source interface {
	Next(ctx context.Context) (int, error)
}

// Channel is one simulated measurement drawn uniformly from [Min, Max].
type Channel struct {
	Name     string
	Min, Max int
}

// DefaultChannels mirror the demo board: DHT11 temperature and humidity
// plus a pressure probe.
var DefaultChannels = []Channel{
	{Name: "temperature", Min: 0, Max: 50},
	{Name: "humidity", Min: 20, Max: 90},
	{Name: "pressure", Min: -100, Max: 100},
}

// Simulated sums one independent draw per channel.
type Simulated struct {
	rng      *rand.Rand
	channels []Channel
}

// NewSimulated returns a reproducible source over DefaultChannels.
func NewSimulated(seed int64) *Simulated {
	return NewSimulatedFrom(rand.New(rand.NewSource(seed)), DefaultChannels)
}

// NewSimulatedFrom uses the given generator and channels.
func NewSimulatedFrom(rng *rand.Rand, channels []Channel) *Simulated {
	return &Simulated{rng: rng, channels: append([]Channel(nil), channels...)}
}

// Bounds returns the smallest and largest reading the source can produce.
func (s *Simulated) Bounds() (lo, hi int) {
	for _, c := range s.channels {
		lo += c.Min
		hi += c.Max
	}
	return lo, hi
}

func (s *Simulated) Next(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	sum := 0
	for _, c := range s.channels {
		sum += c.Min + s.rng.Intn(c.Max-c.Min+1)
	}
	return sum, nil
}

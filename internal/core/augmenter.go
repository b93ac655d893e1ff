package core

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"cpe-synth/internal/types"
)

const (
	// MaxAgeDays bounds how far back a simulated install date may lie.
	MaxAgeDays = 730
	MinSizeMB  = 0.1
	MaxSizeMB  = 500.0
	dateLayout = "2006-01-02"
)

// InstallLocations lists the paths a simulated install is placed under.
var InstallLocations = []string{
	"/usr/local/bin",
	"/opt/software",
	"/home/user/apps",
	"/var/lib",
	"/usr/share",
	"/Applications",
	`C:\Program Files`,
	`C:\Users\Public`,
	"/srv/www",
	"/etc/config",
	"/data/apps",
	"/mnt/storage",
}

// RandomSource is the subset of *rand.Rand the generator draws from.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// Augmenter attaches simulated install metadata to parsed CPE names. Every
// call is independent of the previous ones.
type Augmenter struct {
	Rand      RandomSource
	Clock     func() time.Time
	Locations []string
}

func NewAugmenter() Augmenter {
	return Augmenter{
		Rand:      globalRand{},
		Clock:     time.Now,
		Locations: InstallLocations,
	}
}

func (a Augmenter) Simulate() types.Simulated {
	return types.Simulated{
		Date:     a.date(),
		Location: a.location(),
		SizeMB:   a.size(),
	}
}

func (a Augmenter) Augment(name types.CPEName) types.Record {
	return types.NewRecord(name, a.Simulate())
}

func (a Augmenter) date() string {
	now := time.Now()
	if a.Clock != nil {
		now = a.Clock()
	}
	daysAgo := a.random().IntN(MaxAgeDays + 1)
	return now.AddDate(0, 0, -daysAgo).Format(dateLayout)
}

func (a Augmenter) location() string {
	locations := a.Locations
	if len(locations) == 0 {
		locations = InstallLocations
	}
	return locations[a.random().IntN(len(locations))]
}

func (a Augmenter) size() float64 {
	raw := MinSizeMB + a.random().Float64()*(MaxSizeMB-MinSizeMB)
	rounded := decimal.NewFromFloat(raw).Round(2)
	lower := decimal.NewFromFloat(MinSizeMB)
	upper := decimal.NewFromFloat(MaxSizeMB)
	if rounded.LessThan(lower) {
		rounded = lower
	}
	if rounded.GreaterThan(upper) {
		rounded = upper
	}
	return rounded.InexactFloat64()
}

func (a Augmenter) random() RandomSource {
	if a.Rand == nil {
		return globalRand{}
	}
	return a.Rand
}

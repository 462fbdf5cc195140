package configs

// Gacha holds the game-balance knobs of the draw engine. FeaturedShare
// is the aggregate in-tier weight pickup entries split among themselves;
// RateEpsilon bounds the rate-sum check at validation time. Both are
// deliberately configuration rather than constants: the intended balance
// design may change without a rebuild.
type Gacha struct {
	// FeaturedShare must lie in (0,1); out-of-range values fall back to
	// the validator default of 0.5.
	FeaturedShare float64 `env:"FEATURED_SHARE" envDefault:"0.5"`

	// RateEpsilon is the tolerance for the "rates sum to 1.0" check.
	RateEpsilon float64 `env:"RATE_EPSILON" envDefault:"0.0001"`

	// SeedFixtures points at a YAML file with demo characters and
	// campaigns. Only read when RUN_SEED is set.
	SeedFixtures string `env:"SEED_FIXTURES" envDefault:"db/fixtures/seed.yaml"`

	// RunSeed inserts the fixture data on startup. Only honoured by main.
	RunSeed bool `env:"RUN_SEED" envDefault:"false"`
}

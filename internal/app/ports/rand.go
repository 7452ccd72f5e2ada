package ports

// Rand centralizes every probabilistic branch behind a seedable source so
// tests can assert exact outcomes instead of statistical ones.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

package swar

import "github.com/brianvoe/gofakeit/v6"

const fakerSeed = 1234567890

func newFaker(salt int) *gofakeit.Faker {
	return gofakeit.New(fakerSeed + int64(salt))
}

// distinctValues returns total distinct values in [1, max].
func distinctValues(faker *gofakeit.Faker, total int, max uint64) []uint64 {
	var (
		seen = make(map[uint64]bool, total)
		out  = make([]uint64, 0, total)
	)

	for len(out) < total {
		v := uint64(faker.Number(1, int(max)))
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	return out
}

package mentoring

// between sorteia um inteiro no intervalo fechado [min, max]
func between(rnd Randomizer, min, max int) int {
	return min + rnd.Intn(max-min+1)
}

func pick[T any](rnd Randomizer, items []T) T {
	return items[rnd.Intn(len(items))]
}

// sample sorteia k itens distintos sem alterar a fatia original
func sample[T any](rnd Randomizer, items []T, k int) []T {
	pool := make([]T, len(items))
	copy(pool, items)
	if k > len(pool) {
		k = len(pool)
	}

	for i := 0; i < k; i++ {
		j := i + rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

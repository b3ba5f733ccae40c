package dp

// Tabulate fills a table of n cells bottom-up: t[0] = base, then
// t[i] = step(t, i) for i = 1..n-1. step may read any t[j] with j < i.
// A non-positive n yields nil.
func Tabulate[T any](n int, base T, step func(t []T, i int) T) []T {
	if n <= 0 {
		return nil
	}
	t := make([]T, n)
	t[0] = base
	for i := 1; i < n; i++ {
		t[i] = step(t, i)
	}

	return t
}

// Tabulate2D fills a rows×cols table in row-major order with
// t[i][j] = step(t, i, j). step may read any cell that precedes (i, j) in
// row-major order, boundary cells included. Non-positive dimensions yield nil.
func Tabulate2D[T any](rows, cols int, step func(t [][]T, i, j int) T) [][]T {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	t := make([][]T, rows)
	for i := range t {
		t[i] = make([]T, cols)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t[i][j] = step(t, i, j)
		}
	}

	return t
}

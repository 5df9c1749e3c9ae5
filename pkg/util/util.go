package util

import (
	"math"
)

func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// ReverseG reverse ke slice baru, input tidak diubah.
func ReverseG[T any](arr []T) []T {
	copyArr := make([]T, len(arr))
	copy(copyArr, arr)
	for i, j := 0, len(copyArr)-1; i < j; i, j = i+1, j-1 {
		copyArr[i], copyArr[j] = copyArr[j], copyArr[i]
	}
	return copyArr
}

// RoundMap round semua value map. dipakai buat response json.
func RoundMap[K comparable](m map[K]float64, precision uint) map[K]float64 {
	if m == nil {
		return nil
	}
	rounded := make(map[K]float64, len(m))
	for k, v := range m {
		rounded[k] = RoundFloat(v, precision)
	}
	return rounded
}

// Chunk bagi slice jadi potongan ukuran size (potongan terakhir bisa lebih kecil).
func Chunk[T any](arr []T, size int) [][]T {
	if size <= 0 {
		return [][]T{arr}
	}
	chunks := make([][]T, 0, (len(arr)+size-1)/size)
	for size < len(arr) {
		arr, chunks = arr[size:], append(chunks, arr[:size])
	}
	if len(arr) > 0 {
		chunks = append(chunks, arr)
	}
	return chunks
}

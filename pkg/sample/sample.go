// Package sample предоставляет источник случайности для выборки без
// возвращения. Генератор инкапсулирован, чтобы в тестах его можно было
// подменить детерминированным.
package sample

import (
	"math/rand"
	"sync"
	"time"
)

// Source — потокобезопасный источник случайности.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource создает Source поверх заданного генератора.
// Полезно для тестирования, когда требуется детерминированное поведение.
func NewSource(rng *rand.Rand) *Source {
	return &Source{rng: rng}
}

// NewDefaultSource создает Source, засеянный текущим временем.
func NewDefaultSource() *Source {
	return NewSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Indices возвращает k различных индексов из диапазона [0, n),
// выбранных равновероятно. Порядок результата — порядок выборки.
// При k >= n возвращается перестановка всех n индексов.
func (s *Source) Indices(n, k int) []int {
	if n <= 0 || k <= 0 {
		return []int{}
	}
	if k > n {
		k = n
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	// Частичный Fisher-Yates: перемешиваются только первые k позиций
	s.mu.Lock()
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	s.mu.Unlock()

	return idx[:k]
}

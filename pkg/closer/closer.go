// Package closer собирает функции освобождения ресурсов и выполняет их
// при остановке приложения в порядке, обратном регистрации.
package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Func освобождает один ресурс.
type Func func(ctx context.Context) error

// Closer закрывает зарегистрированные ресурсы ровно один раз, LIFO.
// Ресурсы, не успевшие закрыться до отмены контекста, добиваются
// принудительно с собственным таймаутом.
type Closer struct {
	mu            sync.Mutex
	once          sync.Once
	funcs         []Func
	forcedTimeout time.Duration
}

// NewCloser создаёт Closer. forcedTimeout ≤ 0 заменяется значением по умолчанию.
func NewCloser(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{forcedTimeout: forcedTimeout}
}

// Add регистрирует функцию закрытия ресурса.
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	c.funcs = append(c.funcs, f)
	c.mu.Unlock()
}

// Close закрывает ресурсы в обратном порядке. Повторные вызовы — no-op.
// При отмене контекста оставшиеся ресурсы закрываются принудительно,
// и Close возвращает ошибку о прерванной остановке.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		var problems []string
		for i := len(funcs) - 1; i >= 0; i-- {
			done := make(chan error, 1)
			go func(f Func) { done <- f(ctx) }(funcs[i])

			select {
			case closeErr := <-done:
				if closeErr != nil {
					problems = append(problems, closeErr.Error())
				}
			case <-ctx.Done():
				problems = append(problems, c.forceRemaining(funcs[:i+1])...)
				err = fmt.Errorf("shutdown interrupted, %d of %d resources forced: %s",
					i+1, len(funcs), strings.Join(problems, "; "))
				return
			}
		}

		if len(problems) > 0 {
			err = fmt.Errorf("shutdown finished with errors: %s", strings.Join(problems, "; "))
		}
	})

	return err
}

// forceRemaining параллельно закрывает ресурсы, не успевшие до отмены контекста.
func (c *Closer) forceRemaining(funcs []Func) []string {
	forcedCtx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		problems []string
	)

	for _, f := range funcs {
		wg.Add(1)
		go func(f Func) {
			defer wg.Done()
			if err := f(forcedCtx); err != nil {
				mu.Lock()
				problems = append(problems, "forced: "+err.Error())
				mu.Unlock()
			}
		}(f)
	}
	wg.Wait()

	return problems
}

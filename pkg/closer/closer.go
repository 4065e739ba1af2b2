package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

const defaultForcedTimeout = 2 * time.Second

// Func: сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

type entry struct {
	name string
	fn   Func
}

// Closer закрывает зарегистрированные ресурсы в обратном порядке (LIFO).
type Closer struct {
	entries       []entry
	mu            sync.Mutex
	once          sync.Once
	forcedTimeout time.Duration
}

// NewCloser создаёт Closer.
// forcedTimeout: время на принудительное закрытие ресурсов, до которых не дошла очередь до отмены контекста в Close.
func NewCloser(forcedTimeout time.Duration) *Closer {
	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{forcedTimeout: forcedTimeout}
}

// Add добавляет функцию в список закрытия. name попадает в текст ошибки.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry{name: name, fn: f})
}

// Close последовательно вызывает все функции (LIFO). Повторный вызов ничего не делает.
// Close не ждёт дольше срока ctx: функция, не успевшая завершиться, бросается, а оставшиеся закрываются
// принудительно и параллельно, не дольше forcedTimeout.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		entries := c.entries
		c.mu.Unlock()

		done, remaining, errs := c.gracefulClose(ctx, entries)
		if done == len(entries) {
			if len(errs) > 0 {
				err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(errs, "\n"))
			}
			return
		}

		errs = append(errs, c.forcedClose(remaining)...)
		err = fmt.Errorf("shutdown interrupted after %d/%d funcs:\n%s", done, len(entries), strings.Join(errs, "\n"))
	})

	return err
}

// gracefulClose вызывает функции по одной, пока не отменён ctx.
// Возвращает число завершившихся функций и те, до которых очередь не дошла.
func (c *Closer) gracefulClose(ctx context.Context, entries []entry) (int, []entry, []string) {
	var (
		errs []string
		done int
	)

	for i := len(entries) - 1; i >= 0; i-- {
		if ctx.Err() != nil {
			return done, entries[:i+1], errs
		}

		var (
			en  = entries[i]
			res = make(chan error, 1)
		)
		go func() {
			res <- en.fn(ctx)
		}()

		select {
		case err := <-res:
			done++
			if err != nil {
				errs = append(errs, fmt.Sprintf("[!] %s: %v", en.name, err))
			}
		case <-ctx.Done():
			errs = append(errs, fmt.Sprintf("[!] %s: abandoned: %v", en.name, ctx.Err()))
			return done, entries[:i], errs
		}
	}

	return done, nil, errs
}

// forcedClose параллельно запускает оставшиеся функции с собственным таймаутом и не ждёт дольше него.
func (c *Closer) forcedClose(entries []entry) []string {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		errs    []string
		pending = make([]bool, len(entries))
	)

	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	for i, en := range entries {
		pending[i] = true
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := en.fn(ctx)

			mu.Lock()
			defer mu.Unlock()
			pending[i] = false
			if err != nil {
				errs = append(errs, fmt.Sprintf("[FORCED] %s: %v", en.name, err))
			}
		}()
	}

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-ctx.Done():
	}

	mu.Lock()
	defer mu.Unlock()
	for i, en := range entries {
		if pending[i] {
			errs = append(errs, fmt.Sprintf("[FORCED] %s: not finished within %s", en.name, c.forcedTimeout))
		}
	}

	// брошенные функции ещё могут дописать в errs
	return append([]string(nil), errs...)
}

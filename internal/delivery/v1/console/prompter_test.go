package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DRSN-tech/shopping-cart/pkg/e"
	"github.com/DRSN-tech/shopping-cart/pkg/logger"
	"github.com/shopspring/decimal"
)

func TestPrompterCancellationIsSticky(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader(""), out, logger.NewNopLogger())
	defer p.Close()
	ctx := context.Background()

	name, err := p.String(ctx, "name: ", "none")
	if err != nil || name != "none" {
		t.Fatalf("expected fallback, got %q (err %v)", name, err)
	}
	if !p.Cancelled() {
		t.Fatalf("prompter must be cancelled after end of input")
	}

	qty, err := p.NonNegativeInt(ctx, "qty: ", 7)
	if err != nil || qty != 7 {
		t.Fatalf("expected fallback 7, got %d (err %v)", qty, err)
	}
	price, err := p.NonNegativeDecimal(ctx, "price: ", decimal.NewFromInt(2))
	if err != nil || !price.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("expected fallback 2, got %s (err %v)", price, err)
	}

	if _, err := p.Line(ctx, "> "); !errors.Is(err, e.ErrCancelled) {
		t.Fatalf("expected cancelled, got %v", err)
	}
	if n := strings.Count(out.String(), msgInputCancelled); n != 3 {
		t.Fatalf("expected 3 fallback messages, got %d", n)
	}
}

func TestPrompterReadsLinesInOrder(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader(lines("first", "", "  second  ")), out, logger.NewNopLogger())
	defer p.Close()
	ctx := context.Background()

	if got, _ := p.Line(ctx, "> "); got != "first" {
		t.Fatalf("expected first, got %q", got)
	}
	if got, _ := p.String(ctx, "> ", "none"); got != "second" {
		t.Fatalf("expected second, got %q", got)
	}
	if !strings.Contains(out.String(), msgEmptyString) {
		t.Fatalf("expected empty input message:\n%s", out.String())
	}
	if p.Cancelled() {
		t.Fatalf("prompter must not be cancelled yet")
	}
}

func TestPrompterContextCancelled(t *testing.T) {
	p := NewPrompter(strings.NewReader(lines("ignored")), &bytes.Buffer{}, logger.NewNopLogger())
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, err := p.Int(ctx, "> ", 5, nonNegativeInt)
	if err != nil || v != 5 {
		t.Fatalf("expected fallback 5, got %d (err %v)", v, err)
	}
	if !p.Cancelled() {
		t.Fatalf("prompter must be cancelled")
	}
}

func TestPrompterLineEndings(t *testing.T) {
	long := strings.Repeat("y", 200_000)
	p := NewPrompter(strings.NewReader("crlf\r\n"+long+"\nlast"), &bytes.Buffer{}, logger.NewNopLogger())
	defer p.Close()
	ctx := context.Background()

	for _, want := range []string{"crlf", long, "last"} {
		got, err := p.Line(ctx, "> ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("expected line of length %d, got length %d", len(want), len(got))
		}
	}

	if _, err := p.Line(ctx, "> "); !errors.Is(err, e.ErrCancelled) {
		t.Fatalf("expected cancelled after last line, got %v", err)
	}
}

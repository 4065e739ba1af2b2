package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/shopping-cart/internal/cfg"
	"github.com/DRSN-tech/shopping-cart/internal/delivery/v1/console"
	"github.com/DRSN-tech/shopping-cart/internal/domain"
	"github.com/DRSN-tech/shopping-cart/internal/usecase"
	"github.com/DRSN-tech/shopping-cart/pkg/closer"
	"github.com/DRSN-tech/shopping-cart/pkg/e"
	"github.com/DRSN-tech/shopping-cart/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout    = 5 * time.Second
	forcedCloseTimeout = time.Second
)

// App связывает конфигурацию, логгер и потоки ввода-вывода и запускает программы.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	in     io.Reader
	out    io.Writer
}

// Program: одна интерактивная программа поверх общего Prompter.
type Program func(ctx context.Context, prompter *console.Prompter, log logger.Logger) error

func NewApp(cfg *config.Config, log logger.Logger, in io.Reader, out io.Writer) (*App, error) {
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &App{
		cfg:    cfg,
		logger: log,
		in:     in,
		out:    out,
	}, nil
}

// Run запускает программу до конца ввода, сигнала или ошибки.
// Отмена ввода считается штатным завершением. Паника перехватывается и возвращается как ошибка.
func (a *App) Run(ctx context.Context, name string, program Program) (err error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)

	log := a.logger.With("session_id", uuid.NewString())
	prompter := console.NewPrompter(a.in, a.out, log)

	cl := closer.NewCloser(forcedCloseTimeout)
	cl.Add("signal notification", func(context.Context) error {
		stop()
		return nil
	})
	cl.Add("input reader", func(context.Context) error {
		return prompter.Close()
	})

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", name, r)
			log.Errorf(err, "program panicked")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if cerr := cl.Close(shutdownCtx); cerr != nil {
			log.Warnf("%v", cerr)
		}
	}()

	log.Infof("%s started", name)

	if err := program(ctx, prompter, log); err != nil {
		if errors.Is(err, e.ErrCancelled) {
			log.Infof("%s cancelled", name)
			return nil
		}
		log.Errorf(err, "%s failed", name)
		return e.Wrap(name, err)
	}

	log.Infof("%s finished", name)
	return nil
}

// Cart запускает интерактивную корзину покупок.
func (a *App) Cart(ctx context.Context, prompter *console.Prompter, log logger.Logger) error {
	customer, err := console.AskCustomer(ctx, prompter, a.out, console.Customer{
		Name: a.cfg.Session.DefaultCustomer,
		Date: a.cfg.Session.DefaultDate,
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	cart := domain.NewCart(customer.Name, customer.Date)
	cartUC := usecase.NewCartUC(cart, log)

	return console.NewSession(cartUC, prompter, a.out, log).Run(ctx)
}

// TwoItems: первая версия корзины, итог по двум товарам.
func (a *App) TwoItems(ctx context.Context, prompter *console.Prompter, _ logger.Logger) error {
	return console.NewExercises(prompter, a.out).TwoItems(ctx)
}

func (a *App) Meal(ctx context.Context, prompter *console.Prompter, _ logger.Logger) error {
	rates := domain.MealRates{Tip: a.cfg.Meal.TipRate, Tax: a.cfg.Meal.TaxRate}
	return console.NewExercises(prompter, a.out).Meal(ctx, rates)
}

func (a *App) Alarm(ctx context.Context, prompter *console.Prompter, _ logger.Logger) error {
	return console.NewExercises(prompter, a.out).Alarm(ctx)
}

func (a *App) Rainfall(ctx context.Context, prompter *console.Prompter, _ logger.Logger) error {
	return console.NewExercises(prompter, a.out).Rainfall(ctx)
}

func (a *App) Points(ctx context.Context, prompter *console.Prompter, _ logger.Logger) error {
	return console.NewExercises(prompter, a.out).Points(ctx)
}

func (a *App) Courses(ctx context.Context, prompter *console.Prompter, _ logger.Logger) error {
	catalog, err := domain.NewDefaultCatalog()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return console.NewExercises(prompter, a.out).Courses(ctx, catalog)
}

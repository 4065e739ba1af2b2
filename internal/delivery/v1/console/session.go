package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DRSN-tech/shopping-cart/internal/domain"
	"github.com/DRSN-tech/shopping-cart/internal/usecase"
	"github.com/DRSN-tech/shopping-cart/pkg/e"
	"github.com/DRSN-tech/shopping-cart/pkg/logger"
	"github.com/shopspring/decimal"
)

// State: состояние командного цикла.
type State int

const (
	StateAwaitingCommand State = iota
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateAwaitingCommand:
		return "AWAITING_COMMAND"
	case StateEnded:
		return "ENDED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

const menuText = `MENU
a - Add item to cart
r - Remove item from cart
c - Change item quantity
i - Output items' descriptions
o - Output shopping cart
q - Quit
`

const (
	cmdAdd          = "a"
	cmdRemove       = "r"
	cmdChange       = "c"
	cmdDescriptions = "i"
	cmdSummary      = "o"
	cmdQuit         = "q"

	msgInvalidChoice       = "Invalid choice. Please select a valid option."
	msgNothingRemoved      = "Item not found in cart. Nothing removed."
	msgNothingModified     = "Item not found in cart. Nothing modified."
	msgModificationRejects = "Modification rejected: "
	msgItemRejected        = "Item rejected: "
	msgSessionEnded        = "Session ended."
)

type commandFunc func(ctx context.Context) error

// Session: интерактивный цикл команд над одной корзиной.
type Session struct {
	cartUC   usecase.CartUC
	prompter *Prompter
	out      io.Writer
	logger   logger.Logger

	state    State
	commands map[string]commandFunc
}

func NewSession(cartUC usecase.CartUC, prompter *Prompter, out io.Writer, logger logger.Logger) *Session {
	s := &Session{
		cartUC:   cartUC,
		prompter: prompter,
		out:      out,
		logger:   logger,
		state:    StateAwaitingCommand,
	}
	s.registerCommands()

	return s
}

func (s *Session) registerCommands() {
	s.commands = map[string]commandFunc{
		cmdAdd:          s.addItem,
		cmdRemove:       s.removeItem,
		cmdChange:       s.changeQuantity,
		cmdDescriptions: s.outputDescriptions,
		cmdSummary:      s.outputSummary,
	}
}

func (s *Session) State() State {
	return s.state
}

// Run крутит цикл до команды q или отмены ввода.
// Отмена не считается ошибкой: команда в работе доигрывается со значениями по умолчанию, и сессия завершается.
func (s *Session) Run(ctx context.Context) error {
	const op = "Session.Run"

	for s.state == StateAwaitingCommand {
		if s.prompter.Cancelled() {
			s.end()
			break
		}

		fmt.Fprint(s.out, menuText+"\n")
		raw, err := s.prompter.Line(ctx, "Choose an option: ")
		if err != nil {
			if errors.Is(err, e.ErrCancelled) {
				fmt.Fprintln(s.out)
				s.end()
				break
			}
			return e.Wrap(op, err)
		}

		choice := strings.ToLower(strings.TrimSpace(raw))
		if choice == cmdQuit {
			s.state = StateEnded
			s.logger.Debugf("session quit by command")
			break
		}

		cmd, ok := s.commands[choice]
		if !ok {
			fmt.Fprintln(s.out, msgInvalidChoice)
			continue
		}

		if err := cmd(ctx); err != nil {
			return e.Wrap(op, err)
		}
	}

	return nil
}

func (s *Session) end() {
	fmt.Fprintln(s.out, msgSessionEnded)
	s.state = StateEnded
	s.logger.Infof("session ended by input cancellation")
}

func (s *Session) addItem(ctx context.Context) error {
	fmt.Fprintln(s.out, "\nADD ITEM TO CART")

	name, err := s.prompter.String(ctx, "Enter the item name: ", domain.NoneSentinel)
	if err != nil {
		return err
	}
	description, err := s.prompter.String(ctx, "Enter the item description: ", domain.NoneSentinel)
	if err != nil {
		return err
	}
	price, err := s.prompter.NonNegativeDecimal(ctx, "Enter the item price: ", decimal.Zero)
	if err != nil {
		return err
	}
	quantity, err := s.prompter.Quantity(ctx, "Enter the item quantity: ", 0)
	if err != nil {
		return err
	}

	if err := s.cartUC.AddItem(usecase.NewAddItemReq(name, description, price, quantity)); err != nil {
		if !errors.Is(err, e.ErrValidation) {
			return err
		}
		fmt.Fprintln(s.out, msgItemRejected+ToUserMessage(err))
	}

	fmt.Fprintln(s.out)
	return nil
}

func (s *Session) removeItem(ctx context.Context) error {
	fmt.Fprintln(s.out, "\nREMOVE ITEM FROM CART")

	name, err := s.prompter.String(ctx, "Enter name of item to remove: ", domain.NoneSentinel)
	if err != nil {
		return err
	}

	if err := s.cartUC.RemoveItem(usecase.NewRemoveItemReq(name)); err != nil {
		if !errors.Is(err, e.ErrNotFound) {
			return err
		}
		fmt.Fprintln(s.out, msgNothingRemoved)
	}

	fmt.Fprintln(s.out)
	return nil
}

func (s *Session) changeQuantity(ctx context.Context) error {
	fmt.Fprintln(s.out, "\nCHANGE ITEM QUANTITY")

	name, err := s.prompter.String(ctx, "Enter the item name: ", domain.NoneSentinel)
	if err != nil {
		return err
	}
	quantity, err := s.prompter.Quantity(ctx, "Enter the new quantity: ", 0)
	if err != nil {
		return err
	}

	err = s.cartUC.ModifyItem(usecase.NewChangeQuantityReq(name, quantity))
	switch {
	case err == nil:
	case errors.Is(err, e.ErrNotFound):
		fmt.Fprintln(s.out, msgNothingModified)
	case errors.Is(err, e.ErrValidation):
		fmt.Fprintln(s.out, msgModificationRejects+ToUserMessage(err))
	default:
		return err
	}

	fmt.Fprintln(s.out)
	return nil
}

func (s *Session) outputDescriptions(_ context.Context) error {
	fmt.Fprintln(s.out, "\nOUTPUT ITEMS' DESCRIPTIONS")
	renderDescriptions(s.out, s.cartUC.GetItemDescriptions())
	fmt.Fprintln(s.out)

	return nil
}

func (s *Session) outputSummary(_ context.Context) error {
	fmt.Fprintln(s.out, "\nOUTPUT SHOPPING CART")
	renderSummary(s.out, s.cartUC.GetCartSummary())
	fmt.Fprintln(s.out)

	return nil
}

// Customer: данные покупателя, собранные при старте программы.
type Customer struct {
	Name string
	Date string
}

// AskCustomer печатает заголовок программы и спрашивает имя покупателя и дату.
// При отмене подставляются значения по умолчанию.
func AskCustomer(ctx context.Context, prompter *Prompter, out io.Writer, defaults Customer) (*Customer, error) {
	fmt.Fprintln(out, "Shopping Cart Program")

	name, err := prompter.String(ctx, "Enter customer's name: ", defaults.Name)
	if err != nil {
		return nil, err
	}
	date, err := prompter.String(ctx, "Enter today's date: ", defaults.Date)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "\nCustomer name: %s\n", name)
	fmt.Fprintf(out, "Today's date: %s\n\n", date)

	return &Customer{Name: name, Date: date}, nil
}

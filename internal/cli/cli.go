// Package cli is a line-oriented terminal front end for a storefront session.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/nikolayk812/baht-pos/internal/storefront"
	"go.uber.org/zap"
)

var errQuit = errors.New("quit")

type Shell struct {
	session *storefront.Session
	out     io.Writer
	logger  *zap.Logger
}

func New(session *storefront.Session, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{session: session, out: out, logger: logger}
}

// Run reads commands from in until EOF or "quit".
func (sh *Shell) Run(in io.Reader) error {
	sh.printf("baht-pos: %d categories, type \"help\" for commands\n", len(sh.session.Categories()))

	scanner := bufio.NewScanner(in)
	for {
		sh.printf("> ")
		if !scanner.Scan() {
			break
		}

		err := sh.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			sh.printf("error: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner.Scan: %w", err)
	}
	return nil
}

// Exec runs a single command line.
func (sh *Shell) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	sh.logger.Debug("command", zap.String("cmd", cmd), zap.Strings("args", args))

	switch cmd {
	case "help", "?":
		sh.help()
	case "quit", "exit":
		return errQuit

	case "products", "ls":
		sh.session.FlushSearch()
		sh.products()
	case "categories":
		sh.categories()
	case "category", "cat":
		if len(args) == 0 {
			return fmt.Errorf("usage: category <name|all>")
		}
		sh.session.SetCategory(strings.Join(args, " "))
		sh.products()
	case "search":
		sh.session.TypeSearch(strings.Join(args, " "))
	case "page":
		if len(args) != 1 {
			return fmt.Errorf("usage: page <n>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("page %q is not a number", args[0])
		}
		sh.session.FlushSearch()
		sh.session.GoToPage(n)
		sh.products()
	case "next":
		sh.session.FlushSearch()
		sh.session.NextPage()
		sh.products()
	case "prev":
		sh.session.FlushSearch()
		sh.session.PrevPage()
		sh.products()
	case "resize":
		if len(args) != 1 {
			return fmt.Errorf("usage: resize <width>")
		}
		w, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("width %q is not a number", args[0])
		}
		sh.session.Resize(w)

	case "add":
		if len(args) != 1 {
			return fmt.Errorf("usage: add <productID>")
		}
		if err := sh.session.Add(args[0]); err != nil {
			return err
		}
		sh.cart()
	case "inc", "+":
		id, err := lineArg(args)
		if err != nil {
			return err
		}
		if err := sh.session.Increase(id); err != nil {
			return err
		}
		sh.cart()
	case "dec", "-":
		id, err := lineArg(args)
		if err != nil {
			return err
		}
		sh.session.Decrease(id)
		sh.cart()
	case "rm", "remove":
		id, err := lineArg(args)
		if err != nil {
			return err
		}
		sh.session.Remove(id)
		sh.cart()
	case "later":
		id, err := lineArg(args)
		if err != nil {
			return err
		}
		sh.session.SplitSendLater(id)
		sh.cart()
	case "discount":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("usage: discount <lineID> <amount> [baht|percen]")
		}
		typ, err := discountTypeArg(args[2:])
		if err != nil {
			return err
		}
		sh.session.SetLineDiscount(domain.LineID(args[0]), args[1], typ)
		sh.cart()
	case "bill":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("usage: bill <amount> [baht|percen]")
		}
		typ, err := discountTypeArg(args[1:])
		if err != nil {
			return err
		}
		sh.session.SetBillDiscount(args[0], typ)
		sh.summary()
	case "cart":
		sh.cart()
	case "summary":
		sh.summary()
	case "checkout":
		sh.session.Checkout()
		sh.summary()
		sh.printf("checkout is not available in this build\n")
	case "clear":
		sh.session.Clear()
		sh.cart()

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}

	return nil
}

func lineArg(args []string) (domain.LineID, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected exactly one line id")
	}
	return domain.LineID(args[0]), nil
}

func discountTypeArg(args []string) (domain.DiscountType, error) {
	if len(args) == 0 {
		return domain.FlatCurrency, nil
	}
	return domain.ParseDiscountType(args[0])
}

func (sh *Shell) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(sh.out, format, a...)
}

func (sh *Shell) help() {
	sh.printf(`commands:
  products | next | prev | page <n>      browse the catalog
  categories | category <name|all>      filter by category
  search <term>                         search by id or name (empty clears)
  resize <width>                        set the viewport width
  add <productID>                       put a product in the cart
  inc | dec | rm | later <lineID>       change a cart line
  discount <lineID> <amount> [baht|percen]
  bill <amount> [baht|percen]           discount on the whole bill
  cart | summary | checkout | clear
  quit
`)
}

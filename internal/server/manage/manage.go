// Package manage implements the operator commands of the manage binary:
// schema migration, admin accounts and category seeding.
package manage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/logging"
	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
)

// ErrUsage is returned for an unknown verb or wrong argument count.
var ErrUsage = errors.New("usage")

const usage = `commands:
  migrate                        apply database migrations
  create-admin <login> <role>    create an account (role: editor or manager)
  set-password <login>           change an account password
  seed-categories                create the default categories`

type AdminService interface {
	CreateAdmin(ctx context.Context, login, password, role string) (*models.Admin, error)
	SetPassword(ctx context.Context, login, password string) error
}

type CatalogService interface {
	SeedCategories(ctx context.Context, names []string) (int, error)
}

type Tool struct {
	out          io.Writer
	migrate      func(ctx context.Context) error
	admins       AdminService
	catalog      CatalogService
	categories   []string
	readPassword func() ([]byte, error)
	logger       logging.Logger
}

func NewTool(out io.Writer, migrate func(ctx context.Context) error, as AdminService, cs CatalogService, categories []string, logger logging.Logger) *Tool {
	return &Tool{
		out:          out,
		migrate:      migrate,
		admins:       as,
		catalog:      cs,
		categories:   categories,
		readPassword: func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) },
		logger:       logger.With("module", "manage"),
	}
}

// Run executes one verb with its arguments.
func (t *Tool) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return t.usageError()
	}

	switch verb, rest := args[0], args[1:]; verb {
	case "migrate":
		if len(rest) != 0 {
			return t.usageError()
		}
		if err := t.migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Fprintln(t.out, "Migrations applied")
		return nil

	case "create-admin":
		if len(rest) != 2 {
			return t.usageError()
		}
		return t.createAdmin(ctx, rest[0], rest[1])

	case "set-password":
		if len(rest) != 1 {
			return t.usageError()
		}
		return t.setPassword(ctx, rest[0])

	case "seed-categories":
		if len(rest) != 0 {
			return t.usageError()
		}
		n, err := t.catalog.SeedCategories(ctx, t.categories)
		if err != nil {
			return err
		}
		fmt.Fprintf(t.out, "Added %d categories\n", n)
		return nil

	default:
		return t.usageError()
	}
}

func (t *Tool) usageError() error {
	fmt.Fprintln(t.out, usage)
	return ErrUsage
}

func (t *Tool) createAdmin(ctx context.Context, login, role string) error {
	pw, err := t.askNewPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	a, err := t.admins.CreateAdmin(ctx, login, string(pw), role)
	if err != nil {
		return err
	}
	t.logger.Info(ctx, "admin created", "login", a.Login, "role", a.Role)
	fmt.Fprintf(t.out, "Created %s %q\n", a.Role, a.Login)
	return nil
}

func (t *Tool) setPassword(ctx context.Context, login string) error {
	pw, err := t.askNewPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	if err := t.admins.SetPassword(ctx, login, string(pw)); err != nil {
		return err
	}
	fmt.Fprintf(t.out, "Password changed for %q\n", login)
	return nil
}

// askNewPassword reads the password twice without echo.
func (t *Tool) askNewPassword() ([]byte, error) {
	fmt.Fprint(t.out, "Password: ")
	first, err := t.readPassword()
	fmt.Fprintln(t.out)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(t.out, "Repeat password: ")
	second, err := t.readPassword()
	fmt.Fprintln(t.out)
	if err != nil {
		common.WipeByteArray(first)
		return nil, fmt.Errorf("read password: %w", err)
	}
	defer common.WipeByteArray(second)

	if !bytes.Equal(first, second) {
		common.WipeByteArray(first)
		return nil, fmt.Errorf("%w: passwords do not match", common.ErrorValidation)
	}
	return first, nil
}

package cli

import (
	"context"
	"io"

	"github.com/dmitrijs2005/recipeadmin/internal/client/services"
	"github.com/dmitrijs2005/recipeadmin/internal/common"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = func(w io.Writer) ([]byte, error) { return GetPassword(w) }

// Login prompts for credentials (the username may be given as an argument)
// and stores the issued token.
func (a *App) Login(ctx context.Context, args []string) error {
	username := ""
	if len(args) > 0 {
		username = args[0]
	}
	if username == "" {
		prompt := "Enter username"
		last := a.auth.LastUsername(ctx)
		if last != "" {
			prompt += " [" + last + "]"
		}
		var err error
		username, err = getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if username == "" {
			username = last
		}
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		a.println(services.Notify(err))
		return err
	}
	if s.Role != "" {
		a.printf("Logged in as %s (%s)\n", s.Username, s.Role)
	} else {
		a.printf("Logged in as %s\n", s.Username)
	}
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.println(services.Notify(err))
		return err
	}
	a.println("Logged out.")
	return nil
}

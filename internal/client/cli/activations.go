package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (a *App) ListActivations(ctx context.Context, _ []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		list, err := a.activations.List(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			a.println("No activation codes.")
			return nil
		}
		for _, act := range list {
			a.printf("%s  limit %d  expires %s  %s\n",
				act.ActivationCode, act.ActivationsLimit, act.ExpiresAt.Format("2006-01-02"), act.Description)
		}
		return nil
	})
}

// AddActivationCode prompts for the code parameters and prints the new code.
func (a *App) AddActivationCode(ctx context.Context, _ []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		limit, err := a.askInt("Activations limit", 1)
		if err != nil {
			return err
		}
		days, err := a.askInt("Expires in days", 30)
		if err != nil {
			return err
		}
		desc, err := getSimpleText(a.reader, "Description", a.out)
		if err != nil {
			return err
		}
		act, err := a.activations.Create(ctx, limit, days, desc)
		if err != nil {
			return err
		}
		a.printf("Activation code: %s\n", act.ActivationCode)
		return nil
	})
}

func (a *App) askInt(prompt string, def int) (int, error) {
	answer, err := getSimpleText(a.reader, fmt.Sprintf("%s [%d]", prompt, def), a.out)
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return def, nil
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", errUsage, prompt)
	}
	return n, nil
}

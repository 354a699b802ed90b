package cli

import (
	"context"
	"strconv"
	"strings"
)

func (a *App) listTags(ctx context.Context, _ []string) error {
	tags, err := a.client.ListTags(ctx)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		a.printf("No tags\n")
		return nil
	}
	a.printf("%s\n", renderTags(tags))
	return nil
}

func (a *App) addTag(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		var err error
		if name, err = a.ask("Enter tag name"); err != nil {
			return err
		}
	}

	id, err := a.client.CreateTag(ctx, name)
	if err != nil {
		return err
	}
	a.printf("Tag created with ID %d\n", id)
	return nil
}

func (a *App) deleteTag(ctx context.Context, args []string) error {
	id, err := idArg(args)
	if err != nil {
		return err
	}
	if err := a.client.DeleteTag(ctx, id); err != nil {
		return err
	}
	a.printf("Tag %d deleted\n", id)
	return nil
}

// idArg parses the first argument as a positive id.
func idArg(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, errUsage
	}
	return id, nil
}

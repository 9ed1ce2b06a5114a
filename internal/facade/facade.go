// Package facade exposes the system as a line-oriented command surface, the
// shape consumed by scripts and the interactive loop in main. Each line is
// one operation; results come back as plain strings and failures as the
// domain's sentinel errors.
package facade

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sidereusnuntius/convivio/internal/service"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("wrong arguments")
)

type Facade struct {
	service service.Service
}

func New(service service.Service) Facade {
	return Facade{service: service}
}

// Execute parses one command line and dispatches it. Arguments are separated
// by spaces; double quotes group an argument containing spaces.
func (f Facade) Execute(ctx context.Context, line string) (string, error) {
	args, err := splitArgs(line)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}

	cmd, args := args[0], args[1:]
	spec, ok := commands[cmd]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
	if len(args) != spec.arity {
		return "", fmt.Errorf("%w: usage: %s %s", ErrBadArguments, cmd, spec.usage)
	}
	return spec.run(f.service, ctx, args)
}

type command struct {
	arity int
	usage string
	run   func(s service.Service, ctx context.Context, args []string) (string, error)
}

var commands = map[string]command{
	"createUser": {3, "login password name", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return "", s.CreateUser(ctx, a[0], a[1], a[2])
	}},
	"getUserAttribute": {2, "login attribute", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return s.UserAttribute(ctx, a[0], a[1])
	}},
	"openSession": {2, "login password", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return s.OpenSession(ctx, a[0], a[1])
	}},
	"editProfile": {3, "session attribute value", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return "", s.EditProfile(ctx, a[0], a[1], a[2])
	}},
	"addFriend": {2, "session login", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return "", s.AddFriend(ctx, a[0], a[1])
	}},
	"isFriend": {2, "login other", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return formatBool(s.IsFriend(ctx, a[0], a[1]))
	}},
	"getFriends": {1, "login", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return s.Friends(ctx, a[0])
	}},
	"sendNote": {3, "session receiver body", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return "", s.SendNote(ctx, a[0], a[1], a[2])
	}},
	"readNote": {1, "session", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return s.ReadNote(ctx, a[0])
	}},
	"createCommunity": {3, "session name description", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return "", s.CreateCommunity(ctx, a[0], a[1], a[2])
	}},
	"getCommunityDescription": {1, "name", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return s.CommunityDescription(ctx, a[0])
	}},
	"getCommunityOwner": {1, "name", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return s.CommunityOwner(ctx, a[0])
	}},
	"getCommunityMembers": {1, "name", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return s.CommunityMembers(ctx, a[0])
	}},
	"getCommunities": {1, "login", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return s.Communities(ctx, a[0])
	}},
	"joinCommunity": {2, "session name", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return "", s.JoinCommunity(ctx, a[0], a[1])
	}},
	"sendPost": {3, "session community body", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return "", s.SendPost(ctx, a[0], a[1], a[2])
	}},
	"readPost": {1, "session", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return s.ReadPost(ctx, a[0])
	}},
	"isFan": {2, "login idol", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return formatBool(s.IsFan(ctx, a[0], a[1]))
	}},
	"addIdol": {2, "session idol", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return "", s.AddIdol(ctx, a[0], a[1])
	}},
	"getFans": {1, "login", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return s.Fans(ctx, a[0])
	}},
	"isCrush": {2, "session login", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return formatBool(s.IsCrush(ctx, a[0], a[1]))
	}},
	"addCrush": {2, "session login", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return "", s.AddCrush(ctx, a[0], a[1])
	}},
	"getCrushes": {1, "session", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return s.Crushes(ctx, a[0])
	}},
	"addEnemy": {2, "session login", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return "", s.AddEnemy(ctx, a[0], a[1])
	}},
	"removeUser": {1, "session", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return "", s.RemoveUser(ctx, a[0])
	}},
	"reset": {0, "", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return "", s.Reset(ctx)
	}},
	"save": {0, "", func(s service.Service, ctx context.Context, a []string) (string, error) {
		return "", s.Save(ctx)
	}},
}

func formatBool(b bool, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(b), nil
}

// splitArgs breaks a command line into fields. Double quotes group a field
// that contains spaces; quotes do not nest and there are no escapes.
func splitArgs(line string) ([]string, error) {
	var args []string
	var field strings.Builder
	inQuotes := false
	inField := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			inField = true
		case r == ' ' && !inQuotes:
			if inField {
				args = append(args, field.String())
				field.Reset()
				inField = false
			}
		default:
			field.WriteRune(r)
			inField = true
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("%w: unterminated quote", ErrBadArguments)
	}
	if inField {
		args = append(args, field.String())
	}
	return args, nil
}

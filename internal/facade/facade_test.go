package facade

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/convivio/internal/config"
	"github.com/sidereusnuntius/convivio/internal/domain"
	"github.com/sidereusnuntius/convivio/internal/mocks"
	"github.com/sidereusnuntius/convivio/internal/service/core"
	"github.com/sidereusnuntius/convivio/internal/storage"
	"go.uber.org/mock/gomock"
)

func TestSplitArgs(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		expected []string
		err      error
	}{
		{name: "empty", line: "", expected: nil},
		{name: "blank", line: "   ", expected: nil},
		{name: "plain fields", line: "createUser ana 123", expected: []string{"createUser", "ana", "123"}},
		{name: "quoted field", line: `editProfile s1 name "Ana Silva"`, expected: []string{"editProfile", "s1", "name", "Ana Silva"}},
		{name: "empty quoted field", line: `createUser ana "" Ana`, expected: []string{"createUser", "ana", "", "Ana"}},
		{name: "unterminated quote", line: `sendNote s1 bia "oi`, err: ErrBadArguments},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := splitArgs(c.line)
			if !errors.Is(err, c.err) {
				t.Fatalf("expected error %v, got %v", c.err, err)
			}
			if diff := cmp.Diff(c.expected, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

// newTestFacade wires the facade over the real service with a mocked store.
func newTestFacade(t *testing.T) Facade {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(storage.Snapshot{}, storage.ErrNotExist)
	return New(core.New(context.Background(), config.Configuration{}, store))
}

func TestExecute(t *testing.T) {
	f := newTestFacade(t)
	ctx := context.Background()

	run := func(line string) string {
		t.Helper()
		out, err := f.Execute(ctx, line)
		if err != nil {
			t.Fatalf("%q failed: %s", line, err)
		}
		return out
	}

	run(`createUser ana 123 "Ana Silva"`)
	run("createUser bia 456 Bia")

	if got := run("getUserAttribute ana name"); got != "Ana Silva" {
		t.Errorf("expected %q, got %q", "Ana Silva", got)
	}

	sAna := run("openSession ana 123")
	sBia := run("openSession bia 456")

	run("addFriend " + sAna + " bia")
	run("addFriend " + sBia + " ana")
	if got := run("isFriend ana bia"); got != "true" {
		t.Errorf("expected %q, got %q", "true", got)
	}
	if got := run("getFriends ana"); got != "{bia}" {
		t.Errorf("expected %q, got %q", "{bia}", got)
	}

	run(`sendNote ` + sAna + ` bia "see you tomorrow"`)
	if got := run("readNote " + sBia); got != "see you tomorrow" {
		t.Errorf("expected %q, got %q", "see you tomorrow", got)
	}

	run(`createCommunity ` + sAna + ` readers "we read"`)
	run("joinCommunity " + sBia + " readers")
	if got := run("getCommunityMembers readers"); got != "{ana,bia}" {
		t.Errorf("expected %q, got %q", "{ana,bia}", got)
	}
	run(`sendPost ` + sAna + ` readers "hello all"`)
	if got := run("readPost " + sBia); got != "hello all" {
		t.Errorf("expected %q, got %q", "hello all", got)
	}

	run("addIdol " + sBia + " ana")
	if got := run("isFan bia ana"); got != "true" {
		t.Errorf("expected %q, got %q", "true", got)
	}
	if got := run("getFans ana"); got != "{bia}" {
		t.Errorf("expected %q, got %q", "{bia}", got)
	}
}

func TestExecuteErrors(t *testing.T) {
	f := newTestFacade(t)
	ctx := context.Background()

	cases := []struct {
		name string
		line string
		err  error
	}{
		{name: "unknown command", line: "fly ana", err: ErrUnknownCommand},
		{name: "too few arguments", line: "createUser ana", err: ErrBadArguments},
		{name: "too many arguments", line: "getFriends ana bia", err: ErrBadArguments},
		{name: "domain error surfaces", line: "getFriends nobody", err: domain.ErrUserNotFound},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := f.Execute(ctx, c.line); !errors.Is(err, c.err) {
				t.Errorf("expected error %v, got %v", c.err, err)
			}
		})
	}

	// A blank line is a no-op, not an error.
	out, err := f.Execute(ctx, "   ")
	if err != nil || out != "" {
		t.Errorf("expected a silent no-op, got %q, %v", out, err)
	}
}

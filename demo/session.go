package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/amp-labs/multiview/cli"
	"github.com/amp-labs/multiview/logger"
	"github.com/amp-labs/multiview/multiview"
	"github.com/amp-labs/multiview/sortable"
	"github.com/manifoldco/promptui"
)

// Action is one step of an interactive session.
type Action string

const (
	ActionAdd     Action = "Add"
	ActionRemove  Action = "Remove"
	ActionShow    Action = "Show"
	ActionShowAll Action = "Show all"
	ActionClear   Action = "Clear"
	ActionQuit    Action = "Quit"
)

var actions = []Action{ //nolint:gochecknoglobals
	ActionAdd, ActionRemove, ActionShow, ActionShowAll, ActionClear, ActionQuit,
}

// Session is an interactive integer container.
type Session struct {
	Container *multiview.Container[sortable.Int]
	Out       io.Writer
}

// NewSession starts a session with an empty container.
func NewSession(out io.Writer) *Session {
	return &Session{
		Container: multiview.New[sortable.Int](),
		Out:       out,
	}
}

// Do applies one action. value is used by Add and Remove, order by Show.
// A failed Remove is reported to Out and logged, and the session carries on.
func (s *Session) Do(ctx context.Context, action Action, value int, order multiview.Order) error {
	log := logger.Get(ctx)

	switch action {
	case ActionAdd:
		s.Container.Add(sortable.Int(value))
		log.Debug("added", "value", value, "size", s.Container.Size())
	case ActionRemove:
		if err := s.Container.Remove(sortable.Int(value)); err != nil {
			log.Warn("remove failed", "value", value, "error", err)
			_, werr := fmt.Fprintf(s.Out, "cannot remove: %v\n", err)

			return werr
		}

		log.Debug("removed", "value", value, "size", s.Container.Size())
	case ActionShow:
		return s.show(order)
	case ActionShowAll:
		for _, o := range multiview.AllOrders() {
			if err := s.show(o); err != nil {
				return err
			}
		}
	case ActionClear:
		log.Debug("cleared", "size", s.Container.Size())
		s.Container.Clear()
	case ActionQuit:
		return nil
	default:
		return fmt.Errorf("unknown action %q", action) //nolint:err113
	}

	return nil
}

func (s *Session) show(order multiview.Order) error {
	_, err := fmt.Fprintf(s.Out, "%-10s [%s]\n", order, multiview.Join(s.Container.View(order), ", "))

	return err
}

// Interactive runs the session loop with prompts until the user quits or
// interrupts.
func Interactive(ctx context.Context, prompter *cli.Prompter, out io.Writer) error {
	session := NewSession(out)

	if _, err := io.WriteString(out, cli.BannerAutoWidth("multiview session", cli.AlignCenter)); err != nil {
		return err
	}

	choices := make([]string, len(actions))
	for i, a := range actions {
		choices[i] = string(a)
	}

	orderChoices := make([]string, 0, len(multiview.AllOrders()))
	for _, o := range multiview.AllOrders() {
		orderChoices = append(orderChoices, o.String())
	}

	for {
		idx, _, err := prompter.Select(fmt.Sprintf("Container (%d elements)", session.Container.Size()), choices...)
		if err != nil {
			return ignoreInterrupt(err)
		}

		action := actions[idx]
		if action == ActionQuit {
			return nil
		}

		if err := step(ctx, prompter, session, action, orderChoices); err != nil {
			return ignoreInterrupt(err)
		}
	}
}

// step prompts for whatever action needs and applies it.
func step(ctx context.Context, prompter *cli.Prompter, session *Session, action Action, orderChoices []string) error {
	switch action {
	case ActionAdd:
		values, err := prompter.PromptInts("Values")
		if err != nil {
			return err
		}

		for _, v := range values {
			if err := session.Do(ctx, ActionAdd, v, 0); err != nil {
				return err
			}
		}

		return nil
	case ActionRemove:
		value, err := prompter.PromptInt("Value")
		if err != nil {
			return err
		}

		return session.Do(ctx, ActionRemove, value, 0)
	case ActionShow:
		orderIdx, _, err := prompter.Select("Order", orderChoices...)
		if err != nil {
			return err
		}

		return session.Do(ctx, ActionShow, 0, multiview.AllOrders()[orderIdx])
	case ActionShowAll:
		if err := session.Do(ctx, ActionShowAll, 0, 0); err != nil {
			return err
		}

		_, err := io.WriteString(session.Out, cli.DividerAutoWidth())

		return err
	case ActionClear:
		if session.Container.Size() == 0 {
			return nil
		}

		ok, err := prompter.PromptConfirm(fmt.Sprintf("Discard %d elements", session.Container.Size()))
		if err != nil || !ok {
			return err
		}

		return session.Do(ctx, ActionClear, 0, 0)
	default:
		return session.Do(ctx, action, 0, 0)
	}
}

func ignoreInterrupt(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return nil
	}

	return err
}

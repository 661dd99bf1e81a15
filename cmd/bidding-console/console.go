package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	appsession "bidding-coach/internal/app/session"
	"bidding-coach/internal/config"
	"bidding-coach/internal/game"
	"bidding-coach/internal/game/viewmodel"
)

var errQuit = errors.New("quit")

type console struct {
	ctx context.Context
	in  *bufio.Scanner
	out io.Writer
	svc *appsession.Service
}

func newConsole(ctx context.Context, in io.Reader, out io.Writer, svc *appsession.Service) *console {
	return &console{ctx: ctx, in: bufio.NewScanner(in), out: out, svc: svc}
}

// Run sets up or resumes a session and then reads calls until the auction
// ends, the input runs out or the user quits.
func (c *console) Run(cfg config.ConsoleConfig) error {
	sess, err := c.open(cfg)
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	c.printf("Session %s (set SESSION_ID to resume)\n", sess.SessionID)
	c.printHand(sess)
	err = c.loop(sess.SessionID)
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *console) open(cfg config.ConsoleConfig) (*appsession.SessionResponse, error) {
	if id := strings.TrimSpace(cfg.SessionID); id != "" {
		sess, err := c.svc.Get(c.ctx, id)
		if err == nil {
			c.printf("Resumed session with %d calls.\n", len(sess.Auction.Calls))
			return sess, nil
		}
		if !errors.Is(err, appsession.ErrSessionNotFound) {
			return nil, err
		}
		c.printf("Session %s not found; starting a new one.\n", id)
	}

	seat, err := c.ask("Your seat (N/E/S/W)", cfg.Seat, func(v string) error {
		_, err := game.ParseSeat(v)
		return err
	})
	if err != nil {
		return nil, err
	}
	dealer, err := c.ask("Dealer (N/E/S/W)", cfg.Dealer, func(v string) error {
		_, err := game.ParseSeat(v)
		return err
	})
	if err != nil {
		return nil, err
	}
	hand, err := c.ask("Hand (e.g. AKJ2.KQ3.Q2.432)", cfg.Hand, func(v string) error {
		_, err := game.ParseHand(v)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.svc.Create(c.ctx, appsession.CreateRequest{Seat: seat, Dealer: dealer, Hand: hand})
}

// ask returns preset when it validates, otherwise prompts until the answer
// validates.
func (c *console) ask(label, preset string, validate func(string) error) (string, error) {
	if preset != "" {
		err := validate(preset)
		if err == nil {
			return preset, nil
		}
		c.printf("%s: %v\n", label, err)
	}
	for {
		c.printf("%s: ", label)
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if isQuit(line) {
			return "", errQuit
		}
		if err := validate(line); err != nil {
			c.printf("  %v\n", err)
			continue
		}
		return line, nil
	}
}

func (c *console) loop(id string) error {
	var suggestions []viewmodel.SuggestionView
	for {
		sess, err := c.svc.Get(c.ctx, id)
		if err != nil {
			return err
		}
		if sess.Auction.State == string(game.AuctionFinished) {
			c.printAuction(sess.Auction)
			return nil
		}

		suggestions = nil
		if sess.YourTurn {
			advice, err := c.svc.Advise(c.ctx, id)
			if err != nil {
				return err
			}
			suggestions = advice.Suggestions
			c.printSuggestions(suggestions)
		}

		c.printf("[%s] call> ", sess.Auction.CurrentSeat)
		line, err := c.readLine()
		if err != nil {
			return err
		}
		if err := c.handle(id, line, suggestions); err != nil {
			return err
		}
	}
}

func (c *console) handle(id, line string, suggestions []viewmodel.SuggestionView) error {
	fields := strings.Fields(line)
	switch {
	case isQuit(line):
		return errQuit
	case len(fields) == 0:
		if len(suggestions) == 0 {
			return nil
		}
		return c.call(id, suggestions[0].Call)
	case strings.EqualFold(fields[0], "undo"):
		if _, err := c.svc.Undo(c.ctx, id); err != nil {
			return err
		}
		c.printf("  last call removed\n")
		return nil
	case strings.EqualFold(fields[0], "explain"):
		if len(fields) < 2 {
			c.printf("  usage: explain <call>\n")
			return nil
		}
		return c.explain(id, fields[1])
	case strings.EqualFold(fields[0], "history"):
		return c.history(id)
	case strings.EqualFold(fields[0], "help"):
		c.printf("  enter a call (P, X, XX, 1C..7NT), a suggestion number, Enter for #1,\n  undo, explain <call>, history or quit\n")
		return nil
	}
	if n, err := strconv.Atoi(fields[0]); err == nil && len(suggestions) > 0 {
		if n < 1 || n > len(suggestions) {
			c.printf("  pick 1-%d\n", len(suggestions))
			return nil
		}
		return c.call(id, suggestions[n-1].Call)
	}
	return c.call(id, fields[0])
}

func (c *console) call(id, raw string) error {
	sess, err := c.svc.Call(c.ctx, id, raw)
	switch {
	case errors.Is(err, game.ErrIllegalCall), errors.Is(err, game.ErrInvalidCall):
		c.printf("  rejected: %v\n", err)
		return nil
	case err != nil:
		return err
	}
	last := sess.Auction.Calls[len(sess.Auction.Calls)-1]
	c.printf("  %s: %s\n", last.Seat, last.Label)
	return nil
}

func (c *console) explain(id, raw string) error {
	resp, err := c.svc.Explain(c.ctx, id, raw, "")
	if errors.Is(err, game.ErrInvalidCall) {
		c.printf("  %v\n", err)
		return nil
	}
	if err != nil {
		return err
	}
	c.printExplanation(resp.Explanation)
	return nil
}

func (c *console) history(id string) error {
	resp, err := c.svc.History(c.ctx, id)
	if err != nil {
		return err
	}
	if len(resp.Items) == 0 {
		c.printf("  no calls yet\n")
	}
	for _, e := range resp.Items {
		c.printExplanation(e)
	}
	return nil
}

func (c *console) printHand(sess *appsession.SessionResponse) {
	h := sess.Hand
	shape := fmt.Sprintf("%d-%d-%d-%d", h.Shape[0], h.Shape[1], h.Shape[2], h.Shape[3])
	balanced := "unbalanced"
	if h.Balanced {
		balanced = "balanced"
	}
	c.printf("Seat %s holding %s: %d HCP, shape %s, %s\n", sess.Seat, h.Dotted, h.Points, shape, balanced)
}

func (c *console) printSuggestions(in []viewmodel.SuggestionView) {
	c.printf("Suggestions:\n")
	for i, s := range in {
		c.printf("  %d) %-5s %-6s %s\n", i+1, s.Label, s.Range, s.Reason)
	}
}

func (c *console) printExplanation(e viewmodel.ExplanationView) {
	conv := ""
	if e.Convention != "" {
		conv = " [" + e.Convention + "]"
	}
	c.printf("  %s by %s%s: %s %s, %s\n", e.Call, e.Seat, conv, e.Meaning, e.PointRange, e.ImpliedShape)
}

func (c *console) printAuction(a viewmodel.AuctionView) {
	c.printf("Auction:")
	for _, cv := range a.Calls {
		c.printf(" %s:%s", cv.Seat, cv.Label)
	}
	c.printf("\n")
	switch {
	case a.Result == nil:
	case a.Result.PassedOut:
		c.printf("Passed out.\n")
	default:
		r := a.Result
		suffix := ""
		if r.Redoubled {
			suffix = " redoubled"
		} else if r.Doubled {
			suffix = " doubled"
		}
		c.printf("Final contract: %s%s by %s, %s leads\n", r.Contract, suffix, r.Declarer, r.OpeningLead)
	}
}

func (c *console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func isQuit(line string) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	return l == "quit" || l == "q" || l == "exit"
}

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	appsession "bidding-coach/internal/app/session"
	"bidding-coach/internal/config"
	"bidding-coach/internal/store"
)

func runConsole(t *testing.T, svc *appsession.Service, cfg config.ConsoleConfig, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	if err := newConsole(context.Background(), in, &out, svc).Run(cfg); err != nil {
		t.Fatalf("Run: %v\noutput:\n%s", err, out.String())
	}
	return out.String()
}

func TestConsoleFullAuction(t *testing.T) {
	svc := appsession.NewService(store.NewMemory())
	out := runConsole(t, svc, config.ConsoleConfig{Dealer: "N"},
		"Z",
		"S",
		"AK2.KQ3.QJ4.J432",
		"P",
		"P",
		"explain 2C",
		"",
		"1C",
		"P",
		"2C",
		"undo",
		"P",
		"P",
	)
	for _, want := range []string{
		"16 HCP, shape 3-3-3-4, balanced",
		"Suggestions:",
		"1) 1NT",
		"S: 1NT",
		"rejected:",
		"last call removed",
		"Final contract: 1NT by S, W leads",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleResumesSession(t *testing.T) {
	st := store.NewMemory()
	created, err := appsession.NewService(st).Create(context.Background(), appsession.CreateRequest{Seat: "E", Dealer: "N", Hand: "AK2.KQ3.QJ4.J432"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	out := runConsole(t, appsession.NewService(st), config.ConsoleConfig{SessionID: created.SessionID}, "1H", "quit")
	if !strings.Contains(out, "Resumed session with 0 calls.") || !strings.Contains(out, "N: 1♥") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestConsoleStopsOnEOF(t *testing.T) {
	out := runConsole(t, appsession.NewService(store.NewMemory()), config.ConsoleConfig{})
	if !strings.Contains(out, "Your seat") {
		t.Fatalf("expected seat prompt, got:\n%s", out)
	}
}

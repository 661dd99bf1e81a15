// Package session drives interactive bidding sessions: one player's hand and
// seat plus the auction ledger the player fills in call by call.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"bidding-coach/internal/advisor"
	"bidding-coach/internal/game"
	"bidding-coach/internal/game/viewmodel"
	"bidding-coach/internal/ledger"
	"bidding-coach/internal/store"
	"bidding-coach/internal/stream"

	"github.com/rs/zerolog/log"
)

type Session struct {
	ID        string
	Seat      game.Seat
	Hand      game.Hand
	Ledger    *ledger.Ledger
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Session) snapshot() store.Snapshot {
	cards := s.Hand.Cards()
	hand := make([]string, 0, len(cards))
	for _, c := range cards {
		hand = append(hand, c.String())
	}
	entries := s.Ledger.Calls()
	calls := make([]string, 0, len(entries))
	for _, c := range entries {
		calls = append(calls, c.String())
	}
	return store.Snapshot{
		ID:        s.ID,
		Seat:      s.Seat.String(),
		Dealer:    s.Ledger.Dealer().String(),
		Hand:      hand,
		Calls:     calls,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

const eventBufferSize = 200

// Service caches live sessions and writes every change through to the store.
// A session missing from the cache is rebuilt from its stored snapshot.
// Changes made through a Service are also published to per-session event
// buffers.
type Service struct {
	store store.SessionStore
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
	events   map[string]*stream.EventBuffer
}

func NewService(st store.SessionStore) *Service {
	return &Service{
		store:    st,
		now:      func() time.Time { return time.Now().UTC() },
		sessions: map[string]*Session{},
		events:   map[string]*stream.EventBuffer{},
	}
}

func (s *Service) Create(ctx context.Context, in CreateRequest) (*SessionResponse, error) {
	seat, err := game.ParseSeat(in.Seat)
	if err != nil {
		return nil, err
	}
	dealer, err := game.ParseSeat(in.Dealer)
	if err != nil {
		return nil, err
	}
	hand, err := game.ParseHand(in.Hand)
	if err != nil {
		return nil, err
	}
	now := s.now()
	sess := &Session{
		ID:        store.NewID(),
		Seat:      seat,
		Hand:      hand,
		Ledger:    ledger.New(dealer),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.SaveSession(ctx, sess.snapshot()); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.sessions[sess.ID] = sess
	log.Info().
		Str("session_id", sess.ID).
		Str("seat", seat.String()).
		Str("dealer", dealer.String()).
		Int("points", hand.Points()).
		Msg("session created")
	resp := buildSession(sess)
	s.publish(sess.ID, "session_created", resp)
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return buildSession(sess), nil
}

// Call records raw as the next call of the auction, whoever's turn it is.
func (s *Service) Call(ctx context.Context, id, raw string) (*SessionResponse, error) {
	call, err := game.ParseCall(raw)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	seat := sess.Ledger.CurrentSeat()
	if err := sess.Ledger.Append(call); err != nil {
		log.Warn().
			Err(err).
			Str("session_id", id).
			Str("seat", seat.String()).
			Str("call", call.String()).
			Msg("call rejected")
		return nil, err
	}
	if err := s.persist(ctx, sess); err != nil {
		sess.Ledger.UndoLast()
		return nil, err
	}
	log.Info().
		Str("session_id", id).
		Str("seat", seat.String()).
		Str("call", call.String()).
		Str("state", string(sess.Ledger.State())).
		Msg("call recorded")
	s.publish(id, "call_recorded", CallEvent{
		Seat:    seat.String(),
		Call:    call.String(),
		Auction: viewmodel.BuildAuction(sess.Ledger),
	})
	return buildSession(sess), nil
}

func (s *Service) Undo(ctx context.Context, id string) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	last, hadCall := sess.Ledger.LastCall()
	if !sess.Ledger.UndoLast() {
		return buildSession(sess), nil
	}
	if err := s.persist(ctx, sess); err != nil {
		_ = sess.Ledger.Append(last)
		return nil, err
	}
	if hadCall {
		log.Info().
			Str("session_id", id).
			Str("seat", sess.Ledger.CurrentSeat().String()).
			Str("call", last.String()).
			Msg("call undone")
		s.publish(id, "call_undone", CallEvent{
			Seat:    sess.Ledger.CurrentSeat().String(),
			Call:    last.String(),
			Auction: viewmodel.BuildAuction(sess.Ledger),
		})
	}
	return buildSession(sess), nil
}

// Advise suggests calls for the session's hand. It is only available on the
// session seat's turn.
func (s *Service) Advise(ctx context.Context, id string) (*AdviceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Ledger.IsFinished() {
		return nil, ErrAuctionFinished
	}
	if sess.Ledger.CurrentSeat() != sess.Seat {
		return nil, ErrNotYourTurn
	}
	return &AdviceResponse{
		SessionID:   sess.ID,
		Seat:        sess.Seat.String(),
		Points:      sess.Hand.Points(),
		Suggestions: viewmodel.BuildSuggestions(advisor.Advise(sess.Hand, sess.Ledger)),
	}, nil
}

// Explain describes raw as if rawSeat made it now. An empty seat means the
// seat on turn.
func (s *Service) Explain(ctx context.Context, id, raw, rawSeat string) (*ExplainResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	seat := sess.Ledger.CurrentSeat()
	if strings.TrimSpace(rawSeat) != "" {
		if seat, err = game.ParseSeat(rawSeat); err != nil {
			return nil, err
		}
	}
	call, err := game.ParseCall(raw)
	if err != nil {
		return nil, err
	}
	e := advisor.ExplainCall(call, sess.Ledger, seat)
	return &ExplainResponse{SessionID: sess.ID, Explanation: viewmodel.BuildExplanation(call, seat, e)}, nil
}

// History explains every recorded call against the auction as it stood when
// the call was made.
func (s *Service) History(ctx context.Context, id string) (*HistoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	entries := sess.Ledger.Entries()
	items := make([]viewmodel.ExplanationView, 0, len(entries))
	for i, e := range entries {
		ex := advisor.ExplainCall(e.Call, sess.Ledger.Prefix(i), e.Seat)
		items = append(items, viewmodel.BuildExplanation(e.Call, e.Seat, ex))
	}
	return &HistoryResponse{SessionID: sess.ID, Items: items}, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, cached := s.sessions[id]
	delete(s.sessions, id)
	err := s.store.DeleteSession(ctx, id)
	if errors.Is(err, store.ErrNotFound) && !cached {
		return ErrSessionNotFound
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	s.publish(id, "session_deleted", map[string]string{"session_id": id})
	if buf, ok := s.events[id]; ok {
		buf.Close()
		delete(s.events, id)
	}
	log.Info().Str("session_id", id).Msg("session deleted")
	return nil
}

// Events returns the event buffer of a live or stored session.
func (s *Service) Events(ctx context.Context, id string) (*stream.EventBuffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.load(ctx, id); err != nil {
		return nil, err
	}
	return s.buffer(id), nil
}

// buffer returns the session's event buffer, creating it on first use.
// Callers hold s.mu.
func (s *Service) buffer(id string) *stream.EventBuffer {
	buf, ok := s.events[id]
	if !ok {
		buf = stream.NewEventBuffer(eventBufferSize)
		s.events[id] = buf
	}
	return buf
}

func (s *Service) publish(id, event string, data any) {
	s.buffer(id).Append(event, id, data)
}

func (s *Service) List(ctx context.Context, limit, offset int) (*ListResponse, error) {
	if limit <= 0 || offset < 0 {
		return nil, ErrInvalidRequest
	}
	snaps, err := s.store.ListSessions(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]SessionItem, 0, len(snaps))
	for _, snap := range snaps {
		items = append(items, SessionItem{
			SessionID: snap.ID,
			Seat:      snap.Seat,
			Dealer:    snap.Dealer,
			Calls:     len(snap.Calls),
			CreatedAt: snap.CreatedAt,
			UpdatedAt: snap.UpdatedAt,
		})
	}
	return &ListResponse{Items: items, Limit: limit, Offset: offset}, nil
}

// load returns the cached session or rebuilds it from the store. Callers hold
// s.mu.
func (s *Service) load(ctx context.Context, id string) (*Session, error) {
	if sess, ok := s.sessions[id]; ok {
		return sess, nil
	}
	if !store.ValidID(id) {
		return nil, ErrSessionNotFound
	}
	snap, err := s.store.GetSession(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	sess, err := restore(snap)
	if err != nil {
		return nil, fmt.Errorf("restore session %s: %w", id, err)
	}
	s.sessions[id] = sess
	log.Debug().Str("session_id", id).Int("calls", sess.Ledger.Len()).Msg("session resumed")
	return sess, nil
}

func (s *Service) persist(ctx context.Context, sess *Session) error {
	sess.UpdatedAt = s.now()
	if err := s.store.SaveSession(ctx, sess.snapshot()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func restore(snap *store.Snapshot) (*Session, error) {
	seat, err := game.ParseSeat(snap.Seat)
	if err != nil {
		return nil, err
	}
	dealer, err := game.ParseSeat(snap.Dealer)
	if err != nil {
		return nil, err
	}
	hand, err := game.ParseHand(strings.Join(snap.Hand, " "))
	if err != nil {
		return nil, err
	}
	calls, err := game.ParseCalls(strings.Join(snap.Calls, " "))
	if err != nil {
		return nil, err
	}
	l, err := ledger.Replay(dealer, calls)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        snap.ID,
		Seat:      seat,
		Hand:      hand,
		Ledger:    l,
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
	}, nil
}

func buildSession(sess *Session) *SessionResponse {
	auction := viewmodel.BuildAuction(sess.Ledger)
	return &SessionResponse{
		SessionID: sess.ID,
		Seat:      sess.Seat.String(),
		YourTurn:  !sess.Ledger.IsFinished() && sess.Ledger.CurrentSeat() == sess.Seat,
		Hand:      viewmodel.BuildHand(sess.Hand),
		Auction:   auction,
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.UpdatedAt,
	}
}

package httptransport

import (
	"net/http"
	"strconv"
	"time"

	"bidding-coach/internal/stream"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

var ssePingInterval = 15 * time.Second

// Events streams a session's changes as server-sent events. Buffered events
// after Last-Event-ID are replayed before live ones.
func (h *SessionHandlers) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "session_id")
		buf, err := h.sessionSvc.Events(r.Context(), sessionID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		flusher, ok := w.(http.Flusher)
		if !ok {
			WriteHTTPError(w, http.StatusInternalServerError, "stream_not_supported")
			return
		}

		metricEventStreamsTotal.Add(1)
		metricEventStreamsActive.Add(1)
		defer metricEventStreamsActive.Add(-1)

		stream.SetSSEHeaders(w)
		w.WriteHeader(http.StatusOK)
		log.Info().
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("session_id", sessionID).
			Msg("sse stream opened")

		// Subscribe before replaying so nothing appended in between is lost.
		ch := buf.Subscribe()
		defer buf.Unsubscribe(ch)
		var sent int64
		for _, ev := range buf.ReplayAfter(r.Header.Get("Last-Event-ID")) {
			if err := stream.WriteSSE(w, ev); err != nil {
				return
			}
			sent = eventSeq(ev)
			logSSEEvent(r, sessionID, "replay", ev)
		}
		flusher.Flush()

		ticker := time.NewTicker(ssePingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				log.Info().
					Str("request_id", chimw.GetReqID(r.Context())).
					Str("session_id", sessionID).
					Err(r.Context().Err()).
					Msg("sse stream closed")
				return
			case ev, ok := <-ch:
				if !ok {
					log.Info().
						Str("request_id", chimw.GetReqID(r.Context())).
						Str("session_id", sessionID).
						Msg("sse stream channel closed")
					return
				}
				if eventSeq(ev) <= sent {
					continue
				}
				if err := stream.WriteSSE(w, ev); err != nil {
					return
				}
				logSSEEvent(r, sessionID, "live", ev)
				flusher.Flush()
			case <-ticker.C:
				now := time.Now().UnixMilli()
				ping := stream.StreamEvent{
					Event:     "ping",
					SessionID: sessionID,
					ServerTS:  now,
					Data:      map[string]any{"ts": now},
				}
				if err := stream.WriteSSE(w, ping); err != nil {
					return
				}
				logSSEEvent(r, sessionID, "ping", ping)
				flusher.Flush()
			}
		}
	}
}

func eventSeq(ev stream.StreamEvent) int64 {
	n, _ := strconv.ParseInt(ev.EventID, 10, 64)
	return n
}

func logSSEEvent(r *http.Request, sessionID, source string, ev stream.StreamEvent) {
	evt := log.Info()
	if ev.Event == "ping" {
		evt = log.Debug()
	}
	evt.
		Str("request_id", chimw.GetReqID(r.Context())).
		Str("session_id", sessionID).
		Str("event", ev.Event).
		Str("event_id", ev.EventID).
		Str("source", source).
		Int64("server_ts", ev.ServerTS).
		Msg("sse event sent")
}

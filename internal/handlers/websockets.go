package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"battery_alert/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000

	envelopeReady = "ready"
	envelopeAlert = "alert"
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Live alert stream
// @Description  Upgrades to a websocket and pushes each new alert record as {"type":"alert","data":{...}}.
// @Description  Records are delivered in storage order; reconnect with after=<last seq> to resume without gaps.
// @Tags         alerts
// @Param        interval     query  string  false  "Poll interval, e.g. 500ms (max 10s)"
// @Param        interval_ms  query  int     false  "Poll interval in milliseconds"
// @Param        after        query  int     false  "Resume after this seq; defaults to the newest stored record"
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)
	ctx := c.Request.Context()

	cursor, err := h.streamCursor(c)
	if err != nil {
		h.respondServiceError(c, "ws_cursor_failed", err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	if err := h.writeEnvelope(conn, wsEnvelope{Type: envelopeReady, Data: gin.H{"after": cursor}}); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}
	if cursor, err = h.sendNewAlerts(ctx, conn, cursor); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if cursor, err = h.sendNewAlerts(ctx, conn, cursor); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return h.streamInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// streamCursor reads ?after=<seq>, falling back to the newest stored seq.
func (h *Handler) streamCursor(c *gin.Context) (int64, error) {
	raw := strings.TrimSpace(c.Query("after"))
	if raw == "" {
		return h.services.AlertLog.LastSeq(c.Request.Context())
	}
	after, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || after < 0 {
		return 0, fmt.Errorf("%w: after must be a non-negative integer", service.ErrInvalidFilter)
	}
	return after, nil
}

// sendNewAlerts writes every record stored after the cursor and returns the advanced cursor.
func (h *Handler) sendNewAlerts(ctx context.Context, conn *websocket.Conn, after int64) (int64, error) {
	for {
		items, err := h.services.AlertLog.Tail(ctx, after, service.MaxTailBatch)
		if err != nil {
			if h.log != nil {
				h.log.Errorw("ws_tail_alerts_failed", "err", err, "after", after)
			}
			return after, err
		}
		for _, rec := range items {
			if rec.Seq <= after {
				continue
			}
			if err := h.writeEnvelope(conn, wsEnvelope{Type: envelopeAlert, Data: rec}); err != nil {
				return after, err
			}
			after = rec.Seq
		}
		if len(items) < service.MaxTailBatch {
			return after, nil
		}
	}
}

func (h *Handler) writeEnvelope(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}

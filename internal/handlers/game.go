package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/session"
)

type GameHandler struct {
	logger  *slog.Logger
	session *session.Session
	ws      *config.WebSocket
	dec     *schema.Decoder
}

func NewGameHandler(
	logger *slog.Logger,
	s *session.Session,
	ws *config.WebSocket,
) *GameHandler {
	handler := &GameHandler{
		logger:  logger,
		session: s,
		ws:      ws,
		dec:     newQueryDecoder(),
	}
	return handler
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, g.logger, g.session.Snapshot())
}

func (g GameHandler) Difficulties(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, g.logger, NewDifficultyDTOs())
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	var dto NewGameDTO
	if err := g.dec.Decode(&dto, r.URL.Query()); err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	d, err := dto.ParseDifficulty()
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	snap, err := g.session.Reset(d)
	if err != nil {
		g.fail(w, "unable to generate a new game", err)
		return
	}

	sendJSONOrLog(w, g.logger, snap)
}

func (g GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	g.move(w, r, g.session.Reveal)
}

func (g GameHandler) Flag(w http.ResponseWriter, r *http.Request) {
	g.move(w, r, g.session.Flag)
}

func (g GameHandler) move(
	w http.ResponseWriter,
	r *http.Request,
	apply func(col, row int) (*session.Snapshot, error),
) {
	var pos PositionDTO
	if err := g.dec.Decode(&pos, r.URL.Query()); err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	snap, err := apply(pos.Col, pos.Row)
	if err != nil {
		g.fail(w, "unable to apply move", err)
		return
	}

	sendJSONOrLog(w, g.logger, snap)
}

// statusFor maps an engine error onto the HTTP status reported for it.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrOutOfBounds),
		errors.Is(err, mines.ErrUnknownDifficulty):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (g GameHandler) fail(w http.ResponseWriter, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		g.logger.Error(msg, slog.Any("error", err))
	}
	sendErrorOrLog(w, g.logger, status, err)
}

package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/services/card"
	"github.com/KirkDiggler/sylk/internal/services/ladder"
	"github.com/KirkDiggler/sylk/internal/services/messaging"
	"github.com/KirkDiggler/sylk/internal/services/roster"
	"github.com/KirkDiggler/sylk/internal/services/roulette"
	"github.com/KirkDiggler/sylk/internal/services/seat"
	"github.com/julienschmidt/httprouter"
)

const maxBodyBytes = 1 << 16

type errorBody struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type membersBody struct {
	Members []models.Member `json:"members"`
	Warning string          `json:"warning,omitempty"`
}

type addMemberRequest struct {
	Name string `json:"name"`
}

type rewardRequest struct {
	Reward string `json:"reward"`
}

type teamsRequest struct {
	Teams int `json:"teams"`
}

type teamsBody struct {
	Teams int `json:"teams"`
}

type cardsBody struct {
	Cards     []models.Card `json:"cards"`
	TeamCount int           `json:"team_count"`
	Revealed  bool          `json:"all_revealed"`
}

type revealBody struct {
	MemberID string `json:"member_id"`
	Team     int    `json:"team"`
}

type seatsBody struct {
	Settings seat.Settings `json:"settings"`
	Layout   *seat.Layout  `json:"layout"`
}

type rouletteBody struct {
	*roulette.Status
	Rulebook string `json:"rulebook"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	securityHeaders(w)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(v)
}

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, roster.ErrMemberNotFound),
		errors.Is(err, card.ErrCardNotFound):
		return http.StatusNotFound
	case errors.Is(err, roster.ErrDuplicateName),
		errors.Is(err, ladder.ErrNotStarted),
		errors.Is(err, card.ErrCardsHidden),
		errors.Is(err, roulette.ErrDrawInProgress):
		return http.StatusConflict
	case errors.Is(err, roster.ErrEmptyName),
		errors.Is(err, roster.ErrRosterFull),
		errors.Is(err, ladder.ErrInsufficientMembers),
		errors.Is(err, ladder.ErrInvalidColumn),
		errors.Is(err, card.ErrInsufficientMembers),
		errors.Is(err, seat.ErrInsufficientMembers),
		errors.Is(err, roulette.ErrInsufficientMembers),
		errors.Is(err, roulette.ErrSpinNeedsThree),
		errors.Is(err, roulette.ErrDirectPickUnavailable),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("malformed request")

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", "path", r.URL.Path, "err", err)
	}

	body := errorBody{Title: "Error", Message: err.Error()}
	msg, msgErr := s.cfg.MessagingService.GetErrorMessage(r.Context(), &messaging.GetErrorMessageInput{Err: err})
	if msgErr == nil {
		body = errorBody{Title: msg.Title, Message: msg.Message}
	}

	writeJSON(w, status, body)
}

func intParam(ps httprouter.Params, name string) (int, error) {
	v, err := strconv.Atoi(ps.ByName(name))
	if err != nil {
		return 0, errBadRequest
	}
	return v, nil
}

// Members

func (s *Server) listMembers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := s.cfg.RosterService.ListMembers(r.Context(), &roster.ListMembersInput{RosterID: s.rosterID})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, membersBody{Members: out.Members})
}

func (s *Server) addMember(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req addMemberRequest
	if err := readJSON(w, r, &req); err != nil {
		s.writeError(w, r, errBadRequest)
		return
	}

	out, err := s.cfg.RosterService.AddMember(r.Context(), &roster.AddMemberInput{
		RosterID: s.rosterID,
		Name:     req.Name,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body := membersBody{Members: out.Members}
	warning, err := s.cfg.MessagingService.GetNameWarningMessage(r.Context(), &messaging.GetNameWarningMessageInput{Warning: out.Warning})
	if err == nil {
		body.Warning = warning.Message
	}

	s.session.reload(out.Members)
	writeJSON(w, http.StatusCreated, body)
}

func (s *Server) removeMember(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	out, err := s.cfg.RosterService.RemoveMember(r.Context(), &roster.RemoveMemberInput{
		RosterID: s.rosterID,
		MemberID: ps.ByName("id"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.session.reload(out.Members)
	writeJSON(w, http.StatusOK, membersBody{Members: out.Members})
}

func (s *Server) resetMembers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, err := s.cfg.RosterService.ResetMembers(r.Context(), &roster.ResetMembersInput{RosterID: s.rosterID}); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.session.reload(nil)
	writeJSON(w, http.StatusOK, membersBody{Members: []models.Member{}})
}

// Ladder

func (s *Server) ladderStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.session.mu.Lock()
	st := s.session.ladder.Status()
	s.session.mu.Unlock()

	writeJSON(w, http.StatusOK, st)
}

func (s *Server) setLadderReward(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	column, err := intParam(ps, "column")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req rewardRequest
	if err := readJSON(w, r, &req); err != nil {
		s.writeError(w, r, errBadRequest)
		return
	}

	s.session.mu.Lock()
	err = s.session.ladder.SetReward(column, req.Reward)
	st := s.session.ladder.Status()
	s.session.mu.Unlock()

	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) startLadder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.session.mu.Lock()
	err := s.session.ladder.Start()
	st := s.session.ladder.Status()
	s.session.mu.Unlock()

	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) traceLadder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	column, err := intParam(ps, "column")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.session.mu.Lock()
	out, err := s.session.ladder.Trace(column)
	s.session.mu.Unlock()

	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) ladderResults(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.session.mu.Lock()
	results, err := s.session.ladder.Results()
	s.session.mu.Unlock()

	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) resetLadder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.session.mu.Lock()
	s.session.ladder.Reset()
	st := s.session.ladder.Status()
	s.session.mu.Unlock()

	writeJSON(w, http.StatusOK, st)
}

// Cards

func (s *Server) cardsLocked() cardsBody {
	return cardsBody{
		Cards:     s.session.deck.Cards(),
		TeamCount: s.session.deck.TeamCount(),
		Revealed:  s.session.deck.AllRevealed(),
	}
}

func (s *Server) cardStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.session.mu.Lock()
	body := s.cardsLocked()
	s.session.mu.Unlock()

	writeJSON(w, http.StatusOK, body)
}

func (s *Server) revealCard(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	s.session.mu.Lock()
	team, err := s.session.deck.RevealOne(id)
	s.session.mu.Unlock()

	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, revealBody{MemberID: id, Team: team})
}

func (s *Server) revealAllCards(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.session.mu.Lock()
	s.session.deck.RevealAll()
	body := s.cardsLocked()
	s.session.mu.Unlock()

	writeJSON(w, http.StatusOK, body)
}

func (s *Server) reshuffleCards(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.session.mu.Lock()
	s.session.deck.Reshuffle()
	body := s.cardsLocked()
	s.session.mu.Unlock()

	writeJSON(w, http.StatusOK, body)
}

func (s *Server) setCardTeams(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req teamsRequest
	if err := readJSON(w, r, &req); err != nil {
		s.writeError(w, r, errBadRequest)
		return
	}

	s.session.mu.Lock()
	teams := s.session.deck.SetTeamCount(req.Teams)
	s.session.mu.Unlock()

	writeJSON(w, http.StatusOK, teamsBody{Teams: teams})
}

func (s *Server) cardResults(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.session.mu.Lock()
	results := s.session.deck.Results()
	s.session.mu.Unlock()

	writeJSON(w, http.StatusOK, results)
}

// Seats

func (s *Server) seatStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.session.mu.Lock()
	body := seatsBody{Settings: s.session.planner.Settings(), Layout: s.session.planner.Layout()}
	s.session.mu.Unlock()

	writeJSON(w, http.StatusOK, body)
}

// configureSeats changes only the settings named in the body
func (s *Server) configureSeats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.session.mu.Lock()
	req := s.session.planner.Settings()
	s.session.mu.Unlock()

	if err := readJSON(w, r, &req); err != nil {
		s.writeError(w, r, errBadRequest)
		return
	}

	s.session.mu.Lock()
	settings := s.session.planner.Configure(req)
	body := seatsBody{Settings: settings, Layout: s.session.planner.Layout()}
	s.session.mu.Unlock()

	writeJSON(w, http.StatusOK, body)
}

func (s *Server) assignSeats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := s.cfg.RosterService.ListMembers(r.Context(), &roster.ListMembersInput{RosterID: s.rosterID})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.session.mu.Lock()
	layout, err := s.session.planner.Assign(out.Members)
	settings := s.session.planner.Settings()
	s.session.mu.Unlock()

	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, seatsBody{Settings: settings, Layout: layout})
}

func (s *Server) resetSeats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.session.mu.Lock()
	s.session.planner.Reset()
	settings := s.session.planner.Settings()
	s.session.mu.Unlock()

	writeJSON(w, http.StatusOK, seatsBody{Settings: settings})
}

// Roulette

func (s *Server) writeRoulette(w http.ResponseWriter, r *http.Request, st *roulette.Status) {
	body := rouletteBody{Status: st}
	msg, err := s.cfg.MessagingService.GetRouletteStatusMessage(r.Context(), &messaging.GetRouletteStatusMessageInput{Status: st})
	if err == nil {
		body.Rulebook = msg.Message
	}

	writeJSON(w, http.StatusOK, body)
}

func (s *Server) rouletteStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.writeRoulette(w, r, s.session.wheel.Status())
}

func (s *Server) spinRoulette(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	st, err := s.session.wheel.Spin()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeRoulette(w, r, st)
}

func (s *Server) directPickRoulette(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	st, err := s.session.wheel.DirectPick()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeRoulette(w, r, st)
}

func (s *Server) resetRoulette(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.session.wheel.Reset()
	s.writeRoulette(w, r, s.session.wheel.Status())
}

func (s *Server) setRouletteTeams(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req teamsRequest
	if err := readJSON(w, r, &req); err != nil {
		s.writeError(w, r, errBadRequest)
		return
	}

	if _, err := s.session.wheel.SetTeamCount(req.Teams); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeRoulette(w, r, s.session.wheel.Status())
}

func (s *Server) rouletteEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.hub.serve(w, r, s.session.wheel.Status())
}

// Package httpadapter is a thin session driver over the engine. It owns no
// rule logic: requests queue decisions into a scripted renderer, the engine
// resolves the turn, and the resulting document is persisted. All command
// handling is serialized per game with a mutex keyed by game id, since the
// engine itself enforces no exclusivity.
package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	scriptrender "holdout/internal/adapter/render/script"
	"holdout/internal/app/engine"
	"holdout/internal/app/ports"
	"holdout/internal/domain/game"
	"holdout/internal/domain/party"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
)

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

type Handler struct {
	Repo   ports.GameRepository
	Engine engine.Engine
	KPI    kpiSnapshotProvider

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (h *Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	games := s.Group("/api/games")
	games.POST("", h.createGame)
	games.GET("/:id", h.getGame)
	games.POST("/:id/players", h.joinGame)
	games.POST("/:id/ready", h.setReady)
	games.POST("/:id/characters", h.createCharacter)
	games.POST("/:id/start", h.startGame)
	games.POST("/:id/turn", h.playTurn)

	s.GET("/ops/kpi", h.kpi)
}

// gameLock returns the per-game mutex, creating it on first use.
func (h *Handler) gameLock(id string) *sync.Mutex {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.locks == nil {
		h.locks = map[string]*sync.Mutex{}
	}
	lock, ok := h.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		h.locks[id] = lock
	}
	return lock
}

type createGameRequest struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
}

type joinGameRequest struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
}

type readyRequest struct {
	PlayerID     string `json:"player_id"`
	Ready        bool   `json:"ready"`
	HostOverride bool   `json:"host_override"`
}

type createCharacterRequest struct {
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	PosTrait   string `json:"pos_trait"`
	NegTrait   string `json:"neg_trait"`
	BirthMonth int    `json:"birth_month"`
	BirthDay   int    `json:"birth_day"`
}

type turnRequest struct {
	Confirms      []bool   `json:"confirms"`
	Choices       []string `json:"choices"`
	CombatActions []string `json:"combat_actions"`
	Targets       []int    `json:"targets"`
}

type turnResponse struct {
	Result     engine.TurnResult `json:"result"`
	Transcript []string          `json:"transcript"`
	Game       game.Document     `json:"game"`
}

func (h *Handler) createGame(c context.Context, ctx *app.RequestContext) {
	var body createGameRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	id := uuid.NewString()
	lock := h.gameLock(id)
	lock.Lock()
	defer lock.Unlock()

	eng := h.Engine
	eng.Renderer = scriptrender.New()
	g := eng.NewGame(id)
	if body.PlayerID != "" {
		g.Session.AddPlayer(body.PlayerID, body.DisplayName)
	}
	g.Version = 1
	if err := h.Repo.SaveWithVersion(c, g, 0); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, g.Document())
}

func (h *Handler) getGame(c context.Context, ctx *app.RequestContext) {
	g, err := h.Repo.GetByID(c, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, g.Document())
}

func (h *Handler) joinGame(c context.Context, ctx *app.RequestContext) {
	var body joinGameRequest
	if err := decodeJSON(ctx, &body); err != nil || body.PlayerID == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "player_id is required")
		return
	}
	h.withGame(c, ctx, func(_ *scriptrender.Renderer, g *game.Game) (any, error) {
		g.Session.AddPlayer(body.PlayerID, body.DisplayName)
		return g.Document(), nil
	})
}

func (h *Handler) setReady(c context.Context, ctx *app.RequestContext) {
	var body readyRequest
	if err := decodeJSON(ctx, &body); err != nil || body.PlayerID == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "player_id is required")
		return
	}
	h.withGame(c, ctx, func(_ *scriptrender.Renderer, g *game.Game) (any, error) {
		if body.HostOverride {
			if !g.Session.HostOverride(body.PlayerID) {
				return nil, errNotHost
			}
		} else if !g.Session.SetPlayerReady(body.PlayerID, body.Ready) {
			return nil, errUnknownPlayer
		}
		return map[string]any{
			"all_ready": g.Session.AreAllPlayersReady(),
		}, nil
	})
}

func (h *Handler) createCharacter(c context.Context, ctx *app.RequestContext) {
	var body createCharacterRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.withGame(c, ctx, func(r *scriptrender.Renderer, g *game.Game) (any, error) {
		r.QueueCreation(ports.CharacterSpec{
			Name:       body.Name,
			Age:        body.Age,
			PosTrait:   party.Trait(body.PosTrait),
			NegTrait:   party.Trait(body.NegTrait),
			BirthMonth: time.Month(body.BirthMonth),
			BirthDay:   body.BirthDay,
			PlayerID:   body.PlayerID,
		})
		eng := h.Engine
		eng.Renderer = r
		if _, err := eng.CreateCharacter(c, g, body.PlayerID); err != nil {
			return nil, err
		}
		return g.Document(), nil
	})
}

func (h *Handler) startGame(c context.Context, ctx *app.RequestContext) {
	h.withGame(c, ctx, func(r *scriptrender.Renderer, g *game.Game) (any, error) {
		eng := h.Engine
		eng.Renderer = r
		if err := eng.StartGame(c, g); err != nil {
			return nil, err
		}
		return g.Document(), nil
	})
}

func (h *Handler) playTurn(c context.Context, ctx *app.RequestContext) {
	var body turnRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.withGame(c, ctx, func(r *scriptrender.Renderer, g *game.Game) (any, error) {
		for _, v := range body.Confirms {
			r.QueueConfirm(v)
		}
		for _, v := range body.Choices {
			r.QueueChoice(v)
		}
		for _, v := range body.CombatActions {
			r.QueueCombatAction(ports.CombatAction(v))
		}
		for _, v := range body.Targets {
			r.QueueTarget(v)
		}
		eng := h.Engine
		eng.Renderer = r
		result, err := eng.PlayTurn(c, g)
		if err != nil {
			return nil, err
		}
		return turnResponse{Result: result, Transcript: r.Transcript, Game: g.Document()}, nil
	})
}

func (h *Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "kpi_unavailable", "kpi recorder not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

// withGame loads the game under its per-game lock, applies fn, and persists
// the mutated aggregate with optimistic versioning. Nothing is saved when
// fn fails, so a half-applied command rolls back to the stored document.
func (h *Handler) withGame(c context.Context, ctx *app.RequestContext, fn func(r *scriptrender.Renderer, g *game.Game) (any, error)) {
	id := ctx.Param("id")
	lock := h.gameLock(id)
	lock.Lock()
	defer lock.Unlock()

	g, err := h.Repo.GetByID(c, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	loaded := g.Version

	out, err := fn(scriptrender.New(), g)
	if err != nil {
		writeError(ctx, err)
		return
	}

	g.Version++
	if err := h.Repo.SaveWithVersion(c, g, loaded); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, out)
}

var (
	errNotHost       = errors.New("caller is not the host")
	errUnknownPlayer = errors.New("unknown player")
)

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, engine.ErrGameEnded):
		writeErrorBody(ctx, consts.StatusConflict, "game_ended", err.Error())
	case errors.Is(err, engine.ErrNotStarted):
		writeErrorBody(ctx, consts.StatusConflict, "game_not_started", err.Error())
	case errors.Is(err, engine.ErrNotReady):
		writeErrorBody(ctx, consts.StatusConflict, "players_not_ready", err.Error())
	case errors.Is(err, engine.ErrNoSurvivors):
		writeErrorBody(ctx, consts.StatusConflict, "no_survivors", err.Error())
	case errors.Is(err, engine.ErrPartyFull):
		writeErrorBody(ctx, consts.StatusConflict, "party_full", err.Error())
	case errors.Is(err, engine.ErrInvalidTrait):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_trait", err.Error())
	case errors.Is(err, errNotHost):
		writeErrorBody(ctx, consts.StatusForbidden, "not_host", err.Error())
	case errors.Is(err, errUnknownPlayer):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_player", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/ports"
	"github.com/ersonp/dragon-clan/internal/domain/services"
	"github.com/ersonp/dragon-clan/internal/infrastructure/logging"
)

// DragonInfo is the read-only view of a clan member.
type DragonInfo struct {
	Index            int    `json:"index"`
	Name             string `json:"name"`
	Element          string `json:"element"`
	Age              int    `json:"age"`
	InteractionStyle string `json:"interaction_style"`
}

// InteractionEvent is the caller-facing outcome of one simulated interaction.
type InteractionEvent struct {
	Description    string             `json:"description"`
	InitiatorIndex int                `json:"initiator_index"`
	ReceiverIndex  int                `json:"receiver_index"`
	Narrative      entities.Narrative `json:"narrative"`
	OpinionChange  int                `json:"opinion_change"`
}

// ClanStats summarises the current clan.
type ClanStats struct {
	Name          string `json:"name"`
	DragonCount   int    `json:"dragon_count"`
	Interactions  int    `json:"interactions"`
	Relationships int    `json:"relationships"`
}

// CompatibilityReport is how one member scores another.
type CompatibilityReport struct {
	From          string `json:"from"`
	To            string `json:"to"`
	Compatibility int    `json:"compatibility"`
	Alignment     int    `json:"alignment"`
}

// ClanHandler is the boundary callers drive a clan through. It owns at most one
// clan and reports state changes to the event sink. It is not safe for
// concurrent use.
type ClanHandler struct {
	rng       ports.RandomSource
	generator *services.CharacterGenerator
	names     *services.NameGenerator
	sink      ports.EventSink
	logger    *slog.Logger
	clan      *services.Clan
	simulated int
}

// NewClanHandler creates a handler with no clan. A nil sink disables events.
func NewClanHandler(rng ports.RandomSource, sink ports.EventSink) *ClanHandler {
	return &ClanHandler{
		rng:       rng,
		generator: services.NewCharacterGenerator(rng),
		names:     services.NewNameGenerator(rng),
		sink:      sink,
		logger:    logging.New("clan"),
	}
}

// HasClan reports whether a clan has been created.
func (h *ClanHandler) HasClan() bool {
	return h.clan != nil
}

// CreateClan replaces any existing clan with a freshly named one holding
// initialDragons random members.
func (h *ClanHandler) CreateClan(ctx context.Context, initialDragons int) (*ClanStats, error) {
	name := h.names.ClanName()
	h.clan = services.NewClan(name, h.rng)
	h.simulated = 0
	h.populate(initialDragons)

	h.logger.Info("clan created", "clan", name, "dragons", h.clan.Count())
	h.emit(ctx, entities.EventClanCreated, map[string]any{
		"clan_name":    name,
		"dragon_count": h.clan.Count(),
	})
	return h.Stats()
}

// ResetClan clears the clan, gives it a new name and repopulates it. Without an
// existing clan it behaves like CreateClan.
func (h *ClanHandler) ResetClan(ctx context.Context, initialDragons int) (*ClanStats, error) {
	if h.clan == nil {
		return h.CreateClan(ctx, initialDragons)
	}

	name := h.names.ClanName()
	h.clan.Clear()
	h.clan.Rename(name)
	h.simulated = 0
	h.populate(initialDragons)

	h.logger.Info("clan reset", "clan", name, "dragons", h.clan.Count())
	h.emit(ctx, entities.EventClanReset, map[string]any{
		"clan_name":    name,
		"dragon_count": h.clan.Count(),
	})
	return h.Stats()
}

// Stats returns the clan summary.
func (h *ClanHandler) Stats() (*ClanStats, error) {
	if h.clan == nil {
		return nil, entities.ErrNoClan
	}

	relationships := 0
	for _, d := range h.clan.Dragons() {
		relationships += d.Relationships().Len()
	}
	return &ClanStats{
		Name:          h.clan.Name(),
		DragonCount:   h.clan.Count(),
		Interactions:  h.simulated,
		Relationships: relationships,
	}, nil
}

// Dragons returns every member in registry order; empty without a clan.
func (h *ClanHandler) Dragons() []DragonInfo {
	if h.clan == nil {
		return nil
	}
	members := h.clan.Dragons()
	infos := make([]DragonInfo, 0, len(members))
	for i, d := range members {
		infos = append(infos, newDragonInfo(i, d))
	}
	return infos
}

// Dragon returns the member at index.
func (h *ClanHandler) Dragon(index int) (*DragonInfo, error) {
	d, err := h.dragon(index)
	if err != nil {
		return nil, err
	}
	info := newDragonInfo(index, d)
	return &info, nil
}

// AddRandomDragon adds a member with a random element, age and unused name.
func (h *ClanHandler) AddRandomDragon(ctx context.Context) (*DragonInfo, error) {
	if h.clan == nil {
		return nil, entities.ErrNoClan
	}
	d := h.randomDragon(h.generator.RandomElement())
	if err := h.clan.Add(d); err != nil {
		return nil, h.fail(ctx, "add random dragon", err)
	}
	return h.added(ctx, d), nil
}

// AddElementalDragon adds a member of the labelled element with a random age and
// unused name. An unknown label is logged and the default element is used.
func (h *ClanHandler) AddElementalDragon(ctx context.Context, element string) (*DragonInfo, error) {
	if h.clan == nil {
		return nil, entities.ErrNoClan
	}
	parsed, err := entities.ParseElement(element)
	if err != nil {
		h.logger.Warn("unknown element, using default", "element", element, "default", parsed)
	}
	d := h.randomDragon(parsed)
	if err := h.clan.Add(d); err != nil {
		return nil, h.fail(ctx, "add elemental dragon", err)
	}
	return h.added(ctx, d), nil
}

// AddDragon adds a member with the given attributes. An unknown element label
// is logged and the dragon joins as a default-element dragon.
func (h *ClanHandler) AddDragon(ctx context.Context, name, element string, age int) (*DragonInfo, error) {
	if h.clan == nil {
		return nil, entities.ErrNoClan
	}

	d, err := h.generator.NewDragon(name, element, age)
	if err != nil {
		if !errors.Is(err, entities.ErrInvalidElement) {
			return nil, h.fail(ctx, "add dragon", err)
		}
		h.logger.Warn("unknown element, using default", "dragon", name, "element", element, "default", d.Element)
	}
	if err := h.clan.Add(d); err != nil {
		return nil, h.fail(ctx, "add dragon", err)
	}
	return h.added(ctx, d), nil
}

// RemoveDragon removes the member at index and returns what it was.
func (h *ClanHandler) RemoveDragon(ctx context.Context, index int) (*DragonInfo, error) {
	if h.clan == nil {
		return nil, entities.ErrNoClan
	}
	d, err := h.clan.Remove(index)
	if err != nil {
		return nil, h.fail(ctx, "remove dragon", err)
	}

	info := newDragonInfo(index, d)
	h.logger.Debug("dragon removed", "dragon", d.Name, "index", index)
	h.emit(ctx, entities.EventDragonRemoved, map[string]any{
		"name":  d.Name,
		"index": index,
	})
	return &info, nil
}

// SimulateInteraction runs one interaction between a random pair. It returns
// nil without error when the clan has fewer than two members.
func (h *ClanHandler) SimulateInteraction(ctx context.Context) (*InteractionEvent, error) {
	events, err := h.SimulateInteractions(ctx, 1)
	if err != nil || len(events) == 0 {
		return nil, err
	}
	return &events[0], nil
}

// SimulateInteractions runs up to count interactions in sequence.
func (h *ClanHandler) SimulateInteractions(ctx context.Context, count int) ([]InteractionEvent, error) {
	if h.clan == nil {
		return nil, entities.ErrNoClan
	}
	if h.clan.Count() < 2 {
		h.logger.Debug("not enough dragons to interact", "dragons", h.clan.Count())
		return nil, nil
	}

	results := h.clan.Simulate(count)
	events := make([]InteractionEvent, 0, len(results))
	for _, r := range results {
		events = append(events, h.recorded(ctx, r.InitiatorIndex, r.ReceiverIndex, r.Interaction))
	}
	return events, nil
}

// Interact runs one interaction initiated by the member at from toward the
// member at to.
func (h *ClanHandler) Interact(ctx context.Context, from, to int) (*InteractionEvent, error) {
	if h.clan == nil {
		return nil, entities.ErrNoClan
	}
	interaction, err := h.clan.Interact(from, to)
	if err != nil {
		return nil, h.fail(ctx, "interact", err)
	}
	event := h.recorded(ctx, from, to, interaction)
	return &event, nil
}

// Opinion returns the opinion the member at from holds of the member at to.
func (h *ClanHandler) Opinion(from, to int) (int, error) {
	if h.clan == nil {
		return 0, entities.ErrNoClan
	}
	return h.clan.Opinion(from, to)
}

// RelationshipSummary reports how the member at from regards the member at to.
func (h *ClanHandler) RelationshipSummary(from, to int) (entities.RelationshipSummary, error) {
	if h.clan == nil {
		return entities.RelationshipSummary{}, entities.ErrNoClan
	}
	return h.clan.RelationshipSummary(from, to)
}

// RelationshipInfo formats RelationshipSummary as a single line.
func (h *ClanHandler) RelationshipInfo(from, to int) (string, error) {
	summary, err := h.RelationshipSummary(from, to)
	if err != nil {
		return "", err
	}
	return summary.String(), nil
}

// CharacterInfo returns the character sheet of the member at index.
func (h *ClanHandler) CharacterInfo(index int) (string, error) {
	d, err := h.dragon(index)
	if err != nil {
		return "", err
	}
	return d.CharacterSheet(), nil
}

// Compatibility scores the member at to from the point of view of the member at from.
func (h *ClanHandler) Compatibility(from, to int) (*CompatibilityReport, error) {
	a, err := h.dragon(from)
	if err != nil {
		return nil, err
	}
	b, err := h.dragon(to)
	if err != nil {
		return nil, err
	}
	return &CompatibilityReport{
		From:          a.Name,
		To:            b.Name,
		Compatibility: services.CompatibilityScore(a.Character, b.Character, b.Element),
		Alignment:     services.ValueAlignment(a.Character.Values, b.Character.Values),
	}, nil
}

func (h *ClanHandler) dragon(index int) (*entities.Dragon, error) {
	if h.clan == nil {
		return nil, entities.ErrNoClan
	}
	return h.clan.Dragon(index)
}

func (h *ClanHandler) populate(count int) {
	for range count {
		if err := h.clan.Add(h.randomDragon(h.generator.RandomElement())); err != nil {
			h.logger.Warn("skipping generated dragon", "error", err)
		}
	}
}

func (h *ClanHandler) randomDragon(element entities.Element) *entities.Dragon {
	name := h.names.UniqueDragonName(&element, h.clan.Has)
	age := h.generator.RandomAge()
	return entities.NewDragon(name, element, age, h.generator.Generate(&element))
}

func (h *ClanHandler) added(ctx context.Context, d *entities.Dragon) *DragonInfo {
	info := newDragonInfo(h.clan.Count()-1, d)
	h.logger.Debug("dragon added", "dragon", d.Name, "element", d.Element, "age", d.Age)
	h.emit(ctx, entities.EventDragonAdded, map[string]any{
		"name":              info.Name,
		"element":           info.Element,
		"age":               info.Age,
		"interaction_style": info.InteractionStyle,
	})
	return &info
}

func (h *ClanHandler) recorded(ctx context.Context, from, to int, interaction *entities.Interaction) InteractionEvent {
	h.simulated++
	event := InteractionEvent{
		Description:    interaction.Description,
		InitiatorIndex: from,
		ReceiverIndex:  to,
		Narrative:      interaction.Narrative,
		OpinionChange:  interaction.OpinionChange,
	}
	h.logger.Debug("interaction simulated",
		"initiator", interaction.Initiator,
		"receiver", interaction.Receiver,
		"narrative", interaction.Narrative,
		"change", interaction.OpinionChange,
	)
	h.emit(ctx, entities.EventInteractionSimulated, map[string]any{
		"initiator":       interaction.Initiator,
		"receiver":        interaction.Receiver,
		"initiator_index": from,
		"receiver_index":  to,
		"narrative":       string(interaction.Narrative),
		"description":     interaction.Description,
		"opinion_change":  interaction.OpinionChange,
		"sender_change":   interaction.SenderChange,
	})
	return event
}

// fail reports err as an error event and returns it unchanged.
func (h *ClanHandler) fail(ctx context.Context, operation string, err error) error {
	h.emit(ctx, entities.EventError, map[string]any{
		"operation": operation,
		"message":   err.Error(),
	})
	return err
}

func (h *ClanHandler) emit(ctx context.Context, kind entities.EventKind, payload map[string]any) {
	if h.sink == nil {
		return
	}
	if err := h.sink.Emit(ctx, kind, payload); err != nil {
		h.logger.Warn("event not delivered", "kind", string(kind), "error", err)
	}
}

func newDragonInfo(index int, d *entities.Dragon) DragonInfo {
	return DragonInfo{
		Index:            index,
		Name:             d.Name,
		Element:          d.Element.String(),
		Age:              d.Age,
		InteractionStyle: d.InteractionStyle(),
	}
}

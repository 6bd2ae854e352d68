package services

import (
	"fmt"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
)

// Narrative changes live in [-maxNarrativeChange, maxNarrativeChange].
const maxNarrativeChange = 30

const (
	sharedHonorAlignment = 50
	sharedHonorBonus     = 10 + 5
	sharedCommunityBonus = 8
	clashPenalty         = 8
	elementalDebateBonus = 3
	collaborationBonus   = 4
	conversationDivisor  = 20
)

// InteractionService runs a single directed exchange between two dragons.
type InteractionService struct{}

// NewInteractionService creates a new InteractionService.
func NewInteractionService() *InteractionService {
	return &InteractionService{}
}

// Interact runs one exchange initiated by a toward b and updates both ledgers.
// b's record of a receives the returned OpinionChange; a's record of b receives
// the sender reaction. Either both ledgers change or neither does.
func (s *InteractionService) Interact(a, b *entities.Dragon) (*entities.Interaction, error) {
	if a == nil || b == nil {
		return nil, entities.ErrUnknownEntity
	}
	if a == b || a.Name == b.Name {
		return nil, fmt.Errorf("%s: %w", a.Name, entities.ErrSameEntity)
	}

	result := &entities.Interaction{
		Initiator:     a.Name,
		Receiver:      b.Name,
		Compatibility: CompatibilityScore(a.Character, b.Character, b.Element),
		Alignment:     ValueAlignment(a.Character.Values, b.Character.Values),
		State:         entities.StateInitiated,
	}

	result.Message = Compose(a.Character, a.Name, b.Name, a.Element, b.Element, a.OpinionOf(b.Name))
	result.State = entities.StateMessageGenerated

	response := Respond(result.Message, b.Character, b.Name, a.Name, b.OpinionOf(a.Name))
	narrative, change, tone := selectNarrative(a, b, result, response)
	if tone != response.Tone {
		response = toneResponse(result.Message, a.Name, b.Name, tone, change)
	}
	response.OpinionChange = change
	result.Response = response
	result.Narrative = narrative
	result.State = entities.StateResponseGenerated

	result.ReceiverChange = change
	result.SenderChange = SenderReaction(response)
	result.OpinionChange = result.ReceiverChange
	result.Description = describe(result)

	b.Relationships().Record(a.Name, result.ReceiverChange, result.Description)
	a.Relationships().Record(b.Name, result.SenderChange, result.Description)
	result.State = entities.StateLedgersUpdated

	result.State = entities.StateComplete
	return result, nil
}

// selectNarrative picks the first matching storyline and returns the adjusted
// receiver change and response tone.
func selectNarrative(
	a, b *entities.Dragon,
	result *entities.Interaction,
	response entities.CommunicationResponse,
) (entities.Narrative, int, entities.Tone) {
	va, vb := a.Character.Values, b.Character.Values
	change, tone := response.OpinionChange, response.Tone

	switch {
	case va.Honor > highReading && vb.Honor > highReading && result.Alignment > sharedHonorAlignment:
		return entities.NarrativeSharedHonor, clampNarrative(max(change, 0) + sharedHonorBonus), entities.ToneWarm

	case va.Community() > highReading && vb.Community() > highReading:
		if !tone.IsFriendly() {
			tone = entities.TonePositive
		}
		return entities.NarrativeSharedCommunity, clampNarrative(max(change, 0) + sharedCommunityBonus), tone

	case clashes(va, vb):
		return entities.NarrativeClashOfIdeals, clampNarrative(min(change, 0) - clashPenalty), entities.ToneChallenging

	case a.Element == entities.ElementFire && b.Element == entities.ElementWater:
		return entities.NarrativeElementalDebate, clampNarrative(change + elementalDebateBonus), tone

	case a.Element == entities.ElementEarth && b.Element == entities.ElementWind:
		return entities.NarrativeCollaboration, clampNarrative(change + collaborationBonus), tone

	default:
		return entities.NarrativeConversation, clampNarrative(change + result.Compatibility/conversationDivisor), tone
	}
}

// clashes reports whether a strongly holds an ideal that b strongly opposes.
func clashes(a, b entities.ValueProfile) bool {
	for _, p := range clashingIdeals {
		if a.Reading(p.first) > highReading && b.Reading(p.second) > highReading {
			return true
		}
	}
	return false
}

func describe(result *entities.Interaction) string {
	line := fmt.Sprintf("%s → %s: %s | %s → %s: %s (%s)",
		result.Initiator, result.Receiver, result.Message.Content,
		result.Receiver, result.Initiator, result.Response.Content, result.Response.Interpretation)
	if result.Narrative == entities.NarrativeConversation {
		return line
	}
	return fmt.Sprintf("[%s] %s", result.Narrative, line)
}

func clampNarrative(v int) int {
	if v < -maxNarrativeChange {
		return -maxNarrativeChange
	}
	if v > maxNarrativeChange {
		return maxNarrativeChange
	}
	return v
}

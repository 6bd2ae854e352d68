package entities

// InteractionState is a step of a single pairwise interaction.
type InteractionState uint8

const (
	StateInitiated InteractionState = iota
	StateMessageGenerated
	StateResponseGenerated
	StateLedgersUpdated
	StateComplete
)

var interactionStateNames = [...]string{
	StateInitiated:         "initiated",
	StateMessageGenerated:  "message-generated",
	StateResponseGenerated: "response-generated",
	StateLedgersUpdated:    "ledgers-updated",
	StateComplete:          "complete",
}

func (s InteractionState) String() string {
	if int(s) < len(interactionStateNames) {
		return interactionStateNames[s]
	}
	return "unknown"
}

// Narrative labels the storyline an interaction followed.
type Narrative string

const (
	NarrativeSharedHonor     Narrative = "shared honor"
	NarrativeSharedCommunity Narrative = "shared community"
	NarrativeClashOfIdeals   Narrative = "clash of ideals"
	NarrativeElementalDebate Narrative = "elemental debate"
	NarrativeCollaboration   Narrative = "collaboration"
	NarrativeConversation    Narrative = "conversation"
)

// Interaction is the full record of one completed exchange.
// OpinionChange mirrors ReceiverChange, the effect surfaced to callers.
type Interaction struct {
	Initiator      string                `json:"initiator"`
	Receiver       string                `json:"receiver"`
	Narrative      Narrative             `json:"narrative"`
	Compatibility  int                   `json:"compatibility"`
	Alignment      int                   `json:"alignment"`
	Message        Communication         `json:"message"`
	Response       CommunicationResponse `json:"response"`
	ReceiverChange int                   `json:"receiver_change"`
	SenderChange   int                   `json:"sender_change"`
	Description    string                `json:"description"`
	OpinionChange  int                   `json:"opinion_change"`
	State          InteractionState      `json:"-"`
}

package entities

// Tone classifies how a message or response comes across.
type Tone string

const (
	TonePositive    Tone = "Positive"
	ToneWarm        Tone = "Warm"
	ToneNeutral     Tone = "Neutral"
	ToneNegative    Tone = "Negative"
	ToneChallenging Tone = "Challenging"
)

// IsFriendly reports whether the tone is Positive or Warm.
func (t Tone) IsFriendly() bool {
	return t == TonePositive || t == ToneWarm
}

// IsHostile reports whether the tone is Negative or Challenging.
func (t Tone) IsHostile() bool {
	return t == ToneNegative || t == ToneChallenging
}

// Communication is a message one dragon sends another.
type Communication struct {
	Sender          string  `json:"sender"`
	Receiver        string  `json:"receiver"`
	SenderElement   Element `json:"sender_element"`
	ReceiverElement Element `json:"receiver_element"`
	Topic           Value   `json:"topic"`
	Style           string  `json:"style"`
	Tone            Tone    `json:"tone"`
	Content         string  `json:"content"`
}

// CommunicationResponse is the receiver's reading of and reply to a Communication.
// OpinionChange is the receiver's side of the exchange.
type CommunicationResponse struct {
	Content        string `json:"response_content"`
	Tone           Tone   `json:"response_tone"`
	Interpretation string `json:"interpretation"`
	OpinionChange  int    `json:"opinion_change"`
}

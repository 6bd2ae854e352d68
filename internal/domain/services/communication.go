package services

import (
	"fmt"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
)

// Reception scores live in [-maxReception, maxReception].
const maxReception = 20

const (
	hostileOpinion     = -50
	unfriendlyOpinion  = -20
	warmOpinion        = 50
	friendlyOpinion    = 20
	hostileAggression  = 50
	assertiveReading   = 60
	warmReception      = 10
	positiveReception  = 3
	negativeReception  = -3
	opinionInfluence   = 10
	elementalReception = 3
)

var messageTemplates = map[entities.Tone]string{
	entities.ToneWarm:        "%s, it is always good to share thoughts on %s with you.",
	entities.TonePositive:    "Greetings, %s! I have been thinking about %s.",
	entities.ToneNeutral:     "%s. What do you make of %s?",
	entities.ToneNegative:    "%s, I doubt you understand much about %s.",
	entities.ToneChallenging: "%s! Prove you know anything about %s.",
}

var responseTemplates = map[entities.Tone]string{
	entities.ToneWarm:        "Well said, %s. I feel the same about %s.",
	entities.TonePositive:    "Thank you, %s. I would be glad to talk about %s.",
	entities.ToneNeutral:     "Perhaps, %s. I have no strong view on %s.",
	entities.ToneNegative:    "%s, your words on %s leave me cold.",
	entities.ToneChallenging: "Watch yourself, %s. I will not be lectured on %s.",
}

var interpretations = map[entities.Tone]string{
	entities.ToneWarm:        "felt truly understood",
	entities.TonePositive:    "took it well",
	entities.ToneNeutral:     "was unmoved",
	entities.ToneNegative:    "took offense",
	entities.ToneChallenging: "felt provoked",
}

var toneReception = map[entities.Tone]int{
	entities.ToneWarm:        8,
	entities.TonePositive:    5,
	entities.ToneNeutral:     0,
	entities.ToneNegative:    -5,
	entities.ToneChallenging: -8,
}

// Compose builds the message a sender opens an exchange with. The topic is the
// sender's strongest value and the tone follows its existing opinion of the
// receiver, falling back to its interaction style.
func Compose(
	sender entities.Character,
	senderName, receiverName string,
	senderElement, receiverElement entities.Element,
	existingOpinion int,
) entities.Communication {
	style := sender.InteractionStyle()
	topic := sender.Values.DominantValue()
	tone := messageTone(sender.Traits, style, existingOpinion)

	return entities.Communication{
		Sender:          senderName,
		Receiver:        receiverName,
		SenderElement:   senderElement,
		ReceiverElement: receiverElement,
		Topic:           topic,
		Style:           style,
		Tone:            tone,
		Content:         fmt.Sprintf(messageTemplates[tone], receiverName, topic.Phrase()),
	}
}

func messageTone(traits entities.TraitProfile, style string, opinion int) entities.Tone {
	switch {
	case opinion <= hostileOpinion:
		if traits.Aggression() > hostileAggression {
			return entities.ToneChallenging
		}
		return entities.ToneNegative
	case opinion <= unfriendlyOpinion:
		return entities.ToneNegative
	case opinion >= warmOpinion:
		return entities.ToneWarm
	case opinion >= friendlyOpinion:
		return entities.TonePositive
	}

	switch style {
	case "aggressive":
		return entities.ToneChallenging
	case "friendly", "playful":
		return entities.TonePositive
	default:
		return entities.ToneNeutral
	}
}

// Respond scores how the receiver takes a message. existingOpinion is the
// receiver's opinion of the sender. The returned OpinionChange is the
// receiver's side of the exchange.
func Respond(
	message entities.Communication,
	receiver entities.Character,
	receiverName, senderName string,
	existingOpinion int,
) entities.CommunicationResponse {
	score := receptionScore(message, receiver, existingOpinion)
	return toneResponse(message, senderName, receiverName, responseTone(receiver.Traits, score), score)
}

// toneResponse renders the receiver's reply to message in the given tone.
func toneResponse(
	message entities.Communication,
	senderName, receiverName string,
	tone entities.Tone,
	change int,
) entities.CommunicationResponse {
	return entities.CommunicationResponse{
		Content:        fmt.Sprintf(responseTemplates[tone], senderName, message.Topic.Phrase()),
		Tone:           tone,
		Interpretation: fmt.Sprintf("%s %s", receiverName, interpretations[tone]),
		OpinionChange:  change,
	}
}

func receptionScore(message entities.Communication, receiver entities.Character, existingOpinion int) int {
	score := toneReception[message.Tone]

	topicReading := receiver.Values.Reading(message.Topic)
	switch {
	case topicReading > highReading:
		score += 6
	case topicReading < lowReading:
		score -= 4
	}

	traits := receiver.Traits
	switch {
	case message.Tone.IsHostile():
		if traits.Patience() > highReading {
			score += 4
		}
		if traits.Aggression() > highReading {
			score -= 4
		}
	case message.Tone.IsFriendly():
		if traits.Friendliness > highReading {
			score += 3
		}
		if traits.Sociability < lowReading {
			score -= 2
		}
	}

	if traits.Curiosity > highReading &&
		(message.Topic == entities.ValueWisdom || message.Topic == entities.ValueGrowth) {
		score += 3
	}

	score += existingOpinion / opinionInfluence

	prefs := entities.DefaultElementPreferences(message.ReceiverElement)
	if prefs.Prefers(message.SenderElement) {
		score += elementalReception
	}
	if prefs.Dislikes(message.SenderElement) {
		score -= elementalReception
	}

	return clampReception(score)
}

func responseTone(traits entities.TraitProfile, score int) entities.Tone {
	switch {
	case score >= warmReception:
		return entities.ToneWarm
	case score >= positiveReception:
		return entities.TonePositive
	case score > negativeReception:
		return entities.ToneNeutral
	case traits.Dominance > assertiveReading || traits.Aggression() > assertiveReading:
		return entities.ToneChallenging
	default:
		return entities.ToneNegative
	}
}

// SenderReaction derives the sender's opinion change from how its message was received.
func SenderReaction(response entities.CommunicationResponse) int {
	change := response.OpinionChange
	switch {
	case response.Tone.IsFriendly():
		return roundScaled(change, 0.5) + 2
	case response.Tone.IsHostile():
		return roundScaled(change, 0.3) - 2
	default:
		return roundScaled(change, 0.2)
	}
}

func clampReception(v int) int {
	if v < -maxReception {
		return -maxReception
	}
	if v > maxReception {
		return maxReception
	}
	return v
}

package entities

import "sort"

// Value identifies a single reading of a dragon's moral framework.
// Paired values (Freedom/Community, Tradition/Growth, Power/Harmony,
// Achievement/Protection) share one stored axis.
type Value uint8

const (
	ValueHonor Value = iota
	ValueFreedom
	ValueTradition
	ValueGrowth
	ValueCommunity
	ValueAchievement
	ValueHarmony
	ValuePower
	ValueWisdom
	ValueProtection
)

// AllValues lists every value reading in canonical order.
var AllValues = []Value{
	ValueHonor,
	ValueFreedom,
	ValueTradition,
	ValueGrowth,
	ValueCommunity,
	ValueAchievement,
	ValueHarmony,
	ValuePower,
	ValueWisdom,
	ValueProtection,
}

var valueNames = [...]string{
	ValueHonor:       "Honor",
	ValueFreedom:     "Freedom",
	ValueTradition:   "Tradition",
	ValueGrowth:      "Growth",
	ValueCommunity:   "Community",
	ValueAchievement: "Achievement",
	ValueHarmony:     "Harmony",
	ValuePower:       "Power",
	ValueWisdom:      "Wisdom",
	ValueProtection:  "Protection",
}

var valuePhrases = [...]string{
	ValueHonor:       "keeping one's word",
	ValueFreedom:     "the open sky",
	ValueTradition:   "the old ways",
	ValueGrowth:      "new paths",
	ValueCommunity:   "the clan",
	ValueAchievement: "great deeds",
	ValueHarmony:     "peace between the roosts",
	ValuePower:       "strength",
	ValueWisdom:      "ancient knowledge",
	ValueProtection:  "guarding the hatchlings",
}

// String returns the display name of the value.
func (v Value) String() string {
	if int(v) < len(valueNames) {
		return valueNames[v]
	}
	return "Unknown"
}

// Phrase returns a conversational phrase for the value, used as a message topic.
func (v Value) Phrase() string {
	if int(v) < len(valuePhrases) {
		return valuePhrases[v]
	}
	return "the weather"
}

// Opposite returns the value sharing this value's axis, if any.
func (v Value) Opposite() (Value, bool) {
	switch v {
	case ValueFreedom:
		return ValueCommunity, true
	case ValueCommunity:
		return ValueFreedom, true
	case ValueTradition:
		return ValueGrowth, true
	case ValueGrowth:
		return ValueTradition, true
	case ValuePower:
		return ValueHarmony, true
	case ValueHarmony:
		return ValuePower, true
	case ValueAchievement:
		return ValueProtection, true
	case ValueProtection:
		return ValueAchievement, true
	default:
		return v, false
	}
}

// ValueProfile is a dragon's fixed moral framework.
// Each *Vs* axis stores the first reading; the second is its complement.
type ValueProfile struct {
	Honor                   int `json:"honor"`
	Wisdom                  int `json:"wisdom"`
	FreedomVsCommunity      int `json:"freedom_vs_community"`
	TraditionVsGrowth       int `json:"tradition_vs_growth"`
	PowerVsHarmony          int `json:"power_vs_harmony"`
	AchievementVsProtection int `json:"achievement_vs_protection"`
}

func (p ValueProfile) Freedom() int     { return p.FreedomVsCommunity }
func (p ValueProfile) Community() int   { return MaxReading - p.FreedomVsCommunity }
func (p ValueProfile) Tradition() int   { return p.TraditionVsGrowth }
func (p ValueProfile) Growth() int      { return MaxReading - p.TraditionVsGrowth }
func (p ValueProfile) Power() int       { return p.PowerVsHarmony }
func (p ValueProfile) Harmony() int     { return MaxReading - p.PowerVsHarmony }
func (p ValueProfile) Achievement() int { return p.AchievementVsProtection }
func (p ValueProfile) Protection() int  { return MaxReading - p.AchievementVsProtection }

// Reading returns the value of a single reading.
func (p ValueProfile) Reading(v Value) int {
	switch v {
	case ValueHonor:
		return p.Honor
	case ValueWisdom:
		return p.Wisdom
	case ValueFreedom:
		return p.Freedom()
	case ValueCommunity:
		return p.Community()
	case ValueTradition:
		return p.Tradition()
	case ValueGrowth:
		return p.Growth()
	case ValuePower:
		return p.Power()
	case ValueHarmony:
		return p.Harmony()
	case ValueAchievement:
		return p.Achievement()
	case ValueProtection:
		return p.Protection()
	default:
		return 0
	}
}

// Adjusted returns a copy with the given reading shifted by delta, saturating at
// the axis bounds. Shifting the second reading of a pair moves the axis the other way.
func (p ValueProfile) Adjusted(v Value, delta int) ValueProfile {
	switch v {
	case ValueHonor:
		p.Honor = ClampReading(p.Honor + delta)
	case ValueWisdom:
		p.Wisdom = ClampReading(p.Wisdom + delta)
	case ValueFreedom:
		p.FreedomVsCommunity = ClampReading(p.FreedomVsCommunity + delta)
	case ValueCommunity:
		p.FreedomVsCommunity = ClampReading(p.FreedomVsCommunity - delta)
	case ValueTradition:
		p.TraditionVsGrowth = ClampReading(p.TraditionVsGrowth + delta)
	case ValueGrowth:
		p.TraditionVsGrowth = ClampReading(p.TraditionVsGrowth - delta)
	case ValuePower:
		p.PowerVsHarmony = ClampReading(p.PowerVsHarmony + delta)
	case ValueHarmony:
		p.PowerVsHarmony = ClampReading(p.PowerVsHarmony - delta)
	case ValueAchievement:
		p.AchievementVsProtection = ClampReading(p.AchievementVsProtection + delta)
	case ValueProtection:
		p.AchievementVsProtection = ClampReading(p.AchievementVsProtection - delta)
	}
	return p
}

// Clamped returns a copy with every stored axis inside the valid range.
func (p ValueProfile) Clamped() ValueProfile {
	p.Honor = ClampReading(p.Honor)
	p.Wisdom = ClampReading(p.Wisdom)
	p.FreedomVsCommunity = ClampReading(p.FreedomVsCommunity)
	p.TraditionVsGrowth = ClampReading(p.TraditionVsGrowth)
	p.PowerVsHarmony = ClampReading(p.PowerVsHarmony)
	p.AchievementVsProtection = ClampReading(p.AchievementVsProtection)
	return p
}

// ValueScore pairs a value with its reading.
type ValueScore struct {
	Value Value `json:"value"`
	Score int   `json:"score"`
}

// TopValues returns the count highest readings, ties kept in canonical order.
func (p ValueProfile) TopValues(count int) []ValueScore {
	scores := make([]ValueScore, 0, len(AllValues))
	for _, v := range AllValues {
		scores = append(scores, ValueScore{Value: v, Score: p.Reading(v)})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if count < 0 {
		count = 0
	}
	if count > len(scores) {
		count = len(scores)
	}
	return scores[:count]
}

// DominantValue returns the single highest reading.
func (p ValueProfile) DominantValue() Value {
	return p.TopValues(1)[0].Value
}

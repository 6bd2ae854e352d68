package services

import "github.com/ersonp/dragon-clan/internal/domain/entities"

// flatCharacter returns a character with every axis at the same reading and no preferences.
func flatCharacter(reading int) entities.Character {
	return entities.Character{
		Traits: entities.TraitProfile{
			Friendliness:         reading,
			Sociability:          reading,
			Curiosity:            reading,
			Playfulness:          reading,
			Dominance:            reading,
			AggressionVsPatience: reading,
		},
		Values: entities.ValueProfile{
			Honor:                   reading,
			Wisdom:                  reading,
			FreedomVsCommunity:      reading,
			TraditionVsGrowth:       reading,
			PowerVsHarmony:          reading,
			AchievementVsProtection: reading,
		},
	}
}

func auroraCharacter() entities.Character {
	return entities.Character{
		Traits: entities.TraitProfile{
			Friendliness:         80,
			Sociability:          70,
			Curiosity:            50,
			Playfulness:          60,
			Dominance:            40,
			AggressionVsPatience: 30,
		},
		Values: entities.ValueProfile{
			Honor:                   85,
			Wisdom:                  60,
			FreedomVsCommunity:      40,
			TraditionVsGrowth:       50,
			PowerVsHarmony:          30,
			AchievementVsProtection: 45,
		},
		Preferences: entities.Preferences{
			Elements: entities.DefaultElementPreferences(entities.ElementWater),
		},
	}
}

func lunaCharacter() entities.Character {
	return entities.Character{
		Traits: entities.TraitProfile{
			Friendliness:         75,
			Sociability:          65,
			Curiosity:            55,
			Playfulness:          50,
			Dominance:            35,
			AggressionVsPatience: 25,
		},
		Values: entities.ValueProfile{
			Honor:                   90,
			Wisdom:                  70,
			FreedomVsCommunity:      35,
			TraditionVsGrowth:       55,
			PowerVsHarmony:          25,
			AchievementVsProtection: 40,
		},
		Preferences: entities.Preferences{
			Elements: entities.DefaultElementPreferences(entities.ElementWater),
		},
	}
}

func aurora() *entities.Dragon {
	return entities.NewDragon("Aurora", entities.ElementWater, 5, auroraCharacter())
}

func luna() *entities.Dragon {
	return entities.NewDragon("Luna", entities.ElementWater, 4, lunaCharacter())
}

func flatDragon(name string, element entities.Element, reading int) *entities.Dragon {
	return entities.NewDragon(name, element, 3, flatCharacter(reading))
}

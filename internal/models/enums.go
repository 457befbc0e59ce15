package models

// JournalMood is the closed set of moods a journal entry can carry
type JournalMood string

const (
	JournalMoodSparkles JournalMood = "✨"
	JournalMoodHeart    JournalMood = "❤️"
	JournalMoodSmile    JournalMood = "😊"
	JournalMoodInLove   JournalMood = "🥰"
	JournalMoodStar     JournalMood = "🌟"
	JournalMoodParty    JournalMood = "🎉"
	JournalMoodPleading JournalMood = "🥺"
	JournalMoodDizzy    JournalMood = "💫"
	JournalMoodLeaf     JournalMood = "🍃"
	JournalMoodCloud    JournalMood = "☁️"

	DefaultJournalMood = JournalMoodSmile
)

var journalMoods = map[JournalMood]struct{}{
	JournalMoodSparkles: {}, JournalMoodHeart: {}, JournalMoodSmile: {}, JournalMoodInLove: {},
	JournalMoodStar: {}, JournalMoodParty: {}, JournalMoodPleading: {}, JournalMoodDizzy: {},
	JournalMoodLeaf: {}, JournalMoodCloud: {},
}

// Valid reports whether m is a known journal mood
func (m JournalMood) Valid() bool {
	_, ok := journalMoods[m]
	return ok
}

// MemoryMood is the closed set of moods a memory can carry
type MemoryMood string

const (
	MemoryMoodHeart    MemoryMood = "❤️"
	MemoryMoodSmile    MemoryMood = "😊"
	MemoryMoodInLove   MemoryMood = "🥰"
	MemoryMoodSparkles MemoryMood = "✨"
	MemoryMoodStar     MemoryMood = "🌟"
	MemoryMoodParty    MemoryMood = "🎉"
	MemoryMoodPleading MemoryMood = "🥺"
	MemoryMoodDizzy    MemoryMood = "💫"

	DefaultMemoryMood = MemoryMoodHeart
)

var memoryMoods = map[MemoryMood]struct{}{
	MemoryMoodHeart: {}, MemoryMoodSmile: {}, MemoryMoodInLove: {}, MemoryMoodSparkles: {},
	MemoryMoodStar: {}, MemoryMoodParty: {}, MemoryMoodPleading: {}, MemoryMoodDizzy: {},
}

// Valid reports whether m is a known memory mood
func (m MemoryMood) Valid() bool {
	_, ok := memoryMoods[m]
	return ok
}

// MemoryCategory classifies a memory
type MemoryCategory string

const (
	MemoryCategoryMilestone MemoryCategory = "milestone"
	MemoryCategoryDate      MemoryCategory = "date"
	MemoryCategoryTravel    MemoryCategory = "travel"
	MemoryCategoryEveryday  MemoryCategory = "everyday"
	MemoryCategorySpecial   MemoryCategory = "special"

	DefaultMemoryCategory = MemoryCategoryEveryday
)

// Valid reports whether c is a known memory category
func (c MemoryCategory) Valid() bool {
	switch c {
	case MemoryCategoryMilestone, MemoryCategoryDate, MemoryCategoryTravel,
		MemoryCategoryEveryday, MemoryCategorySpecial:
		return true
	}
	return false
}

// DateIdeaCategory classifies a date idea
type DateIdeaCategory string

const (
	DateIdeaHome        DateIdeaCategory = "home"
	DateIdeaOutdoor     DateIdeaCategory = "outdoor"
	DateIdeaAdventure   DateIdeaCategory = "adventure"
	DateIdeaFancy       DateIdeaCategory = "fancy"
	DateIdeaCreative    DateIdeaCategory = "creative"
	DateIdeaSpontaneous DateIdeaCategory = "spontaneous"

	DefaultDateIdeaCategory = DateIdeaHome
)

// Valid reports whether c is a known date idea category
func (c DateIdeaCategory) Valid() bool {
	switch c {
	case DateIdeaHome, DateIdeaOutdoor, DateIdeaAdventure,
		DateIdeaFancy, DateIdeaCreative, DateIdeaSpontaneous:
		return true
	}
	return false
}

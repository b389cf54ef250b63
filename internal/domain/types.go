package domain

// ReleaseType distinguishes what kind of tracked entity produced a release
type ReleaseType string

const (
	// ReleaseTypeArtist represents a music release (album, single, EP)
	ReleaseTypeArtist ReleaseType = "artist"
	// ReleaseTypeGame represents a game status change or content update
	ReleaseTypeGame ReleaseType = "game"
)

// Valid reports whether the release type is one of the known values
func (t ReleaseType) Valid() bool {
	return t == ReleaseTypeArtist || t == ReleaseTypeGame
}

// GameStatus represents the availability state of a tracked game
type GameStatus string

const (
	// GameStatusComingSoon means the game is announced but not yet purchasable
	GameStatusComingSoon GameStatus = "coming_soon"
	// GameStatusEarlyAccess means the game is purchasable in early access
	GameStatusEarlyAccess GameStatus = "early_access"
	// GameStatusReleased means the game has fully launched
	GameStatusReleased GameStatus = "released"
	// GameStatusUnknown means no provider reported a definite status
	GameStatusUnknown GameStatus = "unknown"
)

// Definite reports whether the status carries real information.
// An unknown status must never overwrite a definite one during a status merge.
func (s GameStatus) Definite() bool {
	switch s {
	case GameStatusComingSoon, GameStatusEarlyAccess, GameStatusReleased:
		return true
	}
	return false
}

// NotificationFrequency controls how often a user is emailed about new releases
type NotificationFrequency string

const (
	// FrequencyImmediate sends an email as soon as a scan run finds releases
	FrequencyImmediate NotificationFrequency = "immediate"
	// FrequencyDaily is accepted as a settings value; the immediate dispatcher
	// skips these users and a digest job may pick them up later
	FrequencyDaily NotificationFrequency = "daily"
	// FrequencyDisabled suppresses all release emails
	FrequencyDisabled NotificationFrequency = "disabled"
)

// Valid reports whether the frequency is one of the known values
func (f NotificationFrequency) Valid() bool {
	return f == FrequencyImmediate || f == FrequencyDaily || f == FrequencyDisabled
}

// ProviderName identifies an external platform queried for candidate data
type ProviderName string

const (
	ProviderSpotify ProviderName = "spotify"
	ProviderDeezer  ProviderName = "deezer"
	ProviderSteam   ProviderName = "steam"
	ProviderRAWG    ProviderName = "rawg"
)

package domain

// Setting keys persisted in the key-value settings store.
const (
	SettingStoryLanguage = "story_language"
)

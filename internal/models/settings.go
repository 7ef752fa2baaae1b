package models

type Settings struct {
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	DarkModeEnabled      bool   `json:"darkModeEnabled"`
	ReminderTime         string `json:"reminderTime"`
	LanguageCode         string `json:"languageCode"`
}

func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: true,
		DarkModeEnabled:      false,
		ReminderTime:         "09:00",
		LanguageCode:         "en",
	}
}

// SettingsPatch carries a partial update; nil fields are left unchanged.
type SettingsPatch struct {
	NotificationsEnabled *bool   `json:"notificationsEnabled,omitempty"`
	DarkModeEnabled      *bool   `json:"darkModeEnabled,omitempty"`
	ReminderTime         *string `json:"reminderTime,omitempty"`
	LanguageCode         *string `json:"languageCode,omitempty"`
}

func (s Settings) Apply(p SettingsPatch) Settings {
	if p.NotificationsEnabled != nil {
		s.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.DarkModeEnabled != nil {
		s.DarkModeEnabled = *p.DarkModeEnabled
	}
	if p.ReminderTime != nil {
		s.ReminderTime = *p.ReminderTime
	}
	if p.LanguageCode != nil {
		s.LanguageCode = *p.LanguageCode
	}
	return s
}

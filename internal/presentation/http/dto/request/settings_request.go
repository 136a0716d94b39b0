package request

// SettingRequest represents a setting value update
type SettingRequest struct {
	Value string `json:"value"`
}

// LanguageRequest represents a language preference update
type LanguageRequest struct {
	Language string `json:"language" binding:"required,min=2,max=10"`
}
